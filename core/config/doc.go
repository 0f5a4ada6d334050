// Package config loads application configuration from environment variables
// and an optional .env file.
//
// Each subsystem owns its partial configuration struct (database, logger,
// storage, server); this package composes them and binds defaults declared
// via 'default' struct tags.
package config
