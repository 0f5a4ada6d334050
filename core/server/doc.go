// Package server holds the configuration partial for the HTTP read API.
//
// The catalog's HTTP surface is a thin wrapper over the registry; the server
// itself is assembled in the serve command.
package server
