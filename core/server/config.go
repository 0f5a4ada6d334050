package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ReadTimeoutSeconds bounds how long a request read may take.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"15"`
}
