// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port (SERVER_PORT) and the optional
// static API key (SERVER_API_KEY) protecting the sync endpoints.
package server
