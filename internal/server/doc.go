// Package server runs the client's local HTTP API.
//
// The API is optional and lives next to the terminal UI; its lifecycle is
// bound to the context passed to Run, so the application stops it together
// with the rest of its goroutines.
package server
