// Package server runs the read-only HTTP reporting surface of the client,
// including startup and graceful shutdown.
package server
