// Package server runs the HTTP transport of the sandbox API together with its
// background workers, and shuts both down on SIGINT, SIGTERM or SIGQUIT.
package server
