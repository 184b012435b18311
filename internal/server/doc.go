// Package server runs the HTTP and gRPC transports of the sync server.
//
// Listeners are bound when the server is built, so a busy port fails at
// startup. Run drives all enabled transports in one errgroup: the first
// failure or a cancelled context shuts the others down within
// shutdownTimeout.
package server
