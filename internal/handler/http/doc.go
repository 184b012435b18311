// Package http is the REST transport of the replisync server.
//
// It wires the Replicache pull endpoint, the version and metrics endpoints
// and the middleware chain in front of them: panic recovery, trace ids,
// access logging, gzip and optional bearer authentication. Handlers decode
// requests, call the service layer and map its errors to status codes.
package http
