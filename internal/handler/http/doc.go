// Package http implements the REST transport of the auth server.
//
// It wires the chi routes, decodes request bodies, maps service errors to
// status codes and the shared message table, and guards protected routes
// with the authorize middleware. Tracing, trace ids, Prometheus metrics and
// access logging run in front of every route.
package http
