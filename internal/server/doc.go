// Package server runs the job board transports.
//
// The HTTP server carries the REST API and the /ws push channel; the gRPC
// server carries the health service. Background workers such as the push
// hub start before the transports and stop before they drain.
package server
