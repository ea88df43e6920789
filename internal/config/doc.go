// Package config loads, merges and validates configuration of the auth
// server and the terminal client.
//
// Sources, highest priority first (a field keeps the first non-zero value):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults fill the remaining zero fields. The entry points are
// [GetStructuredConfig] for the server and [GetClientConfig] for the client.
package config
