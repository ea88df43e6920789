// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransports is returned by NewHandlers when the server configuration
// names neither an HTTP nor a gRPC address. The server cannot start
// without at least one of them.
var errNoTransports = errors.New("no transport address is configured: set SERVER_ADDRESS or SERVER_GRPC_ADDRESS")
