// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the client session controller into a single
// process lifecycle: restore the session, run the UI, stop background work.
package client
