// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server together with
// the background workers.
//
// It provides startup, signal handling, and graceful shutdown: on SIGTERM,
// SIGINT or SIGQUIT the workers are cancelled and the HTTP server drains
// in-flight requests.
package server
