// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, panic recovery, response compression
// and bearer authentication are handled in this package before requests reach
// the session manager or the service layer.
package http
