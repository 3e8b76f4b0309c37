// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the user registry.
//
// It exposes route wiring, the /users handlers and the middleware chain.
// Cross-cutting concerns such as request tracing, access logging, panic
// recovery, the not-found envelope, CORS, rate limiting and bearer-token
// authentication are handled in this package before requests are delegated
// to the service layer.
package http
