// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the HTML
// account pages and the users REST API. Request tracing, access logging,
// compression, bearer identity binding and form sessions are handled in this
// package before requests are delegated to the service layer.
package http
