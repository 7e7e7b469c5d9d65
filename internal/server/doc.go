// Package server exposes the converter over HTTP.
//
// A chi router serves POST /convert (JSON request and result envelope) and
// GET /healthz, with request-ID, panic-recovery and per-IP rate-limit
// middleware. Shutdown is graceful: on SIGINT/SIGTERM the server stops
// accepting connections and drains in-flight requests within a timeout.
package server
