// Package client provides an HTTP implementation of the domain.Client
// interface used by the CLI's remote mode.
//
// All requests are JSON over HTTP. Non-2xx statuses are returned as errors
// with the path and status text; conversion failures are not errors at this
// layer, they travel inside the result envelope.
package client
