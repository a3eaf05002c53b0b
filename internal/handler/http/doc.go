// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, page handlers, and middleware for the public
// ranking view and the admin console. Cross-cutting concerns such as the
// session guard, request tracing, access logging, and response compression
// are handled in this package before requests are delegated to the service
// layer. Pages are rendered server-side from embedded templates.
package http
