// Package controller contains HTTP middlewares and helper handlers shared by
// the page and JSON routes.
//
// Provided middlewares:
//   - WithLogger: attaches a request-scoped logger and request ID, records
//     request metrics by route pattern and writes the access log.
//   - WithRecover: turns handler panics into 500 responses.
//   - WithSecurityHeaders: sets browser hardening headers on every response.
//
// Provided helpers:
//   - Profiler: a router exposing net/http/pprof handlers.
package controller
