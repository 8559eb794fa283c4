// Package server provides HTTP routing, middleware, and the JSON catalog API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally and registers method-qualified patterns
// ("GET /api/videos/{id}").
//
// # Middleware
//
// [NewRouter] installs, outermost first:
//   - [RequestID] tags every response with an X-Request-ID header
//   - [Logging] logs method, path, status and duration
//   - [Recover] turns a panic into a 500 JSON error
//   - [CORS] sets Access-Control headers and answers preflight requests
//
// # Catalog API
//
// [API] serves the read-mostly video catalog over JSON. It depends on the small store interfaces
// ([VideoStore], [ChannelStore], [StatsStore]) that the repositories package implements.
//
// Errors are mapped once in one place: anything wrapping [shared.ErrNotFound] is a 404, a malformed
// query parameter is a 400 and everything else is logged and returned as a generic 500.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
// [NotFoundHandler] uses it to claim every path no other route matches.
package server
