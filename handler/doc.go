// Package handler turns small request functions into http.HandlerFuncs.
//
// A Func returns a Response. Responses know how to render for both plain
// browser requests and datastar requests: templ components are written as
// HTML or sent as SSE element patches, redirects become client-side
// redirects, and JSON uses a {"data": ...} / {"error": ...} envelope.
// Render errors go to an ErrorHandler; NewErrorHandler logs them and picks
// JSON or text based on the request.
package handler
