// Package fn implements the HTTP-triggered Lambda handlers: meal and order
// registration, area-scoped queries, and the key-protected proxies.
//
// Each handler is stateless per request; all durable state lives in the
// record store. Every response, error paths included, carries the injected
// CORS and content-type headers so browser clients can always read the
// body. OPTIONS requests short-circuit to a 204 preflight response with the
// allowed-methods metadata and never touch the store or the relay target.
package fn
