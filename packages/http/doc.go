// Package http sends the single request a CLI invocation describes.
//
// It wraps the standard library's http package with:
//   - Functional client options (timeout, redirects, TLS, proxy, default headers)
//   - Request building from a parsed Command, including the JSON object body
//   - Basic and digest authentication
//   - Optional gzip, zstd and brotli response decoding
//   - Responses that keep the protocol, reason phrase and every header value
//
// Transport failures are returned as *TransportError so callers can tell
// them apart from usage problems.
package http
