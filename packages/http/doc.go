// Package http provides the blocking request executor used by f2html pages.
//
// It wraps the standard library's http package with:
//   - An injectable Caller (send-and-wait) transport
//   - CallSync, which returns the raw response text
//   - Two structured log lines per request
//   - Configurable proxy, SSL validation and default headers
package http
