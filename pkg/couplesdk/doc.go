// Package couplesdk defines the wire types of the secondate API and a small
// HTTP client for it. The server handlers and Go callers share these types so
// the payload shape lives in one place.
package couplesdk
