// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between the public site and the
// admin back office.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
