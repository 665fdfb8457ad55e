// Package daemon runs the long-lived tubelang API server.
//
// It wires configuration, the settings store and the shared api.Service into
// a single lifecycle with flock-based locking to prevent multiple instances
// on the same data directory. The HTTP layer is plain net/http with an
// optional bearer token; every request gets an id that is echoed in the
// X-Request-ID header and attached to log lines.
//
// Keep decision logic in the api and visibility packages; the daemon focuses
// on startup, shutdown and transport.
package daemon
