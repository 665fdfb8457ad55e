// Package api defines the transport-neutral service and wire types shared by
// the CLI and the HTTP server.
//
// Service owns the classifier, the title cache and the visibility evaluator,
// and reads settings and subscriptions through the Store interface so both
// the command line and the daemon resolve decisions the same way.
//
// DTOs use camelCase JSON tags to match the settings record consumed by
// browser-side callers.
package api
