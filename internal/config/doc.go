// Package config loads, normalizes, and validates tubelang configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files and honours the TUBELANG_API_TOKEN environment fallback. Filter
// defaults in [filter] share the settings normalization used by the stored
// record and the HTTP API, so every entry point sees the same language codes.
package config
