// Package store persists filter settings and the subscribed channel set in
// SQLite.
//
// The settings record is stored as JSON values keyed by field name, mirroring
// the free-form records earlier clients wrote, so Normalize can apply the
// same legacy rules on every read. Classification verdicts are never stored.
//
// Schema changes bump the version in schema.go; users delete the database to
// adopt the new schema.
package store
