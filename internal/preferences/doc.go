// Package preferences normalizes filter settings.
//
// Settings arrive in several shapes: the TOML [filter] section, the record
// stored in SQLite, CLI flags and HTTP request bodies. All of them decode into
// Raw and pass through Normalize, which is the single place that resolves
// language aliases, legacy single-language values and missing booleans.
package preferences
