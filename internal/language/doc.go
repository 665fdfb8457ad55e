// Package language defines the closed set of language codes tubelang can
// classify titles into, plus the alias table used to map free-form names
// ("english", "mandarin") onto those codes.
//
// Unknown is a verdict, not a code: it is never a member of a selection and
// IsSupported reports false for it.
package language
