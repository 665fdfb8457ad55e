// Package textutil provides the text normalization shared by the classifier,
// the search-hint parser and settings normalization.
//
// The primary use cases are:
//   - Folding accents and case so "Español" and "espanol" compare equal
//   - Splitting titles into significant tokens for keyword and function-word matching
//   - Collapsing whitespace in extracted title text
//
// Folding uses canonical decomposition followed by removal of the combining
// diacritical marks block (U+0300-U+036F) and lowercasing. Tokenization treats
// every rune that is not a letter, number or space as a separator and drops
// single-rune tokens.
package textutil
