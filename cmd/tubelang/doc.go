// Command tubelang classifies video titles by language and decides which
// cards in a listing stay visible.
//
// Offline commands (classify, decide, scan) work on titles and saved HTML
// pages. settings and channels manage the SQLite record that the serve
// command's HTTP API shares with browser-side callers.
package main
