// Package titlecache memoizes classifier verdicts for listing titles.
//
// Listings repeat the same titles across scrolls and refreshes, so verdicts
// are kept in a bounded in-memory table keyed by the exact title string. When
// the table reaches its limit it is cleared wholesale rather than evicted
// entry by entry. Nothing is persisted.
package titlecache
