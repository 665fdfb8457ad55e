// Package visibility decides which cards in a listing stay visible.
//
// It combines the cached classifier verdict for each title with the user's
// filter settings, the search hints of the current page and the
// subscription set. Every decision is logged at debug level with decision
// attributes so a hidden card can be traced back to its reason.
package visibility
