// Package filter decides whether a classified title is hidden.
package filter
