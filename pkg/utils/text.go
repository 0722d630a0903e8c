// Package utils provides shared logging and text helpers.
package utils

// Truncate shortens s to at most maxLen bytes, marking the cut with "...".
// Handlers use it to keep document and question previews out of full log
// lines. A non-positive maxLen disables truncation.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
