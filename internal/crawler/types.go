// Package crawler walks leagues, teams, and players and turns extracted
// fields into sink rows. Core types and interfaces live here; the HTTP
// fetcher, state stores, and extraction heuristics are injected.
package crawler

// League identifies one configured competition to walk.
type League struct {
	// ID is the source-assigned competition code (last path segment).
	ID      string
	Name    string
	Path    string
	Country string
}
