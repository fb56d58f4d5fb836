package embedding

import "context"

// Backend converts free text into a fixed-length vector. Implementations are
// pluggable and optional: the matching core must function correctly when no
// backend is configured or when a configured backend failed to load.
type Backend interface {
	// Available reports whether the backend can serve Embed calls. Callers
	// re-check this before every scoring call rather than caching the answer.
	Available() bool

	// Embed returns the vector for the given text. An unavailable backend
	// returns an error; it never panics.
	Embed(ctx context.Context, text string) ([]float32, error)
}
