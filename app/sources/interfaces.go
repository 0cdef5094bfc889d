package sources

import (
	"context"

	"keywordforge/app/database"
)

// Source is one external keyword provider. Implementations are
// best-effort: a failed call returns an error that callers log and
// treat as an empty result, never as a fatal condition.
type Source interface {
	Name() string
	Fetch(ctx context.Context, seed string) ([]database.Keyword, error)
}
