package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"keywordforge/app/database"
)

const suggestEndpoint = "https://suggestqueries.google.com/complete/search"

// SuggestSource fetches Google autocomplete suggestions for a seed
// keyword. No search volume data is available from this endpoint.
type SuggestSource struct {
	client   *Client
	endpoint string
	country  string
}

var _ Source = (*SuggestSource)(nil)

func NewSuggestSource(client *Client) *SuggestSource {
	return &SuggestSource{client: client, endpoint: suggestEndpoint, country: "us"}
}

func (s *SuggestSource) Name() string {
	return "google_suggestions"
}

func (s *SuggestSource) Fetch(ctx context.Context, seed string) ([]database.Keyword, error) {
	params := url.Values{}
	params.Set("client", "firefox")
	params.Set("q", seed)
	params.Set("hl", "en")
	params.Set("gl", s.country)

	data, err := s.client.Get(ctx, s.endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suggestions: %w", err)
	}

	// Response shape: [query, [suggestion, ...], ...]
	var payload []json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	if len(payload) < 2 {
		return nil, nil
	}

	var suggestions []string
	if err := json.Unmarshal(payload[1], &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion list: %w", err)
	}

	now := time.Now().UTC()
	keywords := make([]database.Keyword, 0, len(suggestions))
	for _, suggestion := range suggestions {
		keywords = append(keywords, database.Keyword{
			Keyword:     suggestion,
			Source:      s.Name(),
			SeedKeyword: seed,
			Timestamp:   now,
		})
	}

	return keywords, nil
}
