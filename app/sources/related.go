package sources

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"keywordforge/app/database"
)

const searchEndpoint = "https://www.google.com/search"

// RelatedSearchSource scrapes the "related searches" block from a
// Google result page. Extraction is best-effort: a layout change
// silently yields zero results.
type RelatedSearchSource struct {
	client *Client
}

var _ Source = (*RelatedSearchSource)(nil)

func NewRelatedSearchSource(client *Client) *RelatedSearchSource {
	return &RelatedSearchSource{client: client}
}

func (s *RelatedSearchSource) Name() string {
	return "google_related"
}

func (s *RelatedSearchSource) Fetch(ctx context.Context, seed string) ([]database.Keyword, error) {
	doc, err := fetchSearchPage(ctx, s.client, seed)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var keywords []database.Keyword
	seen := make(map[string]bool)

	// Related-search anchors link back to /search and sit at the bottom
	// of the page. Filter out navigation links by requiring the query
	// parameter and a short phrase-like text.
	doc.Find(`a[href^="/search"]`).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" || len(strings.Fields(text)) > 8 {
			return
		}
		lower := strings.ToLower(text)
		if seen[lower] || lower == strings.ToLower(seed) {
			return
		}
		seen[lower] = true
		keywords = append(keywords, database.Keyword{
			Keyword:     text,
			Source:      s.Name(),
			SeedKeyword: seed,
			Timestamp:   now,
		})
	})

	return keywords, nil
}

// PeopleAlsoAskSource scrapes the "People also ask" questions from a
// Google result page. Like RelatedSearchSource, it is best-effort.
type PeopleAlsoAskSource struct {
	client *Client
}

var _ Source = (*PeopleAlsoAskSource)(nil)

func NewPeopleAlsoAskSource(client *Client) *PeopleAlsoAskSource {
	return &PeopleAlsoAskSource{client: client}
}

func (s *PeopleAlsoAskSource) Name() string {
	return "people_also_ask"
}

func (s *PeopleAlsoAskSource) Fetch(ctx context.Context, seed string) ([]database.Keyword, error) {
	doc, err := fetchSearchPage(ctx, s.client, seed)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var keywords []database.Keyword
	seen := make(map[string]bool)

	doc.Find(`div[class*="related-question"] span, div[data-q]`).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.AttrOr("data-q", sel.Text()))
		if text == "" || !strings.Contains(text, " ") {
			return
		}
		lower := strings.ToLower(text)
		if seen[lower] {
			return
		}
		seen[lower] = true
		keywords = append(keywords, database.Keyword{
			Keyword:     text,
			Source:      s.Name(),
			SeedKeyword: seed,
			Timestamp:   now,
		})
	})

	return keywords, nil
}

func fetchSearchPage(ctx context.Context, client *Client, seed string) (*goquery.Document, error) {
	params := url.Values{}
	params.Set("q", seed)
	params.Set("hl", "en")

	data, err := client.Get(ctx, searchEndpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}

	return doc, nil
}
