package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"keywordforge/app/content"
	"keywordforge/app/database"
	"keywordforge/app/sources"
)

type stubSource struct {
	name     string
	keywords []database.Keyword
	err      error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, seed string) ([]database.Keyword, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.keywords, nil
}

type stubKeywordStore struct {
	stored []database.Keyword
	err    error
}

func (s *stubKeywordStore) StoreKeywords(keywords []database.Keyword) error {
	if s.err != nil {
		return s.err
	}
	s.stored = append(s.stored, keywords...)
	return nil
}

func (s *stubKeywordStore) StoreTrends(bundle database.TrendsBundle) error { return nil }
func (s *stubKeywordStore) GetKeywordsBySource(source string, limit int) ([]database.Keyword, error) {
	return nil, nil
}
func (s *stubKeywordStore) GetTrendingKeywords(days int, limit int) ([]database.TrendingKeyword, error) {
	return nil, nil
}
func (s *stubKeywordStore) GetKeywordSuggestions(seed string, limit int) ([]database.Suggestion, error) {
	return nil, nil
}
func (s *stubKeywordStore) GetKeywordCount() (int, error) { return len(s.stored), nil }

type stubArticleStore struct {
	stored []database.Article
	err    error
}

func (s *stubArticleStore) StoreArticles(articles []database.Article) error {
	if s.err != nil {
		return s.err
	}
	s.stored = append(s.stored, articles...)
	return nil
}

func (s *stubArticleStore) GetRecentArticles(limit int) ([]database.Article, error) { return nil, nil }
func (s *stubArticleStore) GetArticleCount() (int, error)                           { return len(s.stored), nil }

func quietSynthesizer() *content.Synthesizer {
	s := content.NewSynthesizer()
	s.Pause = 0
	return s
}

func keywordsFor(names ...string) []database.Keyword {
	now := time.Now().UTC()
	keywords := make([]database.Keyword, 0, len(names))
	for _, name := range names {
		keywords = append(keywords, database.Keyword{Keyword: name, Source: "test", Timestamp: now})
	}
	return keywords
}

func TestPipeline_Run_DeduplicatesKeywords(t *testing.T) {
	first := &stubSource{name: "first", keywords: keywordsFor("pdf merger", "image converter")}
	second := &stubSource{name: "second", keywords: keywordsFor("PDF Merger", "word counter")}

	keywordStore := &stubKeywordStore{}
	articleStore := &stubArticleStore{}

	p := New([]sources.Source{first, second}, quietSynthesizer(), keywordStore, articleStore, nil)
	result := p.Run(context.Background(), Options{Seeds: []string{"tools"}, SkipPersist: true})

	if result.Collected != 3 {
		t.Errorf("Expected 3 collected keywords, got %d", result.Collected)
	}

	// First occurrence wins, case-insensitively.
	for _, kw := range result.Keywords {
		if kw.Keyword == "PDF Merger" {
			t.Error("Duplicate keyword from second source should have been dropped")
		}
	}
}

func TestPipeline_Run_FiltersByWordCount(t *testing.T) {
	src := &stubSource{name: "src", keywords: keywordsFor(
		"pdf",
		"merge pdf files",
		"how to merge several pdf files into one big document quickly",
	)}

	p := New([]sources.Source{src}, quietSynthesizer(), &stubKeywordStore{}, &stubArticleStore{}, nil)
	result := p.Run(context.Background(), Options{
		Seeds:       []string{"pdf"},
		MinWords:    2,
		MaxWords:    6,
		SkipPersist: true,
	})

	if result.Filtered != 1 {
		t.Fatalf("Expected 1 keyword after filtering, got %d", result.Filtered)
	}
	if result.Keywords[0].Keyword != "merge pdf files" {
		t.Errorf("Unexpected surviving keyword: %q", result.Keywords[0].Keyword)
	}
}

func TestPipeline_Run_FiltersExcludedTerms(t *testing.T) {
	src := &stubSource{name: "src", keywords: keywordsFor("pdf merger", "pdf merger crack", "image converter")}

	p := New([]sources.Source{src}, quietSynthesizer(), &stubKeywordStore{}, &stubArticleStore{}, nil)
	result := p.Run(context.Background(), Options{
		Seeds:       []string{"pdf"},
		Exclude:     []string{"crack"},
		SkipPersist: true,
	})

	if result.Filtered != 2 {
		t.Errorf("Expected 2 keywords after filtering, got %d", result.Filtered)
	}
}

func TestPipeline_Run_SourceFailureDegrades(t *testing.T) {
	failing := &stubSource{name: "failing", err: errors.New("connection refused")}
	working := &stubSource{name: "working", keywords: keywordsFor("pdf merger")}

	p := New([]sources.Source{failing, working}, quietSynthesizer(), &stubKeywordStore{}, &stubArticleStore{}, nil)
	result := p.Run(context.Background(), Options{Seeds: []string{"pdf"}, SkipPersist: true})

	if result.Collected != 1 {
		t.Errorf("Expected 1 collected keyword, got %d", result.Collected)
	}
	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 recorded error, got %d", len(result.Errors))
	}
	if result.Generated != 1 {
		t.Errorf("Expected 1 generated article, got %d", result.Generated)
	}
}

func TestPipeline_Run_Persists(t *testing.T) {
	src := &stubSource{name: "src", keywords: keywordsFor("pdf merger", "image converter")}
	keywordStore := &stubKeywordStore{}
	articleStore := &stubArticleStore{}

	p := New([]sources.Source{src}, quietSynthesizer(), keywordStore, articleStore, nil)
	result := p.Run(context.Background(), Options{Seeds: []string{"tools"}})

	if len(keywordStore.stored) != 2 {
		t.Errorf("Expected 2 stored keywords, got %d", len(keywordStore.stored))
	}
	if len(articleStore.stored) != 2 {
		t.Errorf("Expected 2 stored articles, got %d", len(articleStore.stored))
	}
	if result.Persisted != 4 {
		t.Errorf("Expected 4 persisted records, got %d", result.Persisted)
	}
}

func TestPipeline_Run_PersistFailureKeepsResults(t *testing.T) {
	src := &stubSource{name: "src", keywords: keywordsFor("pdf merger")}
	keywordStore := &stubKeywordStore{err: errors.New("disk full")}
	articleStore := &stubArticleStore{}

	p := New([]sources.Source{src}, quietSynthesizer(), keywordStore, articleStore, nil)
	result := p.Run(context.Background(), Options{Seeds: []string{"pdf"}})

	if len(result.Keywords) != 1 || len(result.Articles) != 1 {
		t.Error("In-memory results should survive a persistence failure")
	}
	if len(result.Errors) == 0 {
		t.Error("Persistence failure should be recorded in result errors")
	}
	if result.Persisted != 1 {
		t.Errorf("Only articles should count as persisted, got %d", result.Persisted)
	}
}
