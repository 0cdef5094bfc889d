package database

import (
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func intPtr(v int) *int { return &v }

func TestNewConnection_InvalidPath(t *testing.T) {
	if _, err := NewConnection("/dev/null/not-a-directory/test.db"); err == nil {
		t.Error("Expected error for invalid database path")
	}
}

func TestKeywordRepository_StoreAndQuery(t *testing.T) {
	repo := NewKeywordRepository(testDB(t))

	now := time.Now().UTC()
	keywords := []Keyword{
		{Keyword: "pdf merger", AvgMonthlySearches: intPtr(12000), Competition: "LOW", Source: "google_ads_api", SeedKeyword: "pdf", Timestamp: now},
		{Keyword: "pdf converter", Source: "google_suggestions", SeedKeyword: "pdf", Timestamp: now},
	}

	if err := repo.StoreKeywords(keywords); err != nil {
		t.Fatalf("StoreKeywords failed: %v", err)
	}

	count, err := repo.GetKeywordCount()
	if err != nil {
		t.Fatalf("GetKeywordCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 keywords, got %d", count)
	}

	stored, err := repo.GetKeywordsBySource("google_ads_api", 10)
	if err != nil {
		t.Fatalf("GetKeywordsBySource failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("Expected 1 keyword for source, got %d", len(stored))
	}
	if stored[0].Keyword != "pdf merger" {
		t.Errorf("Unexpected keyword: %q", stored[0].Keyword)
	}
	if stored[0].AvgMonthlySearches == nil || *stored[0].AvgMonthlySearches != 12000 {
		t.Errorf("Unexpected avg monthly searches: %v", stored[0].AvgMonthlySearches)
	}
	if stored[0].Competition != "LOW" {
		t.Errorf("Unexpected competition: %q", stored[0].Competition)
	}
	if stored[0].SeedKeyword != "pdf" {
		t.Errorf("Unexpected seed keyword: %q", stored[0].SeedKeyword)
	}
}

func TestKeywordRepository_StoreKeywords_Empty(t *testing.T) {
	repo := NewKeywordRepository(testDB(t))

	if err := repo.StoreKeywords(nil); err != nil {
		t.Errorf("Empty batch should be a no-op, got: %v", err)
	}
}

func TestKeywordRepository_GetTrendingKeywords(t *testing.T) {
	repo := NewKeywordRepository(testDB(t))

	now := time.Now().UTC()
	keywords := []Keyword{
		{Keyword: "pdf merger", AvgMonthlySearches: intPtr(10000), Source: "google_ads_api", Timestamp: now},
		{Keyword: "pdf merger", AvgMonthlySearches: intPtr(14000), Source: "google_ads_api", Timestamp: now},
		{Keyword: "image converter", AvgMonthlySearches: intPtr(20000), Source: "google_ads_api", Timestamp: now},
		{Keyword: "no metrics", Source: "google_suggestions", Timestamp: now},
	}
	if err := repo.StoreKeywords(keywords); err != nil {
		t.Fatalf("StoreKeywords failed: %v", err)
	}

	trending, err := repo.GetTrendingKeywords(7, 10)
	if err != nil {
		t.Fatalf("GetTrendingKeywords failed: %v", err)
	}

	if len(trending) != 2 {
		t.Fatalf("Expected 2 trending keywords, got %d", len(trending))
	}
	if trending[0].Keyword != "image converter" || trending[0].AvgMonthlySearches != 20000 {
		t.Errorf("Unexpected top keyword: %+v", trending[0])
	}
	if trending[1].Keyword != "pdf merger" || trending[1].Frequency != 2 {
		t.Errorf("Unexpected second keyword: %+v", trending[1])
	}
	if trending[1].AvgMonthlySearches != 12000 {
		t.Errorf("Expected averaged searches 12000, got %d", trending[1].AvgMonthlySearches)
	}
}

func TestKeywordRepository_StoreTrendsAndSuggestions(t *testing.T) {
	repo := NewKeywordRepository(testDB(t))

	now := time.Now().UTC()
	bundle := TrendsBundle{
		Queries: []Trend{
			{Keyword: "pdf merger", Query: "pdf merger online", Value: 90, TrendType: "top", Timeframe: "today 12-m", Source: "google_trends", Timestamp: now},
			{Keyword: "pdf merger", Query: "merge pdf free", Value: 40, TrendType: "rising", Timeframe: "today 12-m", Source: "google_trends", Timestamp: now},
		},
		Topics: []Topic{
			{Keyword: "pdf merger", TopicTitle: "PDF", TopicType: "Topic", Value: 70, TrendType: "top", Timeframe: "today 12-m", Source: "google_trends", Timestamp: now},
		},
		InterestPoints: []InterestPoint{
			{Keywords: []string{"pdf merger"}, Date: "Aug 2026", Value: 55, KeywordName: "pdf merger", Timeframe: "today 12-m", Source: "google_trends", Timestamp: now},
		},
		TrendingSearches: []TrendingSearch{
			{Rank: 1, SearchTerm: "pdf tools", Traffic: "200K+", Location: "US", Source: "google_trends", Timestamp: now},
		},
	}

	if err := repo.StoreTrends(bundle); err != nil {
		t.Fatalf("StoreTrends failed: %v", err)
	}

	suggestions, err := repo.GetKeywordSuggestions("pdf", 10)
	if err != nil {
		t.Fatalf("GetKeywordSuggestions failed: %v", err)
	}

	if len(suggestions) != 3 {
		t.Fatalf("Expected 3 suggestions, got %d", len(suggestions))
	}
	// Merged list is sorted by value descending.
	if suggestions[0].Keyword != "pdf merger online" || suggestions[0].Type != "trend" {
		t.Errorf("Unexpected top suggestion: %+v", suggestions[0])
	}
	if suggestions[1].Keyword != "PDF" || suggestions[1].Type != "topic" {
		t.Errorf("Unexpected second suggestion: %+v", suggestions[1])
	}
}

func TestArticleRepository_StoreAndQuery(t *testing.T) {
	repo := NewArticleRepository(testDB(t))

	articles := []Article{
		{
			Title:           "Pdf Merger: Everything You Need to Know",
			MetaDescription: "Discover everything about pdf merger.",
			Content:         "## What is Pdf Merger?\n\nbody\n",
			ContentType:     "informational",
			SearchIntent:    "informational",
			TargetKeywords:  []string{"pdf merger", "free pdf merger"},
			WordCount:       7,
			GeneratedAt:     time.Now().UTC(),
		},
	}

	if err := repo.StoreArticles(articles); err != nil {
		t.Fatalf("StoreArticles failed: %v", err)
	}

	count, err := repo.GetArticleCount()
	if err != nil {
		t.Fatalf("GetArticleCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 article, got %d", count)
	}

	stored, err := repo.GetRecentArticles(10)
	if err != nil {
		t.Fatalf("GetRecentArticles failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(stored))
	}
	if stored[0].Title != articles[0].Title {
		t.Errorf("Unexpected title: %q", stored[0].Title)
	}
	if len(stored[0].TargetKeywords) != 2 || stored[0].TargetKeywords[0] != "pdf merger" {
		t.Errorf("Unexpected target keywords: %v", stored[0].TargetKeywords)
	}
}
