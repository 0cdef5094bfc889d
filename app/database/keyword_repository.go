package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
)

// KeywordRepository handles database operations for keyword and trend data
type KeywordRepository struct {
	db *DB
}

func NewKeywordRepository(db *DB) *KeywordRepository {
	return &KeywordRepository{db: db}
}

// StoreKeywords persists a batch of keyword records in a single
// transaction. The batch either commits as a whole or not at all.
func (r *KeywordRepository) StoreKeywords(keywords []Keyword) error {
	if len(keywords) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO keywords (
			keyword, avg_monthly_searches, competition, competition_index,
			low_top_of_page_bid_micros, high_top_of_page_bid_micros,
			source, seed_keywords, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare keyword insert: %w", err)
	}
	defer stmt.Close()

	for _, kw := range keywords {
		seeds := kw.SeedKeywords
		if len(seeds) == 0 && kw.SeedKeyword != "" {
			seeds = []string{kw.SeedKeyword}
		}
		seedsJSON, err := json.Marshal(seeds)
		if err != nil {
			return fmt.Errorf("failed to encode seed keywords: %w", err)
		}

		_, err = stmt.Exec(
			kw.Keyword, kw.AvgMonthlySearches, nullableString(kw.Competition), kw.CompetitionIndex,
			kw.LowBidMicros, kw.HighBidMicros,
			kw.Source, string(seedsJSON), kw.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert keyword %q: %w", kw.Keyword, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit keyword batch: %w", err)
	}

	return nil
}

// StoreTrends persists a full trend collection bundle (related queries,
// related topics, interest over time, trending searches) in a single
// transaction.
func (r *KeywordRepository) StoreTrends(bundle TrendsBundle) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, trend := range bundle.Queries {
		_, err := tx.Exec(`
			INSERT INTO trends (keyword, query, value, trend_type, timeframe, source, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, trend.Keyword, trend.Query, trend.Value, trend.TrendType, trend.Timeframe, trend.Source, trend.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert trend query: %w", err)
		}
	}

	for _, topic := range bundle.Topics {
		_, err := tx.Exec(`
			INSERT INTO topics (keyword, topic_title, topic_type, value, trend_type, timeframe, source, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, topic.Keyword, topic.TopicTitle, topic.TopicType, topic.Value, topic.TrendType, topic.Timeframe, topic.Source, topic.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert topic: %w", err)
		}
	}

	for _, point := range bundle.InterestPoints {
		keywordsJSON, err := json.Marshal(point.Keywords)
		if err != nil {
			return fmt.Errorf("failed to encode interest keywords: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO interest_over_time (keywords, date, interest_value, keyword_name, is_partial, timeframe, source, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, string(keywordsJSON), point.Date, point.Value, point.KeywordName, point.IsPartial, point.Timeframe, point.Source, point.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert interest point: %w", err)
		}
	}

	for _, search := range bundle.TrendingSearches {
		articlesJSON, err := json.Marshal(search.Articles)
		if err != nil {
			return fmt.Errorf("failed to encode trending articles: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO trending_searches (rank, search_term, title, traffic, image_url, articles, location, source, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, search.Rank, search.SearchTerm, nullableString(search.Title), nullableString(search.Traffic),
			nullableString(search.ImageURL), string(articlesJSON), search.Location, search.Source, search.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert trending search: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trends bundle: %w", err)
	}

	return nil
}

// GetKeywordsBySource returns the most recent keyword records for a source.
func (r *KeywordRepository) GetKeywordsBySource(source string, limit int) ([]Keyword, error) {
	rows, err := r.db.Query(`
		SELECT id, keyword, avg_monthly_searches, COALESCE(competition, ''),
		       competition_index, low_top_of_page_bid_micros, high_top_of_page_bid_micros,
		       source, COALESCE(seed_keywords, '[]'), timestamp, created_at
		FROM keywords
		WHERE source = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`, source, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query keywords by source: %w", err)
	}
	defer rows.Close()

	var keywords []Keyword
	for rows.Next() {
		var kw Keyword
		var seedsJSON string
		err := rows.Scan(&kw.ID, &kw.Keyword, &kw.AvgMonthlySearches, &kw.Competition,
			&kw.CompetitionIndex, &kw.LowBidMicros, &kw.HighBidMicros,
			&kw.Source, &seedsJSON, &kw.Timestamp, &kw.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan keyword row: %w", err)
		}
		if err := json.Unmarshal([]byte(seedsJSON), &kw.SeedKeywords); err == nil && len(kw.SeedKeywords) > 0 {
			kw.SeedKeyword = kw.SeedKeywords[0]
		}
		keywords = append(keywords, kw)
	}

	return keywords, rows.Err()
}

// GetTrendingKeywords aggregates recent keyword records by keyword text
// over the lookback window, ordered by average monthly searches
// descending with ties broken by frequency descending.
func (r *KeywordRepository) GetTrendingKeywords(days int, limit int) ([]TrendingKeyword, error) {
	rows, err := r.db.Query(fmt.Sprintf(`
		SELECT keyword, AVG(avg_monthly_searches) AS avg_searches,
		       COUNT(*) AS frequency, MAX(timestamp) AS last_seen
		FROM keywords
		WHERE timestamp >= datetime('now', '-%d days')
		AND avg_monthly_searches > 0
		GROUP BY keyword
		ORDER BY avg_searches DESC, frequency DESC
		LIMIT ?
	`, days), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query trending keywords: %w", err)
	}
	defer rows.Close()

	var trending []TrendingKeyword
	for rows.Next() {
		var tk TrendingKeyword
		var avgSearches sql.NullFloat64
		var lastSeen sql.NullString
		if err := rows.Scan(&tk.Keyword, &avgSearches, &tk.Frequency, &lastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan trending row: %w", err)
		}
		tk.AvgMonthlySearches = int(avgSearches.Float64)
		tk.LastSeen = lastSeen.String
		trending = append(trending, tk)
	}

	return trending, rows.Err()
}

// GetKeywordSuggestions returns related terms for a seed keyword by
// substring match against stored trend queries and topic titles, merged
// and sorted by value descending.
func (r *KeywordRepository) GetKeywordSuggestions(seed string, limit int) ([]Suggestion, error) {
	pattern := "%" + seed + "%"

	var suggestions []Suggestion

	rows, err := r.db.Query(`
		SELECT DISTINCT query, value
		FROM trends
		WHERE keyword LIKE ? AND query IS NOT NULL
		ORDER BY value DESC
		LIMIT ?
	`, pattern, limit/2)
	if err != nil {
		return nil, fmt.Errorf("failed to query trend suggestions: %w", err)
	}
	for rows.Next() {
		var s Suggestion
		if err := rows.Scan(&s.Keyword, &s.Value); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan trend suggestion: %w", err)
		}
		s.Type = "trend"
		suggestions = append(suggestions, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(`
		SELECT DISTINCT topic_title, value
		FROM topics
		WHERE keyword LIKE ? AND topic_title IS NOT NULL
		ORDER BY value DESC
		LIMIT ?
	`, pattern, limit/2)
	if err != nil {
		return nil, fmt.Errorf("failed to query topic suggestions: %w", err)
	}
	for rows.Next() {
		var s Suggestion
		if err := rows.Scan(&s.Keyword, &s.Value); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan topic suggestion: %w", err)
		}
		s.Type = "topic"
		suggestions = append(suggestions, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Value > suggestions[j].Value
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions, nil
}

// GetKeywordCount returns the total number of stored keyword records.
func (r *KeywordRepository) GetKeywordCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM keywords`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count keywords: %w", err)
	}
	return count, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
