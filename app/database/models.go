package database

import (
	"time"
)

// Keyword is the uniform record shape returned by every source adapter
// and persisted in the keywords table. Metric fields are only populated
// by sources that provide them (nil otherwise).
type Keyword struct {
	ID                 int64
	Keyword            string
	AvgMonthlySearches *int
	Competition        string // LOW, MEDIUM, HIGH or empty
	CompetitionIndex   *int
	LowBidMicros       *int64
	HighBidMicros      *int64
	Value              *int // trend score, not persisted in the keywords table
	Source             string
	SeedKeyword        string
	SeedKeywords       []string
	Timestamp          time.Time
	CreatedAt          time.Time
}

// Trend is a related-query row linked to a keyword by text.
type Trend struct {
	ID        int64
	Keyword   string
	Query     string
	Value     int
	TrendType string // rising or top
	Timeframe string
	Source    string
	Timestamp time.Time
}

// Topic is a related-topic row linked to a keyword by text.
type Topic struct {
	ID         int64
	Keyword    string
	TopicTitle string
	TopicType  string
	Value      int
	TrendType  string // rising or top
	Timeframe  string
	Source     string
	Timestamp  time.Time
}

// InterestPoint is one point of an interest-over-time series.
type InterestPoint struct {
	ID          int64
	Keywords    []string
	Date        string
	Value       int
	KeywordName string
	IsPartial   bool
	Timeframe   string
	Source      string
	Timestamp   time.Time
}

// TrendingArticle is a news article attached to a real-time trending search.
type TrendingArticle struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// TrendingSearch is a location-scoped trending search term. Daily and
// real-time results share this shape: SearchTerm always carries the
// term, Title and the article fields are only populated by the
// real-time path.
type TrendingSearch struct {
	ID         int64
	Rank       int
	SearchTerm string
	Title      string
	Traffic    string
	ImageURL   string
	Articles   []TrendingArticle
	Location   string
	Source     string
	Timestamp  time.Time
}

// TrendsBundle groups everything a trend collection run produces so it
// can be stored in a single transaction.
type TrendsBundle struct {
	Keywords         []string
	Timeframes       []string
	Queries          []Trend
	Topics           []Topic
	InterestPoints   []InterestPoint
	TrendingSearches []TrendingSearch
	CollectedAt      time.Time
}

// TrendingKeyword is an aggregate over the keywords table for a
// lookback window.
type TrendingKeyword struct {
	Keyword            string `json:"keyword"`
	AvgMonthlySearches int    `json:"avg_monthly_searches"`
	Frequency          int    `json:"frequency"`
	LastSeen           string `json:"last_seen"`
}

// Suggestion is a fuzzy match against stored trend queries and topic titles.
type Suggestion struct {
	Keyword string `json:"keyword"`
	Value   int    `json:"value"`
	Type    string `json:"type"` // trend or topic
}

// Article is a generated article row.
type Article struct {
	ID              int64
	Title           string
	MetaDescription string
	Content         string
	ContentType     string
	SearchIntent    string
	TargetKeywords  []string
	WordCount       int
	GeneratedAt     time.Time
}
