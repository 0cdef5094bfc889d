package content

import (
	"time"
)

// Topic is a transient content candidate derived from a collected
// keyword record during a pipeline run.
type Topic struct {
	Keyword      string `json:"keyword"`
	SearchVolume string `json:"search_volume"`
	Difficulty   string `json:"difficulty"`
	Source       string `json:"source"`
	SeedKeyword  string `json:"seed_keyword"`
	Type         string `json:"type"`
	Timestamp    string `json:"timestamp"`
}

// Analysis is the classifier output for a keyword string.
type Analysis struct {
	Keyword          string `json:"keyword"`
	WordCount        int    `json:"word_count"`
	SearchIntent     string `json:"search_intent"`
	ContentType      string `json:"content_type"`
	TargetAudience   string `json:"target_audience"`
	SEOPotential     string `json:"seo_potential"`
	CompetitionLevel string `json:"competition_level"`
}

// Outline is the deterministic article skeleton built for a topic.
type Outline struct {
	Title              string   `json:"title"`
	MetaDescription    string   `json:"meta_description"`
	Headings           []string `json:"headings"`
	TargetKeywords     []string `json:"target_keywords"`
	EstimatedWordCount int      `json:"estimated_word_count"`
	ContentType        string   `json:"content_type"`
	SearchIntent       string   `json:"search_intent"`
}

type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Article is a fully synthesized article.
type Article struct {
	Title              string    `json:"title"`
	MetaDescription    string    `json:"meta_description"`
	Content            string    `json:"content"`
	Sections           []Section `json:"sections"`
	TargetKeywords     []string  `json:"target_keywords"`
	WordCount          int       `json:"word_count"`
	EstimatedWordCount int       `json:"estimated_word_count"`
	ContentType        string    `json:"content_type"`
	SearchIntent       string    `json:"search_intent"`
	Topic              string    `json:"topic"`
	GeneratedAt        time.Time `json:"generated_at"`
}
