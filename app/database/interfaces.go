package database

type KeywordStore interface {
	StoreKeywords(keywords []Keyword) error
	StoreTrends(bundle TrendsBundle) error
	GetKeywordsBySource(source string, limit int) ([]Keyword, error)
	GetTrendingKeywords(days int, limit int) ([]TrendingKeyword, error)
	GetKeywordSuggestions(seed string, limit int) ([]Suggestion, error)
	GetKeywordCount() (int, error)
}

type ArticleStore interface {
	StoreArticles(articles []Article) error
	GetRecentArticles(limit int) ([]Article, error)
	GetArticleCount() (int, error)
}

var _ KeywordStore = (*KeywordRepository)(nil)
var _ ArticleStore = (*ArticleRepository)(nil)
