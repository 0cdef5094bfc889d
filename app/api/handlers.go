package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"keywordforge/app/database"
)

type Handler struct {
	keywords database.KeywordStore
	articles database.ArticleStore
	version  string
}

func NewHandler(keywords database.KeywordStore, articles database.ArticleStore, version string) *Handler {
	return &Handler{
		keywords: keywords,
		articles: articles,
		version:  version,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]any{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
	}

	if keywordCount, err := h.keywords.GetKeywordCount(); err == nil {
		health["keywords"] = keywordCount
	}
	if articleCount, err := h.articles.GetArticleCount(); err == nil {
		health["articles"] = articleCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	keywordCount, err := h.keywords.GetKeywordCount()
	if err != nil {
		slog.Error("Database error", "operation", "keyword_count", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	articleCount, err := h.articles.GetArticleCount()
	if err != nil {
		slog.Error("Database error", "operation", "article_count", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"keywords": keywordCount,
		"articles": articleCount,
	})
}

func (h *Handler) GetTrending(c *gin.Context) {
	days := intQuery(c, "days", 7)
	limit := intQuery(c, "limit", 20)

	trending, err := h.keywords.GetTrendingKeywords(days, limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_trending", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trending": trending,
		"days":     days,
		"total":    len(trending),
	})
}

func (h *Handler) GetSuggestions(c *gin.Context) {
	seed := c.Query("seed")
	if seed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing seed query parameter"})
		return
	}
	limit := intQuery(c, "limit", 10)

	suggestions, err := h.keywords.GetKeywordSuggestions(seed, limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_suggestions", "seed", seed, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seed":        seed,
		"suggestions": suggestions,
		"total":       len(suggestions),
	})
}

func (h *Handler) GetKeywordsBySource(c *gin.Context) {
	source := c.Param("source")
	if source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing source parameter"})
		return
	}
	limit := intQuery(c, "limit", 50)

	keywords, err := h.keywords.GetKeywordsBySource(source, limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_keywords", "source", source, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	records := make([]map[string]any, 0, len(keywords))
	for _, kw := range keywords {
		record := map[string]any{
			"keyword":      kw.Keyword,
			"source":       kw.Source,
			"seed_keyword": kw.SeedKeyword,
			"timestamp":    kw.Timestamp,
		}
		if kw.AvgMonthlySearches != nil {
			record["avg_monthly_searches"] = *kw.AvgMonthlySearches
		}
		if kw.Competition != "" {
			record["competition"] = kw.Competition
		}
		records = append(records, record)
	}

	c.JSON(http.StatusOK, gin.H{
		"source":   source,
		"keywords": records,
		"total":    len(records),
	})
}

func (h *Handler) GetArticles(c *gin.Context) {
	limit := intQuery(c, "limit", 20)

	articles, err := h.articles.GetRecentArticles(limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	records := make([]map[string]any, 0, len(articles))
	for _, article := range articles {
		records = append(records, map[string]any{
			"id":               article.ID,
			"title":            article.Title,
			"meta_description": article.MetaDescription,
			"content_type":     article.ContentType,
			"search_intent":    article.SearchIntent,
			"target_keywords":  article.TargetKeywords,
			"word_count":       article.WordCount,
			"generated_at":     article.GeneratedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": records,
		"total":    len(records),
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
