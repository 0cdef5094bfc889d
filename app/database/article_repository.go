package database

import (
	"encoding/json"
	"fmt"
)

// ArticleRepository handles database operations for generated articles
type ArticleRepository struct {
	db *DB
}

func NewArticleRepository(db *DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// StoreArticles persists a batch of generated articles in a single
// transaction, all-or-nothing.
func (r *ArticleRepository) StoreArticles(articles []Article) error {
	if len(articles) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO articles (
			title, meta_description, content, content_type, search_intent,
			target_keywords, word_count, generated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare article insert: %w", err)
	}
	defer stmt.Close()

	for _, article := range articles {
		keywordsJSON, err := json.Marshal(article.TargetKeywords)
		if err != nil {
			return fmt.Errorf("failed to encode target keywords: %w", err)
		}

		_, err = stmt.Exec(article.Title, article.MetaDescription, article.Content,
			article.ContentType, article.SearchIntent, string(keywordsJSON),
			article.WordCount, article.GeneratedAt)
		if err != nil {
			return fmt.Errorf("failed to insert article %q: %w", article.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit article batch: %w", err)
	}

	return nil
}

// GetRecentArticles returns the most recently generated articles.
func (r *ArticleRepository) GetRecentArticles(limit int) ([]Article, error) {
	rows, err := r.db.Query(`
		SELECT id, title, COALESCE(meta_description, ''), content,
		       COALESCE(content_type, ''), COALESCE(search_intent, ''),
		       COALESCE(target_keywords, '[]'), word_count, generated_at
		FROM articles
		ORDER BY generated_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var article Article
		var keywordsJSON string
		err := rows.Scan(&article.ID, &article.Title, &article.MetaDescription, &article.Content,
			&article.ContentType, &article.SearchIntent, &keywordsJSON,
			&article.WordCount, &article.GeneratedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		json.Unmarshal([]byte(keywordsJSON), &article.TargetKeywords)
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// GetArticleCount returns the total number of stored articles.
func (r *ArticleRepository) GetArticleCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}
