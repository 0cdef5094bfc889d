package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"keywordforge/app/content"
	"keywordforge/app/database"
	"keywordforge/app/sources"
)

// Options tunes one pipeline run.
type Options struct {
	Seeds       []string
	MinWords    int
	MaxWords    int
	Exclude     []string
	MaxArticles int
	// SkipPersist runs the pipeline without touching the store.
	SkipPersist bool
}

// Result carries per-stage counts plus the in-memory outputs. Outputs
// survive persistence failures so callers can still write artifacts.
type Result struct {
	Collected int                `json:"collected"`
	Filtered  int                `json:"filtered"`
	Generated int                `json:"generated"`
	Persisted int                `json:"persisted"`
	Errors    []string           `json:"errors,omitempty"`
	Keywords  []database.Keyword `json:"keywords"`
	Articles  []content.Article  `json:"articles"`
	StartedAt time.Time          `json:"started_at"`
	Duration  time.Duration      `json:"duration"`
}

// Pipeline orchestrates Collect, Filter, Generate and Persist over a
// set of source adapters, a synthesizer and the keyword/article stores.
type Pipeline struct {
	sources     []sources.Source
	synthesizer *content.Synthesizer
	keywords    database.KeywordStore
	articles    database.ArticleStore
	throttle    func()
}

func New(srcs []sources.Source, synthesizer *content.Synthesizer, keywords database.KeywordStore, articles database.ArticleStore, throttle func()) *Pipeline {
	if throttle == nil {
		throttle = func() {}
	}
	return &Pipeline{
		sources:     srcs,
		synthesizer: synthesizer,
		keywords:    keywords,
		articles:    articles,
		throttle:    throttle,
	}
}

// Run executes the full pipeline. Source failures degrade to empty
// results; persistence failures are recorded in the result but never
// discard the in-memory outputs.
func (p *Pipeline) Run(ctx context.Context, opts Options) Result {
	result := Result{StartedAt: time.Now().UTC()}

	collected := p.collect(ctx, opts.Seeds, &result)
	result.Collected = len(collected)

	filtered := filterKeywords(collected, opts)
	result.Filtered = len(filtered)
	result.Keywords = filtered

	slog.Info("Pipeline collection done", "collected", result.Collected, "after_filter", result.Filtered)

	topics := make([]content.Topic, 0, len(filtered))
	for _, kw := range filtered {
		topics = append(topics, topicFromKeyword(kw))
	}

	result.Articles = p.synthesizer.Batch(topics, opts.MaxArticles)
	result.Generated = len(result.Articles)

	if !opts.SkipPersist {
		p.persist(&result)
	}

	result.Duration = time.Since(result.StartedAt)
	slog.Info("Pipeline run completed",
		"collected", result.Collected,
		"filtered", result.Filtered,
		"generated", result.Generated,
		"persisted", result.Persisted,
		"duration", result.Duration)

	return result
}

// collect queries every source for every seed, deduplicating by
// lower-cased keyword text with first occurrence winning.
func (p *Pipeline) collect(ctx context.Context, seeds []string, result *Result) []database.Keyword {
	var collected []database.Keyword
	seen := make(map[string]bool)

	for _, seed := range seeds {
		for _, source := range p.sources {
			keywords, err := source.Fetch(ctx, seed)
			if err != nil {
				slog.Warn("Source fetch failed", "source", source.Name(), "seed", seed, "error", err)
				result.Errors = append(result.Errors, source.Name()+": "+err.Error())
				p.throttle()
				continue
			}

			for _, kw := range keywords {
				key := strings.ToLower(kw.Keyword)
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true
				collected = append(collected, kw)
			}

			slog.Debug("Source fetched", "source", source.Name(), "seed", seed, "keywords", len(keywords))
			p.throttle()
		}
	}

	return collected
}

func filterKeywords(keywords []database.Keyword, opts Options) []database.Keyword {
	filtered := make([]database.Keyword, 0, len(keywords))

	for _, kw := range keywords {
		words := len(strings.Fields(kw.Keyword))
		if opts.MinWords > 0 && words < opts.MinWords {
			continue
		}
		if opts.MaxWords > 0 && words > opts.MaxWords {
			continue
		}
		if excluded(kw.Keyword, opts.Exclude) {
			continue
		}
		filtered = append(filtered, kw)
	}

	return filtered
}

func excluded(keyword string, terms []string) bool {
	lower := strings.ToLower(keyword)
	for _, term := range terms {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func topicFromKeyword(kw database.Keyword) content.Topic {
	topic := content.Topic{
		Keyword:     kw.Keyword,
		Source:      kw.Source,
		SeedKeyword: kw.SeedKeyword,
		Type:        "keyword",
		Timestamp:   kw.Timestamp.Format(time.RFC3339),
	}
	if kw.AvgMonthlySearches != nil {
		topic.SearchVolume = "known"
	}
	if kw.Competition != "" {
		topic.Difficulty = strings.ToLower(kw.Competition)
	}
	return topic
}

func (p *Pipeline) persist(result *Result) {
	if len(result.Keywords) > 0 {
		if err := p.keywords.StoreKeywords(result.Keywords); err != nil {
			slog.Error("Failed to store keywords", "error", err)
			result.Errors = append(result.Errors, "store keywords: "+err.Error())
		} else {
			result.Persisted += len(result.Keywords)
		}
	}

	if len(result.Articles) > 0 {
		rows := make([]database.Article, 0, len(result.Articles))
		for _, article := range result.Articles {
			rows = append(rows, database.Article{
				Title:           article.Title,
				MetaDescription: article.MetaDescription,
				Content:         article.Content,
				ContentType:     article.ContentType,
				SearchIntent:    article.SearchIntent,
				TargetKeywords:  article.TargetKeywords,
				WordCount:       article.WordCount,
				GeneratedAt:     article.GeneratedAt,
			})
		}
		if err := p.articles.StoreArticles(rows); err != nil {
			slog.Error("Failed to store articles", "error", err)
			result.Errors = append(result.Errors, "store articles: "+err.Error())
		} else {
			result.Persisted += len(rows)
		}
	}
}
