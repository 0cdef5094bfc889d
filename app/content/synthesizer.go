package content

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// sectionRule maps a heading substring to a section template. Rules are
// evaluated in order, first match wins.
type sectionRule struct {
	terms []string
	fill  func(keyword string) string
}

// Synthesizer builds article outlines and full articles from classified
// topics using fixed, content-type-keyed templates.
type Synthesizer struct {
	// pause between generations in a batch
	Pause time.Duration
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{Pause: time.Second}
}

// Outline builds the deterministic article skeleton for a topic.
func (s *Synthesizer) Outline(topic Topic) Outline {
	analysis := Classify(topic.Keyword)

	return Outline{
		Title:              buildTitle(topic.Keyword, analysis.ContentType),
		MetaDescription:    buildMetaDescription(topic.Keyword, analysis.ContentType),
		Headings:           buildHeadings(topic.Keyword, analysis.ContentType),
		TargetKeywords:     buildTargetKeywords(topic.Keyword),
		EstimatedWordCount: estimateWordCount(analysis.ContentType),
		ContentType:        analysis.ContentType,
		SearchIntent:       analysis.SearchIntent,
	}
}

// buildTargetKeywords returns the keyword plus its six derived
// variants, deduplicated in case the keyword already matches a variant
// form.
func buildTargetKeywords(keyword string) []string {
	variants := []string{
		keyword,
		"free " + keyword,
		"online " + keyword,
		keyword + " tool",
		"best " + keyword,
		"how to " + keyword,
		keyword + " guide",
	}

	seen := make(map[string]bool, len(variants))
	result := make([]string, 0, len(variants))
	for _, variant := range variants {
		if seen[variant] {
			continue
		}
		seen[variant] = true
		result = append(result, variant)
	}

	return result
}

func estimateWordCount(contentType string) int {
	switch contentType {
	case "how-to-guide":
		return 1500
	case "comparison":
		return 2000
	case "listicle":
		return 1200
	case "tool-showcase":
		return 800
	default:
		return 1000
	}
}

// FullArticle expands every outline heading into a templated section
// and joins them into a markdown document.
func (s *Synthesizer) FullArticle(topic Topic) (Article, error) {
	if strings.TrimSpace(topic.Keyword) == "" {
		return Article{}, fmt.Errorf("empty keyword for topic")
	}

	outline := s.Outline(topic)

	sections := make([]Section, 0, len(outline.Headings))
	for _, heading := range outline.Headings {
		sections = append(sections, Section{
			Heading: heading,
			Content: sectionContent(heading, topic.Keyword),
		})
	}

	fullContent := combineSections(sections)

	return Article{
		Title:              outline.Title,
		MetaDescription:    outline.MetaDescription,
		Content:            fullContent,
		Sections:           sections,
		TargetKeywords:     outline.TargetKeywords,
		WordCount:          len(strings.Fields(fullContent)),
		EstimatedWordCount: outline.EstimatedWordCount,
		ContentType:        outline.ContentType,
		SearchIntent:       outline.SearchIntent,
		Topic:              topic.Keyword,
		GeneratedAt:        time.Now().UTC(),
	}, nil
}

var sectionRules = []sectionRule{
	{[]string{"What is"}, whatIsSection},
	{[]string{"How to", "Step-by-Step"}, howToSection},
	{[]string{"Features"}, featuresSection},
	{[]string{"Benefits"}, benefitsSection},
	{[]string{"Best", "Top"}, bestOptionsSection},
	{[]string{"FAQ", "Questions"}, faqSection},
}

func sectionContent(heading string, keyword string) string {
	for _, rule := range sectionRules {
		for _, term := range rule.terms {
			if strings.Contains(heading, term) {
				return rule.fill(keyword)
			}
		}
	}
	return genericSection(heading, keyword)
}

func combineSections(sections []Section) string {
	parts := make([]string, 0, len(sections)*3)
	for _, section := range sections {
		parts = append(parts, "## "+section.Heading, "", section.Content, "")
	}
	return strings.Join(parts, "\n")
}

// Batch generates articles for up to maxArticles topics. A failed topic
// is logged and skipped; surviving topics still produce articles.
func (s *Synthesizer) Batch(topics []Topic, maxArticles int) []Article {
	if maxArticles > 0 && len(topics) > maxArticles {
		topics = topics[:maxArticles]
	}

	slog.Info("Generating content batch", "topics", len(topics))

	articles := make([]Article, 0, len(topics))
	for i, topic := range topics {
		slog.Debug("Generating article", "index", i+1, "total", len(topics), "keyword", topic.Keyword)

		article, err := s.FullArticle(topic)
		if err != nil {
			slog.Error("Article generation failed", "keyword", topic.Keyword, "error", err)
			continue
		}
		articles = append(articles, article)

		if s.Pause > 0 && i < len(topics)-1 {
			time.Sleep(s.Pause)
		}
	}

	slog.Info("Content batch completed", "generated", len(articles), "requested", len(topics))
	return articles
}
