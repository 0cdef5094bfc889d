package content

import (
	"strings"
)

// Classification is rule-based: ordered substring rules evaluated
// first-match-wins, so precedence stays auditable. Classify is a pure
// function of the keyword string.

type intentRule struct {
	intent string
	terms  []string
}

var searchIntentRules = []intentRule{
	{"informational", []string{"how", "what", "why", "when", "where", "guide", "tutorial", "learn"}},
	{"transactional", []string{"buy", "download", "free", "online", "tool", "converter"}},
	{"navigational", []string{"website", "site", "app", "software"}},
}

type contentTypeRule struct {
	contentType string
	terms       []string
}

var contentTypeRules = []contentTypeRule{
	{"how-to-guide", []string{"how to", "tutorial"}},
	{"comparison", []string{"vs", "comparison"}},
	{"listicle", []string{"best", "top"}},
	{"definition", []string{"what is", "definition"}},
	{"tool-showcase", []string{"free", "online"}},
}

type audienceRule struct {
	audience string
	terms    []string
}

var targetAudienceRules = []audienceRule{
	{"developers", []string{"developer", "programmer", "coding"}},
	{"business_users", []string{"business", "professional", "enterprise"}},
	{"students", []string{"student", "education", "learning"}},
}

// Classify maps a keyword string to intent, content type, audience and
// word-count-derived SEO labels.
func Classify(keyword string) Analysis {
	wordCount := len(strings.Fields(keyword))

	return Analysis{
		Keyword:          keyword,
		WordCount:        wordCount,
		SearchIntent:     determineSearchIntent(keyword),
		ContentType:      suggestContentType(keyword),
		TargetAudience:   identifyTargetAudience(keyword),
		SEOPotential:     assessSEOPotential(wordCount),
		CompetitionLevel: assessCompetition(wordCount),
	}
}

func determineSearchIntent(keyword string) string {
	lower := strings.ToLower(keyword)
	for _, rule := range searchIntentRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.intent
			}
		}
	}
	return "informational"
}

func suggestContentType(keyword string) string {
	lower := strings.ToLower(keyword)
	for _, rule := range contentTypeRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.contentType
			}
		}
	}
	return "informational"
}

func identifyTargetAudience(keyword string) string {
	lower := strings.ToLower(keyword)
	for _, rule := range targetAudienceRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.audience
			}
		}
	}
	return "general_users"
}

// Long-tail keywords rank easier; single words are the most contested.
func assessSEOPotential(wordCount int) string {
	switch {
	case wordCount >= 4:
		return "high"
	case wordCount >= 2:
		return "medium"
	default:
		return "low"
	}
}

func assessCompetition(wordCount int) string {
	switch {
	case wordCount >= 4:
		return "low"
	case wordCount >= 2:
		return "medium"
	default:
		return "high"
	}
}
