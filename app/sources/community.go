package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"keywordforge/app/database"
)

// toolTerms are the tool-shaped phrases mined out of free-form text
// from community posts and trending news articles.
var toolTerms = []string{
	"pdf converter",
	"pdf merger",
	"pdf editor",
	"image converter",
	"image compressor",
	"background remover",
	"video converter",
	"file converter",
	"qr code generator",
	"password generator",
	"word counter",
	"text editor",
	"json formatter",
	"url shortener",
	"screenshot tool",
	"screen recorder",
	"color picker",
	"invoice generator",
	"resume builder",
	"unit converter",
}

// CommunitySource mines developer and productivity communities for
// tool-related keyword mentions: Reddit hot posts, Stack Exchange tags
// and the GitHub trending page. All three feeds are public and need no
// credentials.
type CommunitySource struct {
	client     *Client
	subreddits []string
	sites      []string
}

var _ Source = (*CommunitySource)(nil)

func NewCommunitySource(client *Client) *CommunitySource {
	return &CommunitySource{
		client:     client,
		subreddits: []string{"productivity", "software", "webdev", "InternetIsBeautiful"},
		sites:      []string{"superuser", "webapps"},
	}
}

func (s *CommunitySource) Name() string {
	return "community"
}

// Fetch implements Source by combining all community feeds. Each feed
// failure is logged and skipped so one outage never empties the run.
func (s *CommunitySource) Fetch(ctx context.Context, seed string) ([]database.Keyword, error) {
	var keywords []database.Keyword

	for _, subreddit := range s.subreddits {
		found, err := s.RedditPosts(ctx, subreddit, seed)
		if err != nil {
			slog.Warn("Reddit feed unavailable", "subreddit", subreddit, "error", err)
		} else {
			keywords = append(keywords, found...)
		}
		s.client.Throttle()
	}

	for _, site := range s.sites {
		found, err := s.StackExchangeTags(ctx, site, seed)
		if err != nil {
			slog.Warn("Stack Exchange feed unavailable", "site", site, "error", err)
		} else {
			keywords = append(keywords, found...)
		}
		s.client.Throttle()
	}

	found, err := s.GitHubTrending(ctx, seed)
	if err != nil {
		slog.Warn("GitHub trending unavailable", "error", err)
	} else {
		keywords = append(keywords, found...)
	}

	return keywords, nil
}

// RedditPosts scans a subreddit's hot listing for tool terms in titles
// and selftext.
func (s *CommunitySource) RedditPosts(ctx context.Context, subreddit string, seed string) ([]database.Keyword, error) {
	endpoint := fmt.Sprintf("https://www.reddit.com/r/%s/hot.json?limit=50", url.PathEscape(subreddit))

	data, err := s.client.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subreddit listing: %w", err)
	}

	var resp struct {
		Data struct {
			Children []struct {
				Data struct {
					Title    string `json:"title"`
					Selftext string `json:"selftext"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse subreddit listing: %w", err)
	}

	now := time.Now().UTC()
	var keywords []database.Keyword
	seen := make(map[string]bool)

	for _, child := range resp.Data.Children {
		text := strings.ToLower(child.Data.Title + " " + child.Data.Selftext)
		for _, term := range toolTerms {
			if seen[term] || !strings.Contains(text, term) {
				continue
			}
			seen[term] = true
			keywords = append(keywords, database.Keyword{
				Keyword:     term,
				Source:      "reddit_" + subreddit,
				SeedKeyword: seed,
				Timestamp:   now,
			})
		}
	}

	return keywords, nil
}

// StackExchangeTags fetches popular tags for a Stack Exchange site and
// keeps the multi-word ones as keyword candidates.
func (s *CommunitySource) StackExchangeTags(ctx context.Context, site string, seed string) ([]database.Keyword, error) {
	endpoint := "https://api.stackexchange.com/2.3/tags?order=desc&sort=popular&pagesize=50&site=" + url.QueryEscape(site)

	data, err := s.client.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}

	var resp struct {
		Items []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse tags: %w", err)
	}

	now := time.Now().UTC()
	var keywords []database.Keyword
	for _, item := range resp.Items {
		// Single-word tags ("css", "api") are too generic to act on.
		name := strings.ReplaceAll(item.Name, "-", " ")
		if !strings.Contains(name, " ") {
			continue
		}
		count := item.Count
		keywords = append(keywords, database.Keyword{
			Keyword:     name,
			Source:      "stackexchange_" + site,
			SeedKeyword: seed,
			Value:       &count,
			Timestamp:   now,
		})
	}

	return keywords, nil
}

// GitHubTrending scrapes repository descriptions from the GitHub
// trending page and mines them for tool terms.
func (s *CommunitySource) GitHubTrending(ctx context.Context, seed string) ([]database.Keyword, error) {
	data, err := s.client.Get(ctx, "https://github.com/trending")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse trending page: %w", err)
	}

	now := time.Now().UTC()
	var keywords []database.Keyword
	seen := make(map[string]bool)

	doc.Find("article.Box-row p").Each(func(_ int, sel *goquery.Selection) {
		description := strings.ToLower(strings.TrimSpace(sel.Text()))
		for _, term := range toolTerms {
			if seen[term] || !strings.Contains(description, term) {
				continue
			}
			seen[term] = true
			keywords = append(keywords, database.Keyword{
				Keyword:     term,
				Source:      "github_trending",
				SeedKeyword: seed,
				Timestamp:   now,
			})
		}
	})

	return keywords, nil
}
