package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability"
	"github.com/mmcdole/gofeed"

	"keywordforge/app/database"
)

const (
	trendsExploreEndpoint    = "https://trends.google.com/trends/api/explore"
	trendsWidgetDataEndpoint = "https://trends.google.com/trends/api/widgetdata"
	trendsDailyRSSEndpoint   = "https://trends.google.com/trends/trendingsearches/daily/rss"

	DefaultTimeframe = "today 12-m"
)

// TrendsSource collects related queries, related topics, interest over
// time and location-scoped trending searches from Google Trends. The
// explore/widget endpoints are unofficial JSON APIs; all calls are
// best-effort.
type TrendsSource struct {
	client     *Client
	feedParser *gofeed.Parser
	geo        string
	hl         string
	tz         int
}

var _ Source = (*TrendsSource)(nil)

func NewTrendsSource(client *Client, geo string) *TrendsSource {
	return &TrendsSource{
		client:     client,
		feedParser: gofeed.NewParser(),
		geo:        geo,
		hl:         "en-US",
		tz:         360,
	}
}

func (s *TrendsSource) Name() string {
	return "google_trends"
}

// Fetch implements Source by returning rising and top related queries
// for the default timeframe as keyword records.
func (s *TrendsSource) Fetch(ctx context.Context, seed string) ([]database.Keyword, error) {
	trends, err := s.RelatedQueries(ctx, seed, DefaultTimeframe)
	if err != nil {
		return nil, err
	}

	keywords := make([]database.Keyword, 0, len(trends))
	for _, trend := range trends {
		value := trend.Value
		keywords = append(keywords, database.Keyword{
			Keyword:     trend.Query,
			Source:      "google_trends_" + trend.TrendType,
			SeedKeyword: seed,
			Value:       &value,
			Timestamp:   trend.Timestamp,
		})
	}

	return keywords, nil
}

// trendsWidget is one entry of the explore response; Request is passed
// back verbatim to the widgetdata endpoints.
type trendsWidget struct {
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

func (s *TrendsSource) explore(ctx context.Context, keywords []string, timeframe string) ([]trendsWidget, error) {
	type comparisonItem struct {
		Keyword string `json:"keyword"`
		Geo     string `json:"geo"`
		Time    string `json:"time"`
	}

	items := make([]comparisonItem, 0, len(keywords))
	for _, kw := range keywords {
		items = append(items, comparisonItem{Keyword: kw, Geo: "", Time: timeframe})
	}

	reqJSON, err := json.Marshal(map[string]any{
		"comparisonItem": items,
		"category":       0,
		"property":       "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode explore request: %w", err)
	}

	params := url.Values{}
	params.Set("hl", s.hl)
	params.Set("tz", fmt.Sprintf("%d", s.tz))
	params.Set("req", string(reqJSON))

	data, err := s.client.Get(ctx, trendsExploreEndpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("explore request failed: %w", err)
	}

	var resp struct {
		Widgets []trendsWidget `json:"widgets"`
	}
	if err := json.Unmarshal(stripJSONGuard(data), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse explore response: %w", err)
	}

	return resp.Widgets, nil
}

func (s *TrendsSource) widgetData(ctx context.Context, endpoint string, widget trendsWidget) ([]byte, error) {
	params := url.Values{}
	params.Set("hl", s.hl)
	params.Set("tz", fmt.Sprintf("%d", s.tz))
	params.Set("token", widget.Token)
	params.Set("req", string(widget.Request))

	data, err := s.client.Get(ctx, trendsWidgetDataEndpoint+"/"+endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("widget data request failed: %w", err)
	}

	return stripJSONGuard(data), nil
}

// stripJSONGuard removes the anti-hijacking prefix (")]}'") Google
// prepends to trends API responses.
func stripJSONGuard(data []byte) []byte {
	if i := bytes.IndexByte(data, '\n'); i >= 0 && i < 10 {
		return data[i+1:]
	}
	return data
}

type rankedListResponse struct {
	Default struct {
		RankedList []struct {
			RankedKeyword []struct {
				Query string `json:"query"`
				Topic struct {
					Title string `json:"title"`
					Type  string `json:"type"`
				} `json:"topic"`
				Value int `json:"value"`
			} `json:"rankedKeyword"`
		} `json:"rankedList"`
	} `json:"default"`
}

// RelatedQueries returns top and rising related queries for a keyword
// and timeframe.
func (s *TrendsSource) RelatedQueries(ctx context.Context, keyword string, timeframe string) ([]database.Trend, error) {
	widgets, err := s.explore(ctx, []string{keyword}, timeframe)
	if err != nil {
		return nil, err
	}

	widget, ok := findWidget(widgets, "RELATED_QUERIES")
	if !ok {
		return nil, fmt.Errorf("no related queries widget for %q", keyword)
	}

	data, err := s.widgetData(ctx, "relatedsearches", widget)
	if err != nil {
		return nil, err
	}

	var resp rankedListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse related queries: %w", err)
	}

	now := time.Now().UTC()
	var trends []database.Trend
	// rankedList[0] holds top queries, rankedList[1] rising ones.
	for i, list := range resp.Default.RankedList {
		trendType := "top"
		if i == 1 {
			trendType = "rising"
		}
		for _, ranked := range list.RankedKeyword {
			if ranked.Query == "" {
				continue
			}
			trends = append(trends, database.Trend{
				Keyword:   keyword,
				Query:     ranked.Query,
				Value:     ranked.Value,
				TrendType: trendType,
				Timeframe: timeframe,
				Source:    "google_trends",
				Timestamp: now,
			})
		}
	}

	return trends, nil
}

// RelatedTopics returns top and rising related topics for a keyword and
// timeframe.
func (s *TrendsSource) RelatedTopics(ctx context.Context, keyword string, timeframe string) ([]database.Topic, error) {
	widgets, err := s.explore(ctx, []string{keyword}, timeframe)
	if err != nil {
		return nil, err
	}

	widget, ok := findWidget(widgets, "RELATED_TOPICS")
	if !ok {
		return nil, fmt.Errorf("no related topics widget for %q", keyword)
	}

	data, err := s.widgetData(ctx, "relatedsearches", widget)
	if err != nil {
		return nil, err
	}

	var resp rankedListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse related topics: %w", err)
	}

	now := time.Now().UTC()
	var topics []database.Topic
	for i, list := range resp.Default.RankedList {
		trendType := "top"
		if i == 1 {
			trendType = "rising"
		}
		for _, ranked := range list.RankedKeyword {
			if ranked.Topic.Title == "" {
				continue
			}
			topics = append(topics, database.Topic{
				Keyword:    keyword,
				TopicTitle: ranked.Topic.Title,
				TopicType:  ranked.Topic.Type,
				Value:      ranked.Value,
				TrendType:  trendType,
				Timeframe:  timeframe,
				Source:     "google_trends",
				Timestamp:  now,
			})
		}
	}

	return topics, nil
}

// InterestOverTime returns the interest series for a set of keywords
// over a timeframe, one point per keyword per date.
func (s *TrendsSource) InterestOverTime(ctx context.Context, keywords []string, timeframe string) ([]database.InterestPoint, error) {
	widgets, err := s.explore(ctx, keywords, timeframe)
	if err != nil {
		return nil, err
	}

	widget, ok := findWidget(widgets, "TIMESERIES")
	if !ok {
		return nil, fmt.Errorf("no timeseries widget for %v", keywords)
	}

	data, err := s.widgetData(ctx, "multiline", widget)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Default struct {
			TimelineData []struct {
				FormattedAxisTime string `json:"formattedAxisTime"`
				FormattedTime     string `json:"formattedTime"`
				Value             []int  `json:"value"`
				IsPartial         bool   `json:"isPartial"`
			} `json:"timelineData"`
		} `json:"default"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse interest over time: %w", err)
	}

	now := time.Now().UTC()
	var points []database.InterestPoint
	for _, entry := range resp.Default.TimelineData {
		for i, keyword := range keywords {
			if i >= len(entry.Value) {
				break
			}
			points = append(points, database.InterestPoint{
				Keywords:    keywords,
				Date:        entry.FormattedTime,
				Value:       entry.Value[i],
				KeywordName: keyword,
				IsPartial:   entry.IsPartial,
				Timeframe:   timeframe,
				Source:      "google_trends",
				Timestamp:   now,
			})
		}
	}

	return points, nil
}

// TrendingSearches returns the daily trending searches for the
// configured location, parsed from the public RSS feed.
func (s *TrendsSource) TrendingSearches(ctx context.Context) ([]database.TrendingSearch, error) {
	data, err := s.client.Get(ctx, trendsDailyRSSEndpoint+"?geo="+url.QueryEscape(s.geo))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending searches feed: %w", err)
	}

	feed, err := s.feedParser.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse trending searches feed: %w", err)
	}

	now := time.Now().UTC()
	searches := make([]database.TrendingSearch, 0, len(feed.Items))
	for i, item := range feed.Items {
		search := database.TrendingSearch{
			Rank:       i + 1,
			SearchTerm: item.Title,
			Location:   s.geo,
			Source:     "google_trends",
			Timestamp:  now,
		}

		if ht, ok := item.Extensions["ht"]; ok {
			if traffic, ok := ht["approx_traffic"]; ok && len(traffic) > 0 {
				search.Traffic = traffic[0].Value
			}
			if pictures, ok := ht["picture"]; ok && len(pictures) > 0 {
				search.ImageURL = pictures[0].Value
			}
			for _, newsItem := range ht["news_item"] {
				article := database.TrendingArticle{}
				if titles, ok := newsItem.Children["news_item_title"]; ok && len(titles) > 0 {
					article.Title = titles[0].Value
				}
				if urls, ok := newsItem.Children["news_item_url"]; ok && len(urls) > 0 {
					article.URL = urls[0].Value
				}
				if srcs, ok := newsItem.Children["news_item_source"]; ok && len(srcs) > 0 {
					article.Source = srcs[0].Value
				}
				if article.URL != "" || article.Title != "" {
					search.Articles = append(search.Articles, article)
				}
			}
		}

		searches = append(searches, search)
	}

	return searches, nil
}

// MineTrendingArticles extracts readable text from articles attached to
// trending searches and mines it for tool-related terms, producing
// community-style keyword records.
func (s *TrendsSource) MineTrendingArticles(ctx context.Context, searches []database.TrendingSearch, maxArticles int) []database.Keyword {
	now := time.Now().UTC()
	var keywords []database.Keyword
	fetched := 0

	for _, search := range searches {
		for _, article := range search.Articles {
			if fetched >= maxArticles {
				return keywords
			}
			if article.URL == "" {
				continue
			}

			data, err := s.client.Get(ctx, article.URL)
			if err != nil {
				slog.Debug("Trending article fetch failed", "url", article.URL, "error", err)
				continue
			}
			fetched++
			s.client.Throttle()

			extracted, err := readability.FromReader(strings.NewReader(string(data)), nil)
			if err != nil {
				slog.Debug("Trending article extraction failed", "url", article.URL, "error", err)
				continue
			}

			text := strings.ToLower(extracted.TextContent)
			for _, term := range toolTerms {
				if strings.Contains(text, term) {
					keywords = append(keywords, database.Keyword{
						Keyword:     term,
						Source:      "trending_articles",
						SeedKeyword: search.SearchTerm,
						Timestamp:   now,
					})
				}
			}
		}
	}

	return keywords
}

// CollectBundle gathers everything a trend collection run produces:
// related queries and topics per keyword and timeframe, the interest
// series per timeframe, and the location's trending searches. Failed
// calls degrade to empty slices.
func (s *TrendsSource) CollectBundle(ctx context.Context, keywords []string, timeframes []string) database.TrendsBundle {
	if len(timeframes) == 0 {
		timeframes = []string{DefaultTimeframe}
	}

	bundle := database.TrendsBundle{
		Keywords:    keywords,
		Timeframes:  timeframes,
		CollectedAt: time.Now().UTC(),
	}

	for _, keyword := range keywords {
		for _, timeframe := range timeframes {
			s.client.Throttle()

			queries, err := s.RelatedQueries(ctx, keyword, timeframe)
			if err != nil {
				slog.Warn("Related queries unavailable", "keyword", keyword, "timeframe", timeframe, "error", err)
			} else {
				bundle.Queries = append(bundle.Queries, queries...)
			}

			topics, err := s.RelatedTopics(ctx, keyword, timeframe)
			if err != nil {
				slog.Warn("Related topics unavailable", "keyword", keyword, "timeframe", timeframe, "error", err)
			} else {
				bundle.Topics = append(bundle.Topics, topics...)
			}
		}
	}

	for _, timeframe := range timeframes {
		s.client.Throttle()

		points, err := s.InterestOverTime(ctx, keywords, timeframe)
		if err != nil {
			slog.Warn("Interest over time unavailable", "timeframe", timeframe, "error", err)
			continue
		}
		bundle.InterestPoints = append(bundle.InterestPoints, points...)
	}

	searches, err := s.TrendingSearches(ctx)
	if err != nil {
		slog.Warn("Trending searches unavailable", "geo", s.geo, "error", err)
	} else {
		bundle.TrendingSearches = searches
	}

	return bundle
}

func findWidget(widgets []trendsWidget, id string) (trendsWidget, bool) {
	for _, widget := range widgets {
		if widget.ID == id {
			return widget, true
		}
	}
	return trendsWidget{}, false
}
