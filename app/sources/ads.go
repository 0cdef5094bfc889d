package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"keywordforge/app/database"
)

const (
	oauthTokenEndpoint = "https://oauth2.googleapis.com/token"
	adsAPIBase         = "https://googleads.googleapis.com/v17"
)

// AdsCredentials holds the Google Ads API access material. All fields
// are required.
type AdsCredentials struct {
	DeveloperToken string
	ClientID       string
	ClientSecret   string
	RefreshToken   string
	CustomerID     string
}

// AdsSource generates keyword ideas with real search volume, bid and
// competition metrics through the Google Ads Keyword Planner API. It is
// the only adapter that needs credentials; collection runs without it
// when they are absent.
type AdsSource struct {
	client *Client
	creds  AdsCredentials

	accessToken string
	tokenExpiry time.Time
}

var _ Source = (*AdsSource)(nil)

// NewAdsSource returns an error when any credential is missing so
// callers can degrade to credential-free sources.
func NewAdsSource(client *Client, creds AdsCredentials) (*AdsSource, error) {
	missing := []string{}
	if creds.DeveloperToken == "" {
		missing = append(missing, "developer token")
	}
	if creds.ClientID == "" {
		missing = append(missing, "client id")
	}
	if creds.ClientSecret == "" {
		missing = append(missing, "client secret")
	}
	if creds.RefreshToken == "" {
		missing = append(missing, "refresh token")
	}
	if creds.CustomerID == "" {
		missing = append(missing, "customer id")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("google ads credentials incomplete: missing %s", strings.Join(missing, ", "))
	}

	creds.CustomerID = strings.ReplaceAll(creds.CustomerID, "-", "")

	return &AdsSource{client: client, creds: creds}, nil
}

func (s *AdsSource) Name() string {
	return "google_ads_api"
}

// token exchanges the refresh token for an access token, caching it
// until shortly before expiry.
func (s *AdsSource) token(ctx context.Context) (string, error) {
	if s.accessToken != "" && time.Now().Before(s.tokenExpiry) {
		return s.accessToken, nil
	}

	form := url.Values{}
	form.Set("client_id", s.creds.ClientID)
	form.Set("client_secret", s.creds.ClientSecret)
	form.Set("refresh_token", s.creds.RefreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oauthTokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	data, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}

	s.accessToken = resp.AccessToken
	s.tokenExpiry = time.Now().Add(time.Duration(resp.ExpiresIn-60) * time.Second)

	return s.accessToken, nil
}

func (s *AdsSource) post(ctx context.Context, path string, body any) ([]byte, error) {
	accessToken, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, adsAPIBase+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", s.creds.DeveloperToken)
	req.Header.Set("login-customer-id", s.creds.CustomerID)

	return s.client.Do(req)
}

// keywordIdeaMetrics mirrors the API response; 64-bit values arrive as
// JSON strings.
type keywordIdeaMetrics struct {
	AvgMonthlySearches     json.Number `json:"avgMonthlySearches"`
	Competition            string      `json:"competition"`
	CompetitionIndex       json.Number `json:"competitionIndex"`
	LowTopOfPageBidMicros  json.Number `json:"lowTopOfPageBidMicros"`
	HighTopOfPageBidMicros json.Number `json:"highTopOfPageBidMicros"`
}

func (m keywordIdeaMetrics) apply(kw *database.Keyword) {
	if v, err := m.AvgMonthlySearches.Int64(); err == nil {
		searches := int(v)
		kw.AvgMonthlySearches = &searches
	}
	kw.Competition = m.Competition
	if v, err := m.CompetitionIndex.Int64(); err == nil {
		index := int(v)
		kw.CompetitionIndex = &index
	}
	if v, err := m.LowTopOfPageBidMicros.Int64(); err == nil {
		kw.LowBidMicros = &v
	}
	if v, err := m.HighTopOfPageBidMicros.Int64(); err == nil {
		kw.HighBidMicros = &v
	}
}

// Fetch implements Source for a single seed keyword.
func (s *AdsSource) Fetch(ctx context.Context, seed string) ([]database.Keyword, error) {
	return s.KeywordIdeas(ctx, []string{seed})
}

// KeywordIdeas expands seed keywords into keyword ideas with planner
// metrics attached.
func (s *AdsSource) KeywordIdeas(ctx context.Context, seeds []string) ([]database.Keyword, error) {
	body := map[string]any{
		"keywordSeed": map[string]any{"keywords": seeds},
		// 2840 is the United States geo target constant, 1000 English.
		"geoTargetConstants": []string{"geoTargetConstants/2840"},
		"language":           "languageConstants/1000",
		"keywordPlanNetwork": "GOOGLE_SEARCH",
	}

	data, err := s.post(ctx, "/customers/"+s.creds.CustomerID+":generateKeywordIdeas", body)
	if err != nil {
		return nil, fmt.Errorf("keyword ideas request failed: %w", err)
	}

	var resp struct {
		Results []struct {
			Text           string             `json:"text"`
			KeywordMetrics keywordIdeaMetrics `json:"keywordIdeaMetrics"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse keyword ideas: %w", err)
	}

	now := time.Now().UTC()
	keywords := make([]database.Keyword, 0, len(resp.Results))
	for _, result := range resp.Results {
		if result.Text == "" {
			continue
		}
		kw := database.Keyword{
			Keyword:      result.Text,
			Source:       s.Name(),
			SeedKeywords: seeds,
			Timestamp:    now,
		}
		if len(seeds) > 0 {
			kw.SeedKeyword = seeds[0]
		}
		result.KeywordMetrics.apply(&kw)
		keywords = append(keywords, kw)
	}

	return keywords, nil
}

// HistoricalMetrics fetches planner metrics for exact keywords without
// idea expansion.
func (s *AdsSource) HistoricalMetrics(ctx context.Context, keywords []string) ([]database.Keyword, error) {
	body := map[string]any{
		"keywords":           keywords,
		"geoTargetConstants": []string{"geoTargetConstants/2840"},
		"language":           "languageConstants/1000",
		"keywordPlanNetwork": "GOOGLE_SEARCH",
	}

	data, err := s.post(ctx, "/customers/"+s.creds.CustomerID+":generateKeywordHistoricalMetrics", body)
	if err != nil {
		return nil, fmt.Errorf("historical metrics request failed: %w", err)
	}

	var resp struct {
		Results []struct {
			Text           string             `json:"text"`
			KeywordMetrics keywordIdeaMetrics `json:"keywordMetrics"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse historical metrics: %w", err)
	}

	now := time.Now().UTC()
	records := make([]database.Keyword, 0, len(resp.Results))
	for _, result := range resp.Results {
		if result.Text == "" {
			continue
		}
		kw := database.Keyword{
			Keyword:     result.Text,
			Source:      "google_ads_historical",
			SeedKeyword: result.Text,
			Timestamp:   now,
		}
		result.KeywordMetrics.apply(&kw)
		records = append(records, kw)
	}

	return records, nil
}
