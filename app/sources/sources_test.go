package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Get_SetsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient("Test Agent", 0)
	data, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if string(data) != "ok" {
		t.Errorf("Unexpected body: %q", data)
	}
	if gotAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got %q", gotAgent)
	}
}

func TestClient_Get_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("Test Agent", 0)
	if _, err := client.Get(context.Background(), server.URL); err == nil {
		t.Error("Expected error for non-200 status")
	}
}

func TestSuggestSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "pdf merger" {
			t.Errorf("Unexpected query: %q", r.URL.Query().Get("q"))
		}
		w.Write([]byte(`["pdf merger",["pdf merger online","pdf merger free","pdf merger and splitter"]]`))
	}))
	defer server.Close()

	source := NewSuggestSource(NewClient("Test Agent", 0))
	source.endpoint = server.URL

	keywords, err := source.Fetch(context.Background(), "pdf merger")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(keywords) != 3 {
		t.Fatalf("Expected 3 keywords, got %d", len(keywords))
	}
	if keywords[0].Keyword != "pdf merger online" {
		t.Errorf("Unexpected first keyword: %q", keywords[0].Keyword)
	}
	for _, kw := range keywords {
		if kw.Source != "google_suggestions" {
			t.Errorf("Unexpected source: %q", kw.Source)
		}
		if kw.SeedKeyword != "pdf merger" {
			t.Errorf("Unexpected seed keyword: %q", kw.SeedKeyword)
		}
	}
}

func TestSuggestSource_Fetch_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["pdf merger"]`))
	}))
	defer server.Close()

	source := NewSuggestSource(NewClient("Test Agent", 0))
	source.endpoint = server.URL

	keywords, err := source.Fetch(context.Background(), "pdf merger")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(keywords) != 0 {
		t.Errorf("Expected no keywords, got %d", len(keywords))
	}
}

func TestStripJSONGuard(t *testing.T) {
	guarded := []byte(")]}'\n{\"widgets\":[]}")
	if got := string(stripJSONGuard(guarded)); got != `{"widgets":[]}` {
		t.Errorf("Unexpected stripped payload: %q", got)
	}

	plain := []byte(`{"widgets":[]}`)
	if got := string(stripJSONGuard(plain)); got != `{"widgets":[]}` {
		t.Errorf("Payload without guard should pass through, got %q", got)
	}
}

func TestFindWidget(t *testing.T) {
	widgets := []trendsWidget{
		{ID: "TIMESERIES", Token: "a"},
		{ID: "RELATED_QUERIES", Token: "b"},
	}

	widget, ok := findWidget(widgets, "RELATED_QUERIES")
	if !ok || widget.Token != "b" {
		t.Errorf("Expected related queries widget, got %+v (ok=%v)", widget, ok)
	}

	if _, ok := findWidget(widgets, "RELATED_TOPICS"); ok {
		t.Error("Expected no match for missing widget")
	}
}

func TestNewAdsSource_MissingCredentials(t *testing.T) {
	client := NewClient("Test Agent", 0)

	if _, err := NewAdsSource(client, AdsCredentials{}); err == nil {
		t.Error("Expected error for empty credentials")
	}

	creds := AdsCredentials{
		DeveloperToken: "token",
		ClientID:       "id",
		ClientSecret:   "secret",
		RefreshToken:   "refresh",
	}
	if _, err := NewAdsSource(client, creds); err == nil {
		t.Error("Expected error when customer id is missing")
	}

	creds.CustomerID = "123-456-7890"
	source, err := NewAdsSource(client, creds)
	if err != nil {
		t.Fatalf("NewAdsSource failed: %v", err)
	}
	if source.creds.CustomerID != "1234567890" {
		t.Errorf("Customer id should be stripped of dashes, got %q", source.creds.CustomerID)
	}
}
