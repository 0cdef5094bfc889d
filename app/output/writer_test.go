package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		slug  string
	}{
		{"Pdf Merger: Everything You Need to Know", "pdf-merger-everything-you-need-to-know"},
		{"How to How To Merge Pdf Files: Complete Guide", "how-to-how-to-merge-pdf-files-complete-guide"},
		{"Best PDF Tools in 2024", "best-pdf-tools-in-2024"},
		{"  spaced   out  ", "spaced-out"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Slug(tt.title); got != tt.slug {
			t.Errorf("Slug(%q) = %q, expected %q", tt.title, got, tt.slug)
		}
	}
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(filepath.Join(dir, "nested"))

	path, err := writer.Write("result.json", map[string]int{"keywords": 3})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Artifact is not valid JSON: %v", err)
	}
	if decoded["keywords"] != 3 {
		t.Errorf("Unexpected artifact content: %v", decoded)
	}

	if !strings.Contains(string(data), "\n  ") {
		t.Error("Artifact should be indented with two spaces")
	}
}

func TestWriter_WriteTimestamped(t *testing.T) {
	writer := NewWriter(t.TempDir())

	path, err := writer.WriteTimestamped("keywords_default", []string{"pdf merger"})
	if err != nil {
		t.Fatalf("WriteTimestamped failed: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "keywords_default_") || !strings.HasSuffix(name, ".json") {
		t.Errorf("Unexpected artifact name: %q", name)
	}
}

func TestWriter_WriteArticle(t *testing.T) {
	writer := NewWriter(t.TempDir())

	path, err := writer.WriteArticle("Pdf Merger: Everything You Need to Know", map[string]string{"title": "x"})
	if err != nil {
		t.Fatalf("WriteArticle failed: %v", err)
	}
	if filepath.Base(path) != "pdf-merger-everything-you-need-to-know.json" {
		t.Errorf("Unexpected article filename: %q", filepath.Base(path))
	}

	// Unsluggable titles fall back to a fixed name.
	path, err = writer.WriteArticle("!!!", map[string]string{})
	if err != nil {
		t.Fatalf("WriteArticle failed: %v", err)
	}
	if filepath.Base(path) != "article.json" {
		t.Errorf("Unexpected fallback filename: %q", filepath.Base(path))
	}
}
