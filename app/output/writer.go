package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var slugStrip = regexp.MustCompile(`[^\w\s-]`)
var slugCollapse = regexp.MustCompile(`[\s-]+`)

// Slug turns a title into a filesystem-safe filename stem: lowercase,
// punctuation stripped, whitespace runs collapsed to single hyphens.
func Slug(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Writer persists JSON artifacts under a base directory, creating it on
// first use.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write marshals v as 2-space-indented JSON into name under the base
// directory and returns the full path.
func (w *Writer) Write(name string, v any) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode artifact: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return path, nil
}

// WriteTimestamped writes v to "<prefix>_<UTC timestamp>.json".
func (w *Writer) WriteTimestamped(prefix string, v any) (string, error) {
	name := fmt.Sprintf("%s_%s.json", prefix, time.Now().UTC().Format("20060102_150405"))
	return w.Write(name, v)
}

// WriteArticle writes one article artifact named after its slugged
// title.
func (w *Writer) WriteArticle(title string, v any) (string, error) {
	slug := Slug(title)
	if slug == "" {
		slug = "article"
	}
	return w.Write(slug+".json", v)
}
