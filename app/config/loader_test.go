package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoad_YAMLProfile(t *testing.T) {
	path := writeTempFile(t, "profile.yaml", `
profile:
  name: pdf-tools
seeds:
  - pdf merger
  - pdf converter
sources:
  - suggest
  - trends
filters:
  min_words: 2
  max_words: 6
  exclude:
    - crack
generation:
  max_articles: 5
`)

	profile, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if profile.Profile.Name != "pdf-tools" {
		t.Errorf("Expected profile name pdf-tools, got %q", profile.Profile.Name)
	}
	if len(profile.Seeds) != 2 {
		t.Errorf("Expected 2 seeds, got %d", len(profile.Seeds))
	}
	if len(profile.Sources) != 2 || profile.Sources[1] != "trends" {
		t.Errorf("Unexpected sources: %v", profile.Sources)
	}
	if profile.Filters.MinWords != 2 || profile.Filters.MaxWords != 6 {
		t.Errorf("Unexpected filters: %+v", profile.Filters)
	}
	if profile.Generation.MaxArticles != 5 {
		t.Errorf("Expected max articles 5, got %d", profile.Generation.MaxArticles)
	}
}

func TestLoad_PlainSeedList(t *testing.T) {
	path := writeTempFile(t, "seeds.txt", `
# pdf tools
pdf merger

pdf converter
`)

	profile, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(profile.Seeds) != 2 {
		t.Fatalf("Expected 2 seeds, got %d: %v", len(profile.Seeds), profile.Seeds)
	}
	if profile.Seeds[0] != "pdf merger" || profile.Seeds[1] != "pdf converter" {
		t.Errorf("Unexpected seeds: %v", profile.Seeds)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeTempFile(t, "seeds.txt", "pdf merger\n")

	profile, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if profile.Profile.Name != "default" {
		t.Errorf("Expected default profile name, got %q", profile.Profile.Name)
	}
	if len(profile.Sources) == 0 {
		t.Error("Expected default sources")
	}
	if len(profile.Timeframes) != 1 || profile.Timeframes[0] != "today 12-m" {
		t.Errorf("Unexpected default timeframes: %v", profile.Timeframes)
	}
	if profile.Filters.MaxWords != 10 {
		t.Errorf("Expected default max words 10, got %d", profile.Filters.MaxWords)
	}
	if profile.Generation.MaxArticles != 10 {
		t.Errorf("Expected default max articles 10, got %d", profile.Generation.MaxArticles)
	}
}

func TestLoad_EmptySeedsRejected(t *testing.T) {
	path := writeTempFile(t, "seeds.txt", "# nothing here\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for empty seed list")
	}
}

func TestLoad_InvalidSourceRejected(t *testing.T) {
	path := writeTempFile(t, "profile.yaml", `
seeds:
  - pdf merger
sources:
  - telepathy
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown source")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFromSeeds(t *testing.T) {
	profile, err := FromSeeds([]string{"pdf merger"})
	if err != nil {
		t.Fatalf("FromSeeds failed: %v", err)
	}
	if len(profile.Sources) == 0 {
		t.Error("Expected default sources")
	}

	if _, err := FromSeeds(nil); err == nil {
		t.Error("Expected error for no seeds")
	}
}
