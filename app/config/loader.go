package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a seed file. YAML files are parsed as full profiles; any
// other file is treated as a plain seed list, one keyword per line,
// with blank lines and #-comments ignored.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var profile *Profile
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		profile, err = parseYAML(data)
	} else {
		profile, err = parsePlain(data)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}

	setDefaults(profile)

	if err := validate(profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return profile, nil
}

// FromSeeds builds a profile for ad-hoc seeds passed on the command
// line, with the same defaults a file-based profile gets.
func FromSeeds(seeds []string) (*Profile, error) {
	profile := &Profile{Seeds: seeds}
	setDefaults(profile)

	if err := validate(profile); err != nil {
		return nil, fmt.Errorf("invalid seeds: %w", err)
	}

	return profile, nil
}

func parseYAML(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &profile, nil
}

func parsePlain(data []byte) (*Profile, error) {
	var profile Profile

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		profile.Seeds = append(profile.Seeds, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan seed lines: %w", err)
	}

	return &profile, nil
}

func setDefaults(profile *Profile) {
	if profile.Profile.Name == "" {
		profile.Profile.Name = "default"
	}
	if len(profile.Sources) == 0 {
		profile.Sources = []string{"suggest", "related", "trends", "community"}
	}
	if len(profile.Timeframes) == 0 {
		profile.Timeframes = []string{"today 12-m"}
	}
	if profile.Filters.MaxWords == 0 {
		profile.Filters.MaxWords = 10
	}
	if profile.Generation.MaxArticles == 0 {
		profile.Generation.MaxArticles = 10
	}
}

func validate(profile *Profile) error {
	if len(profile.Seeds) == 0 {
		return fmt.Errorf("at least one seed keyword is required")
	}

	validSources := map[string]bool{
		"suggest":   true,
		"related":   true,
		"trends":    true,
		"ads":       true,
		"community": true,
	}
	for i, source := range profile.Sources {
		if !validSources[source] {
			return fmt.Errorf("invalid source at index %d: %s", i, source)
		}
	}

	if profile.Filters.MinWords < 0 {
		return fmt.Errorf("min words must be non-negative")
	}
	if profile.Filters.MaxWords < profile.Filters.MinWords {
		return fmt.Errorf("max words must not be below min words")
	}
	if profile.Generation.MaxArticles < 0 {
		return fmt.Errorf("max articles must be non-negative")
	}

	return nil
}
