package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"keywordforge/app/cfg"
	"keywordforge/app/config"
	"keywordforge/app/database"
	"keywordforge/app/output"
	"keywordforge/app/sources"
)

type CollectCommand struct {
	Seeds      []string `short:"s" long:"seed" description:"Seed keyword (repeatable)"`
	File       string   `short:"f" long:"file" description:"Seed profile YAML or plain seed list, one keyword per line"`
	Sources    []string `long:"source" description:"Source to query: suggest, related, trends, ads, community (repeatable)"`
	Timeframes []string `long:"timeframe" description:"Google Trends timeframe (repeatable)"`
	NoStore    bool     `long:"no-store" description:"Skip persisting results to the database"`
}

// collectArtifact is the JSON artifact written after a collection run.
type collectArtifact struct {
	Profile     string          `json:"profile"`
	Seeds       []string        `json:"seeds"`
	Sources     []string        `json:"sources"`
	Keywords    []keywordRecord `json:"keywords"`
	TrendCounts map[string]int  `json:"trend_counts,omitempty"`
	CollectedAt time.Time       `json:"collected_at"`
}

type keywordRecord struct {
	Keyword     string `json:"keyword"`
	Source      string `json:"source"`
	SeedKeyword string `json:"seed_keyword,omitempty"`
	Value       *int   `json:"value,omitempty"`
}

func (c *CollectCommand) Execute(args []string) error {
	profile, err := c.profile()
	if err != nil {
		return err
	}

	client := newClient()
	adapters, err := buildSources(client, profile.Sources)
	if err != nil {
		return err
	}

	store, err := openStores()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	slog.Info("Starting collection", "profile", profile.Profile.Name, "seeds", len(profile.Seeds), "sources", len(adapters))

	var collected []database.Keyword
	seen := make(map[string]bool)
	var trendsSource *sources.TrendsSource

	for _, adapter := range adapters {
		if ts, ok := adapter.(*sources.TrendsSource); ok {
			trendsSource = ts
		}
		for _, seed := range profile.Seeds {
			keywords, err := adapter.Fetch(ctx, seed)
			if err != nil {
				slog.Warn("Source fetch failed", "source", adapter.Name(), "seed", seed, "error", err)
				client.Throttle()
				continue
			}
			for _, kw := range keywords {
				key := strings.ToLower(kw.Keyword)
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true
				collected = append(collected, kw)
			}
			client.Throttle()
		}
	}

	artifact := collectArtifact{
		Profile:     profile.Profile.Name,
		Seeds:       profile.Seeds,
		Sources:     profile.Sources,
		CollectedAt: time.Now().UTC(),
	}

	if trendsSource != nil {
		bundle := trendsSource.CollectBundle(ctx, profile.Seeds, profile.Timeframes)

		mined := trendsSource.MineTrendingArticles(ctx, bundle.TrendingSearches, 5)
		for _, kw := range mined {
			key := strings.ToLower(kw.Keyword)
			if seen[key] {
				continue
			}
			seen[key] = true
			collected = append(collected, kw)
		}

		artifact.TrendCounts = map[string]int{
			"queries":           len(bundle.Queries),
			"topics":            len(bundle.Topics),
			"interest_points":   len(bundle.InterestPoints),
			"trending_searches": len(bundle.TrendingSearches),
		}

		if !c.NoStore {
			if err := store.keywords.StoreTrends(bundle); err != nil {
				slog.Error("Failed to store trends", "error", err)
			}
		}
	}

	for _, kw := range collected {
		artifact.Keywords = append(artifact.Keywords, keywordRecord{
			Keyword:     kw.Keyword,
			Source:      kw.Source,
			SeedKeyword: kw.SeedKeyword,
			Value:       kw.Value,
		})
	}

	if !c.NoStore && len(collected) > 0 {
		if err := store.keywords.StoreKeywords(collected); err != nil {
			slog.Error("Failed to store keywords", "error", err)
		}
	}

	writer := output.NewWriter(cfg.Get().KeywordsDir)
	path, err := writer.WriteTimestamped("keywords_"+profile.Profile.Name, artifact)
	if err != nil {
		return fmt.Errorf("failed to write collection artifact: %w", err)
	}

	slog.Info("Collection completed", "keywords", len(collected), "artifact", path)
	fmt.Printf("Collected %d keywords across %d sources\n", len(collected), len(adapters))
	fmt.Printf("Artifact: %s\n", path)

	return nil
}

func (c *CollectCommand) profile() (*config.Profile, error) {
	if c.File != "" {
		profile, err := config.Load(c.File)
		if err != nil {
			return nil, err
		}
		if len(c.Seeds) > 0 {
			profile.Seeds = append(profile.Seeds, c.Seeds...)
		}
		if len(c.Sources) > 0 {
			profile.Sources = c.Sources
		}
		if len(c.Timeframes) > 0 {
			profile.Timeframes = c.Timeframes
		}
		return profile, nil
	}

	profile, err := config.FromSeeds(c.Seeds)
	if err != nil {
		return nil, err
	}
	if len(c.Sources) > 0 {
		profile.Sources = c.Sources
	}
	if len(c.Timeframes) > 0 {
		profile.Timeframes = c.Timeframes
	}
	return profile, nil
}
