package commands

import (
	"context"
	"fmt"
	"log/slog"

	"keywordforge/app/cfg"
	"keywordforge/app/config"
	"keywordforge/app/content"
	"keywordforge/app/output"
	"keywordforge/app/pipeline"
)

type GenerateCommand struct {
	Seeds       []string `short:"s" long:"seed" description:"Seed keyword (repeatable)"`
	File        string   `short:"f" long:"file" description:"Seed profile YAML or plain seed list"`
	Sources     []string `long:"source" description:"Source to query: suggest, related, trends, ads, community (repeatable)"`
	MaxArticles int      `long:"max-articles" default:"0" description:"Cap on generated articles, 0 uses the profile value"`
	NoStore     bool     `long:"no-store" description:"Skip persisting results to the database"`
}

func (c *GenerateCommand) Execute(args []string) error {
	var profile *config.Profile
	var err error
	if c.File != "" {
		profile, err = config.Load(c.File)
	} else {
		profile, err = config.FromSeeds(c.Seeds)
	}
	if err != nil {
		return err
	}
	if len(c.Sources) > 0 {
		profile.Sources = c.Sources
	}

	maxArticles := profile.Generation.MaxArticles
	if c.MaxArticles > 0 {
		maxArticles = c.MaxArticles
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

	p := pipeline.New(adapters, content.NewSynthesizer(), store.keywords, store.articles, client.Throttle)
	result := p.Run(context.Background(), pipeline.Options{
		Seeds:       profile.Seeds,
		MinWords:    profile.Filters.MinWords,
		MaxWords:    profile.Filters.MaxWords,
		Exclude:     profile.Filters.Exclude,
		MaxArticles: maxArticles,
		SkipPersist: c.NoStore,
	})

	writer := output.NewWriter(cfg.Get().ArticlesDir)
	for _, article := range result.Articles {
		path, err := writer.WriteArticle(article.Title, article)
		if err != nil {
			slog.Error("Failed to write article artifact", "title", article.Title, "error", err)
			continue
		}
		slog.Debug("Article written", "path", path)
	}

	if _, err := writer.WriteTimestamped("pipeline_"+profile.Profile.Name, result); err != nil {
		slog.Error("Failed to write pipeline summary", "error", err)
	}

	fmt.Printf("Collected %d, kept %d after filtering, generated %d articles, persisted %d records\n",
		result.Collected, result.Filtered, result.Generated, result.Persisted)
	if len(result.Errors) > 0 {
		fmt.Printf("Completed with %d errors, see logs\n", len(result.Errors))
	}

	return nil
}
