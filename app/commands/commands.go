package commands

import (
	"fmt"
	"log/slog"

	"keywordforge/app/cfg"
	"keywordforge/app/database"
	"keywordforge/app/sources"
)

// stores bundles the shared database handle and repositories opened by
// every command.
type stores struct {
	db       *database.DB
	keywords *database.KeywordRepository
	articles *database.ArticleRepository
}

func openStores() (*stores, error) {
	db, err := database.NewConnection(cfg.Get().DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("Database ready", "migration_version", version, "dirty", dirty)

	return &stores{
		db:       db,
		keywords: database.NewKeywordRepository(db),
		articles: database.NewArticleRepository(db),
	}, nil
}

func (s *stores) Close() {
	s.db.Close()
}

// buildSources instantiates the requested adapters over a shared HTTP
// client. Unknown names error; the ads adapter silently drops out when
// credentials are incomplete.
func buildSources(client *sources.Client, names []string) ([]sources.Source, error) {
	c := cfg.Get()

	var built []sources.Source
	for _, name := range names {
		switch name {
		case "suggest":
			built = append(built, sources.NewSuggestSource(client))
		case "related":
			built = append(built, sources.NewRelatedSearchSource(client), sources.NewPeopleAlsoAskSource(client))
		case "trends":
			built = append(built, sources.NewTrendsSource(client, c.TrendsGeo))
		case "community":
			built = append(built, sources.NewCommunitySource(client))
		case "ads":
			ads, err := sources.NewAdsSource(client, sources.AdsCredentials{
				DeveloperToken: c.AdsDeveloperToken,
				ClientID:       c.AdsClientID,
				ClientSecret:   c.AdsClientSecret,
				RefreshToken:   c.AdsRefreshToken,
				CustomerID:     c.AdsCustomerID,
			})
			if err != nil {
				slog.Warn("Ads source disabled", "error", err)
				continue
			}
			built = append(built, ads)
		default:
			return nil, fmt.Errorf("unknown source: %s", name)
		}
	}

	if len(built) == 0 {
		return nil, fmt.Errorf("no usable sources configured")
	}

	return built, nil
}

func newClient() *sources.Client {
	c := cfg.Get()
	return sources.NewClient(c.UserAgent, c.ScrapingDelay)
}
