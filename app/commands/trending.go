package commands

import (
	"fmt"
)

type TrendingCommand struct {
	Days  int `long:"days" default:"7" description:"Lookback window in days"`
	Limit int `long:"limit" default:"20" description:"Maximum number of keywords to show"`
}

func (c *TrendingCommand) Execute(args []string) error {
	store, err := openStores()
	if err != nil {
		return err
	}
	defer store.Close()

	trending, err := store.keywords.GetTrendingKeywords(c.Days, c.Limit)
	if err != nil {
		return fmt.Errorf("failed to query trending keywords: %w", err)
	}

	if len(trending) == 0 {
		fmt.Printf("No keywords collected in the last %d days\n", c.Days)
		return nil
	}

	fmt.Printf("Trending keywords, last %d days:\n\n", c.Days)
	fmt.Printf("%-40s %12s %6s %10s\n", "KEYWORD", "AVG SEARCHES", "SEEN", "POTENTIAL")
	for _, kw := range trending {
		fmt.Printf("%-40s %12d %6d %10s\n",
			kw.Keyword, kw.AvgMonthlySearches, kw.Frequency,
			contentPotential(kw.AvgMonthlySearches, kw.Frequency))
	}

	return nil
}

// contentPotential scores a keyword by search volume weighted with how
// often it was seen across collection runs.
func contentPotential(avgMonthlySearches int, frequency int) string {
	score := avgMonthlySearches * frequency
	switch {
	case score > 50000:
		return "high"
	case score > 10000:
		return "medium"
	default:
		return "low"
	}
}
