package commands

import (
	"fmt"
)

type SuggestCommand struct {
	Limit int  `long:"limit" default:"10" description:"Maximum number of suggestions per seed"`
	Ideas bool `long:"ideas" description:"Expand each suggestion into content ideas"`

	Args struct {
		Seeds []string `positional-arg-name:"seed" required:"1"`
	} `positional-args:"yes"`
}

func (c *SuggestCommand) Execute(args []string) error {
	store, err := openStores()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, seed := range c.Args.Seeds {
		suggestions, err := store.keywords.GetKeywordSuggestions(seed, c.Limit)
		if err != nil {
			return fmt.Errorf("failed to query suggestions for %q: %w", seed, err)
		}

		fmt.Printf("Suggestions for %q:\n", seed)
		if len(suggestions) == 0 {
			fmt.Println("  none stored, run collect first")
			continue
		}

		for _, suggestion := range suggestions {
			fmt.Printf("  %-40s %6d  %s\n", suggestion.Keyword, suggestion.Value, suggestion.Type)
			if c.Ideas {
				for _, idea := range contentIdeas(suggestion.Keyword) {
					fmt.Printf("    - %-45s [%s]\n", idea, ideaPriority(suggestion.Value))
				}
			}
		}
		fmt.Println()
	}

	return nil
}

// contentIdeas expands a keyword into article-shaped working titles.
func contentIdeas(keyword string) []string {
	return []string{
		"How to " + keyword,
		"Best " + keyword + " tools",
		keyword + " guide",
		"Top " + keyword + " solutions",
		keyword + " tutorial",
	}
}

// ideaPriority maps a trend value to an editorial priority.
func ideaPriority(value int) string {
	switch {
	case value > 80:
		return "high"
	case value > 50:
		return "medium"
	default:
		return "low"
	}
}
