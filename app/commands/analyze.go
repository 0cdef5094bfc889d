package commands

import (
	"fmt"

	"keywordforge/app/cfg"
	"keywordforge/app/content"
	"keywordforge/app/output"
)

type AnalyzeCommand struct {
	Write bool `long:"write" description:"Write the analysis as a JSON artifact"`

	Args struct {
		Keywords []string `positional-arg-name:"keyword" required:"1"`
	} `positional-args:"yes"`
}

func (c *AnalyzeCommand) Execute(args []string) error {
	analyses := make([]content.Analysis, 0, len(c.Args.Keywords))
	for _, keyword := range c.Args.Keywords {
		analysis := content.Classify(keyword)
		analyses = append(analyses, analysis)

		fmt.Printf("%s\n", analysis.Keyword)
		fmt.Printf("  words: %d  intent: %s  type: %s\n", analysis.WordCount, analysis.SearchIntent, analysis.ContentType)
		fmt.Printf("  audience: %s  seo potential: %s  competition: %s\n",
			analysis.TargetAudience, analysis.SEOPotential, analysis.CompetitionLevel)
	}

	if c.Write {
		writer := output.NewWriter(cfg.Get().KeywordsDir)
		path, err := writer.WriteTimestamped("analysis", analyses)
		if err != nil {
			return fmt.Errorf("failed to write analysis artifact: %w", err)
		}
		fmt.Printf("Artifact: %s\n", path)
	}

	return nil
}
