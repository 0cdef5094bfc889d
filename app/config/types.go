package config

// Profile describes one collection run: the seed keywords, which
// sources to query, how results are filtered and how many articles to
// generate.
type Profile struct {
	Profile struct {
		Name string `yaml:"name"`
	} `yaml:"profile"`
	Seeds      []string `yaml:"seeds"`
	Sources    []string `yaml:"sources"`
	Timeframes []string `yaml:"timeframes"`
	Filters    struct {
		MinWords int      `yaml:"min_words"`
		MaxWords int      `yaml:"max_words"`
		Exclude  []string `yaml:"exclude"`
	} `yaml:"filters"`
	Generation struct {
		MaxArticles int `yaml:"max_articles"`
	} `yaml:"generation"`
}
