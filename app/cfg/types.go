package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Collection configuration
	ScrapingDelay int
	UserAgent     string
	TrendsGeo     string

	// Output directories
	KeywordsDir string
	ArticlesDir string

	// Google Ads API credentials (optional)
	AdsDeveloperToken string
	AdsClientID       string
	AdsClientSecret   string
	AdsRefreshToken   string
	AdsCustomerID     string

	// HTTP API configuration
	Port         string
	APIAccessKey string

	// Application metadata
	Debug   bool
	Version string
}
