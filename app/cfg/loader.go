package cfg

import (
	"cmp"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Database configuration
	DBPath string `long:"db-path" env:"DB_PATH" default:"./data/keywordforge.db" description:"Path to the SQLite database file"`

	// Collection configuration
	ScrapingDelay int    `long:"scraping-delay" env:"SCRAPING_DELAY" default:"2" description:"Delay in seconds between external requests"`
	UserAgent     string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36" description:"User agent string for HTTP requests"`
	TrendsGeo     string `long:"trends-geo" env:"TRENDS_GEO" default:"US" description:"Geographic location for trending searches"`

	// Output directories
	KeywordsDir string `long:"keywords-dir" env:"KEYWORDS_DIR" default:"./data/keywords" description:"Directory for keyword collection artifacts"`
	ArticlesDir string `long:"articles-dir" env:"ARTICLES_DIR" default:"./data/articles" description:"Directory for generated article artifacts"`

	// Google Ads API credentials (optional, ads source is disabled without them)
	AdsDeveloperToken string `long:"ads-developer-token" env:"GOOGLE_ADS_DEVELOPER_TOKEN" description:"Google Ads API developer token"`
	AdsClientID       string `long:"ads-client-id" env:"GOOGLE_ADS_CLIENT_ID" description:"Google Ads OAuth client ID"`
	AdsClientSecret   string `long:"ads-client-secret" env:"GOOGLE_ADS_CLIENT_SECRET" description:"Google Ads OAuth client secret"`
	AdsRefreshToken   string `long:"ads-refresh-token" env:"GOOGLE_ADS_REFRESH_TOKEN" description:"Google Ads OAuth refresh token"`
	AdsCustomerID     string `long:"ads-customer-id" env:"GOOGLE_ADS_CUSTOMER_ID" description:"Google Ads customer ID"`

	// HTTP API configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port for the serve command"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authenticated endpoints (optional)"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// NewParser builds a go-flags parser over the global options. Commands
// are registered on the returned parser by the caller; Store must be
// called after a successful parse.
func NewParser() (*flags.Parser, *rawCfg) {
	raw := &rawCfg{}
	return flags.NewParser(raw, flags.Default), raw
}

// Store publishes the parsed configuration for cfg.Get.
func Store(raw *rawCfg) *Cfg {
	cfg := &Cfg{
		DBPath:            raw.DBPath,
		ScrapingDelay:     raw.ScrapingDelay,
		UserAgent:         raw.UserAgent,
		TrendsGeo:         raw.TrendsGeo,
		KeywordsDir:       raw.KeywordsDir,
		ArticlesDir:       raw.ArticlesDir,
		AdsDeveloperToken: raw.AdsDeveloperToken,
		AdsClientID:       raw.AdsClientID,
		AdsClientSecret:   raw.AdsClientSecret,
		AdsRefreshToken:   raw.AdsRefreshToken,
		AdsCustomerID:     raw.AdsCustomerID,
		Port:              raw.Port,
		APIAccessKey:      raw.APIAccessKey,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	globalCfg = cfg

	return cfg
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - parse flags before calling cfg.Get()")
	}
	return globalCfg
}
