package config

import (
	"fmt"
	"path/filepath"
	"time"
	_ "time/tzdata"
)

const (
	// ListingDirName is the directory, relative to the project root, holding the documents.
	ListingDirName = "meeting-notes"
	SummaryWords   = 50
	DefaultNumber  = 0
	// TimeZone every document date is localized to.
	TimeZone = "America/Los_Angeles"

	AtomFile = "atom.xml"
	RSSFile  = "rss.xml"
)

// Feed placeholders. They stay until site metadata is read from myst.yml.
const (
	BaseURL        = "https://example.com"
	FeedTitle      = "TODO: Get title from myst.yaml"
	FeedAuthor     = "TODO: Get author from individual posts"
	FeedEmail      = "TODO: Get email from individual posts"
	FeedLogo       = "TODO: Get logo from myst.yaml"
	FeedSubtitle   = "TODO: Get description from myst.yaml"
	FeedLanguage   = "en"
	AuthorFallback = "TODO: Get from myst.yml"
)

type Feed struct {
	BaseURL  string
	Title    string
	Author   string
	Email    string
	Logo     string
	Subtitle string
	Language string
}

// Config is built once per invocation and passed to every stage.
type Config struct {
	Root          string
	ListingDir    string
	SummaryWords  int
	DefaultNumber int
	Location      *time.Location
	Feed          Feed
	// AuthorFallback is used when a document names no author.
	AuthorFallback string
}

// New builds the configuration for a project rooted at root.
func New(root string) (*Config, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %s: %w", TimeZone, err)
	}
	return &Config{
		Root:          abs,
		ListingDir:    filepath.Join(abs, ListingDirName),
		SummaryWords:  SummaryWords,
		DefaultNumber: DefaultNumber,
		Location:      loc,
		Feed: Feed{
			BaseURL:  BaseURL,
			Title:    FeedTitle,
			Author:   FeedAuthor,
			Email:    FeedEmail,
			Logo:     FeedLogo,
			Subtitle: FeedSubtitle,
			Language: FeedLanguage,
		},
		AuthorFallback: AuthorFallback,
	}, nil
}

// GetSummaryWords returns the summary length, defaulting to SummaryWords.
func (c *Config) GetSummaryWords() int {
	if c.SummaryWords <= 0 {
		return SummaryWords
	}
	return c.SummaryWords
}

// AtomPath is where the Atom feed is written.
func (c *Config) AtomPath() string {
	return filepath.Join(c.ListingDir, AtomFile)
}

// RSSPath is where the RSS feed is written.
func (c *Config) RSSPath() string {
	return filepath.Join(c.ListingDir, RSSFile)
}
