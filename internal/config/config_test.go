package config

import (
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.ListingDir != filepath.Join(dir, "meeting-notes") {
		t.Errorf("ListingDir = %q", cfg.ListingDir)
	}
	if cfg.Location.String() != "America/Los_Angeles" {
		t.Errorf("Location = %s", cfg.Location)
	}
	if cfg.Feed.BaseURL != "https://example.com" {
		t.Errorf("BaseURL = %q", cfg.Feed.BaseURL)
	}
	if cfg.AtomPath() != filepath.Join(dir, "meeting-notes", "atom.xml") {
		t.Errorf("AtomPath = %q", cfg.AtomPath())
	}
	if cfg.RSSPath() != filepath.Join(dir, "meeting-notes", "rss.xml") {
		t.Errorf("RSSPath = %q", cfg.RSSPath())
	}
}

func TestGetSummaryWords(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 50},
		{-3, 50},
		{10, 10},
	}
	for _, tt := range tests {
		cfg := &Config{SummaryWords: tt.input}
		if got := cfg.GetSummaryWords(); got != tt.want {
			t.Errorf("GetSummaryWords(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
