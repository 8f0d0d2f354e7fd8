package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mfisher87/mystmd-plugin-listing/internal/collector"
	"github.com/mfisher87/mystmd-plugin-listing/internal/config"
	"github.com/mfisher87/mystmd-plugin-listing/internal/listing"
	"github.com/mfisher87/mystmd-plugin-listing/internal/root"
)

// printResult writes v to w as indented JSON, the only thing the host reads from stdout.
func printResult(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func loadConfig(rootDir string) (*config.Config, error) {
	dir, err := root.Resolve(rootDir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.New(dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(cfg.ListingDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s/ directory not found under %s", config.ListingDirName, cfg.Root)
	}
	return cfg, nil
}

// loadDocuments parses every document without dropping undated ones.
func loadDocuments(cfg *config.Config, errOut io.Writer) ([]*listing.Document, error) {
	return collector.New(cfg, errOut).Collect()
}
