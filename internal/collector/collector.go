package collector

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	goerrors "github.com/goliatone/go-errors"

	"github.com/mfisher87/mystmd-plugin-listing/internal/config"
	"github.com/mfisher87/mystmd-plugin-listing/internal/listing"
	"github.com/mfisher87/mystmd-plugin-listing/internal/parser"
)

const (
	// DocumentPattern selects markdown files at any depth of the listing directory.
	DocumentPattern = "**.md"

	frontmatterYAMLCode = "FRONTMATTER_YAML"
	walkFailedCode      = "LISTING_WALK_FAILED"
)

// Collector discovers and parses the documents of a listing directory.
type Collector struct {
	cfg     *config.Config
	warn    io.Writer
	pattern glob.Glob
}

// New returns a Collector writing skip warnings to warn.
func New(cfg *config.Config, warn io.Writer) *Collector {
	return &Collector{
		cfg:     cfg,
		warn:    warn,
		pattern: glob.MustCompile(DocumentPattern, '/'),
	}
}

// Collect parses every markdown document under the listing directory in walk
// order. Files whose frontmatter cannot be split are reported and skipped;
// any other parse failure aborts the run.
func (c *Collector) Collect() ([]*listing.Document, error) {
	root := c.cfg.ListingDir
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	opts := parser.Options{
		SummaryWords:   c.cfg.GetSummaryWords(),
		AuthorFallback: c.cfg.AuthorFallback,
	}

	var docs []*listing.Document
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if !c.pattern.Match(filepath.ToSlash(rel)) {
			return nil
		}

		key, err := listing.DocumentKey(c.cfg.Root, path)
		if err != nil {
			return err
		}
		if isDraft(key) {
			return nil
		}

		doc, err := parser.ParseDocumentFile(path, opts)
		if errors.Is(err, parser.ErrMalformedFrontmatter) {
			fmt.Fprintf(c.warn, "Skipping file with malformed frontmatter: %s\n", path)
			return nil
		}
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("parsing %s", path)).
				WithTextCode(frontmatterYAMLCode)
		}
		doc.Path = key
		docs = append(docs, doc)
		return nil
	})
	if walkErr != nil {
		if goerrors.IsWrapped(walkErr) {
			return nil, walkErr
		}
		return nil, goerrors.Wrap(walkErr, goerrors.CategoryCommand, "collecting listing documents").
			WithTextCode(walkFailedCode)
	}
	return docs, nil
}

// isDraft reports whether any segment of the slash path is "drafts".
func isDraft(key string) bool {
	for _, seg := range strings.Split(key, "/") {
		if seg == "drafts" {
			return true
		}
	}
	return false
}
