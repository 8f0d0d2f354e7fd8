package feed

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/gorilla/feeds"

	"github.com/mfisher87/mystmd-plugin-listing/internal/config"
	"github.com/mfisher87/mystmd-plugin-listing/internal/listing"
)

const feedWriteFailedCode = "FEED_WRITE_FAILED"

// Sink receives serialized feed documents.
type Sink interface {
	WriteFeed(name string, data []byte) error
}

// DirSink writes feeds as files in Dir, replacing any previous version.
type DirSink struct {
	Dir string
}

func (s DirSink) WriteFeed(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("creating feed directory: %w", err)
	}
	return os.WriteFile(filepath.Join(s.Dir, name), data, 0644)
}

// Build assembles the site feed from an ordered collection.
func Build(cfg config.Feed, docs listing.Collection) *feeds.Feed {
	f := &feeds.Feed{
		Id:          cfg.BaseURL,
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: cfg.BaseURL, Rel: "alternate"},
		Description: cfg.Subtitle,
		Author:      &feeds.Author{Name: cfg.Author, Email: cfg.Email},
		Image:       &feeds.Image{Url: cfg.Logo, Title: cfg.Title, Link: cfg.BaseURL},
	}
	if len(docs) > 0 {
		f.Updated = docs[0].Date
		f.Created = docs[0].Date
	}

	for _, d := range docs {
		url := listing.FeedURL(cfg.BaseURL, d.Path)
		f.Add(&feeds.Item{
			Id:          url,
			Title:       d.Title,
			Link:        &feeds.Link{Href: url},
			Description: d.Content,
			Content:     d.Content,
			Created:     d.Date,
		})
	}
	return f
}

// Atom serializes f as an indented Atom 1.0 document. Entries carry the
// item creation time as their published date.
func Atom(cfg config.Feed, f *feeds.Feed) (string, error) {
	atom := (&feeds.Atom{Feed: f}).AtomFeed()
	atom.Id = cfg.BaseURL
	atom.Logo = cfg.Logo
	for i, entry := range atom.Entries {
		if created := f.Items[i].Created; !created.IsZero() {
			entry.Published = created.Format(time.RFC3339)
		}
	}
	return feeds.ToXML(atom)
}

// RSS serializes f as an indented RSS 2.0 document.
func RSS(cfg config.Feed, f *feeds.Feed) (string, error) {
	rss := (&feeds.Rss{Feed: f}).RssFeed()
	rss.Language = cfg.Language
	return feeds.ToXML(rss)
}

// Write renders the Atom and RSS feeds for docs and hands them to sink.
func Write(cfg *config.Config, docs listing.Collection, sink Sink) error {
	f := Build(cfg.Feed, docs)

	atom, err := Atom(cfg.Feed, f)
	if err != nil {
		return wrapWriteError(err, "rendering atom feed")
	}
	rss, err := RSS(cfg.Feed, f)
	if err != nil {
		return wrapWriteError(err, "rendering rss feed")
	}

	if err := sink.WriteFeed(config.AtomFile, []byte(atom)); err != nil {
		return wrapWriteError(err, "writing "+config.AtomFile)
	}
	if err := sink.WriteFeed(config.RSSFile, []byte(rss)); err != nil {
		return wrapWriteError(err, "writing "+config.RSSFile)
	}
	return nil
}

func wrapWriteError(err error, msg string) error {
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(feedWriteFailedCode)
}
