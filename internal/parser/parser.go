package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mfisher87/mystmd-plugin-listing/internal/listing"
)

// ErrMalformedFrontmatter is returned when the text does not split into
// prefix, frontmatter and body on "---".
var ErrMalformedFrontmatter = errors.New("malformed frontmatter")

// skipPrefixes mark body lines that never make it into a summary.
var skipPrefixes = []string{"#", "--", "%", "++"}

// Options controls the derived fields of a parsed document.
type Options struct {
	SummaryWords   int
	AuthorFallback string
}

type frontMatter struct {
	Title       *string        `yaml:"title"`
	Date        yaml.Node      `yaml:"date"`
	Author      any            `yaml:"author"`
	Description string         `yaml:"description"`
	Extra       map[string]any `yaml:",inline"`
}

// ParseDocumentFile parses a markdown file with YAML frontmatter.
func ParseDocumentFile(path string, opts Options) (*listing.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document file: %w", err)
	}
	doc, err := ParseDocument(string(data), opts)
	if err != nil {
		return nil, err
	}
	doc.File = path
	return doc, nil
}

// ParseDocument parses a document from raw content string. Path and Date are
// left for the caller; RawDate carries the frontmatter value.
func ParseDocument(content string, opts Options) (*listing.Document, error) {
	fm, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}
	var meta frontMatter
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		return nil, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}

	rawDate, err := dateValue(&meta.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter date: %w", err)
	}

	doc := &listing.Document{
		RawDate:     rawDate,
		Description: meta.Description,
		Extra:       meta.Extra,
	}
	if doc.Extra == nil {
		doc.Extra = map[string]any{}
	}
	if meta.Title != nil {
		doc.Title = *meta.Title
		doc.TitleSet = true
	} else {
		doc.Title = headingTitle(body)
	}

	doc.Author, doc.AuthorErr = decodeAuthor(meta.Author, opts.AuthorFallback)

	doc.Content = doc.Description
	if doc.Content == "" {
		doc.Content = Summarize(body, opts.SummaryWords)
	}
	return doc, nil
}

// dateValue returns the date exactly as written so that timestamps with and
// without an offset are interpreted the same way whether or not YAML resolved
// them. Null and absent dates yield nil.
func dateValue(n *yaml.Node) (any, error) {
	switch {
	case n.Kind == 0:
		return nil, nil
	case n.Kind == yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// splitFrontmatter splits content into YAML frontmatter and markdown body.
// Anything before the first "---" is discarded.
func splitFrontmatter(content string) (string, string, error) {
	parts := strings.SplitN(content, "---", 3)
	if len(parts) != 3 {
		return "", "", ErrMalformedFrontmatter
	}
	return parts[1], parts[2], nil
}

// headingTitle returns the text of the first heading line in body.
func headingTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		}
	}
	return ""
}

// Summarize keeps the first words of body, ignoring headings, separators,
// directives and decorative lines.
func Summarize(body string, words int) string {
	var kept []string
	for _, line := range strings.Split(body, "\n") {
		if hasSkipPrefix(strings.TrimLeft(line, " \t")) {
			continue
		}
		kept = append(kept, strings.TrimRight(line, "\r"))
	}
	text := strings.TrimSpace(strings.Join(kept, "\n"))
	if text == "" {
		return ""
	}
	tokens := strings.Split(text, " ")
	if words > 0 && len(tokens) > words {
		tokens = tokens[:words]
	}
	return strings.Join(tokens, " ")
}

func hasSkipPrefix(line string) bool {
	for _, p := range skipPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// decodeAuthor converts the author frontmatter value into a person list.
// Empty values get the fallback; anything other than a list of mappings with
// a name is reported as an error.
func decodeAuthor(v any, fallback string) ([]listing.Person, error) {
	if isEmpty(v) {
		return []listing.Person{{Name: fallback}}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("author must be a list of {name, email} entries, got %T", v)
	}
	people := make([]listing.Person, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("author[%d] must be a mapping, got %T", i, item)
		}
		name, ok := entry["name"].(string)
		if !ok {
			return nil, fmt.Errorf("author[%d] has no name", i)
		}
		email, _ := entry["email"].(string)
		people = append(people, listing.Person{Name: name, Email: email})
	}
	return people, nil
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case int:
		return val == 0
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
