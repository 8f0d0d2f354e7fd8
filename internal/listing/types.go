package listing

import "time"

// Person is one entry of a document's author list.
type Person struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

// Document is one dated markdown file under the listing directory.
type Document struct {
	Path  string
	Title string
	// TitleSet records that the frontmatter named a title, even an empty one.
	TitleSet    bool
	RawDate     any
	Date        time.Time
	Author      []Person
	Description string
	Content     string
	// Extra holds frontmatter keys that have no dedicated field.
	Extra map[string]any
	File  string
	// AuthorErr is set when author metadata was present but unusable.
	AuthorErr error
}

// Collection is the date-ordered set of documents for one run.
type Collection []*Document

func (c Collection) Len() int {
	return len(c)
}

// Limit returns the first n documents, or all of them when n <= 0.
func (c Collection) Limit(n int) Collection {
	if n <= 0 || n >= len(c) {
		return c
	}
	return c[:n]
}
