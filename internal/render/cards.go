package render

import (
	"encoding/json"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/mfisher87/mystmd-plugin-listing/internal/listing"
)

// DateLayout is how card footers print document dates.
const DateLayout = "January 02, 2006"

const (
	missingTitleCode = "CARD_MISSING_TITLE"
	badAuthorCode    = "CARD_BAD_AUTHOR"
)

var (
	ErrMissingTitle    = errors.New("document has no title")
	ErrMalformedAuthor = errors.New("document author is missing or malformed")
)

// Node is a fragment of the host's document AST.
type Node struct {
	Type     string
	URL      string
	Value    string
	Children []Node
}

type nodeJSON struct {
	Type     string  `json:"type"`
	URL      string  `json:"url,omitempty"`
	Value    *string `json:"value,omitempty"`
	Children []Node  `json:"children,omitempty"`
}

// MarshalJSON always emits value on text nodes, even when empty.
func (n Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{Type: n.Type, URL: n.URL, Children: n.Children}
	if n.Type == "text" {
		v := n.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

func Text(value string) Node {
	return Node{Type: "text", Value: value}
}

func Strong(children ...Node) Node {
	return Node{Type: "strong", Children: children}
}

// Cards renders one card per document, in collection order. The first
// document that cannot be rendered fails the whole call.
func Cards(docs listing.Collection) ([]Node, error) {
	cards := make([]Node, 0, len(docs))
	for _, d := range docs {
		card, err := Card(d)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Card renders a single document.
func Card(d *listing.Document) (Node, error) {
	if d.Title == "" && !d.TitleSet {
		return Node{}, goerrors.Wrap(ErrMissingTitle, goerrors.CategoryValidation,
			fmt.Sprintf("rendering card for %s", d.Path)).WithTextCode(missingTitleCode)
	}
	author, err := firstAuthor(d)
	if err != nil {
		return Node{}, goerrors.Wrap(err, goerrors.CategoryValidation,
			fmt.Sprintf("rendering card for %s", d.Path)).WithTextCode(badAuthorCode)
	}

	return Node{
		Type: "card",
		URL:  listing.CardURL(d.Path),
		Children: []Node{
			{Type: "cardTitle", Children: []Node{Text(d.Title)}},
			{Type: "paragraph", Children: []Node{Text(d.Content)}},
			{Type: "footer", Children: []Node{
				Strong(Text("Date: ")),
				Text(d.Date.Format(DateLayout) + " | "),
				Strong(Text("Author: ")),
				Text(author),
			}},
		},
	}, nil
}

func firstAuthor(d *listing.Document) (string, error) {
	if d.AuthorErr != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedAuthor, d.AuthorErr)
	}
	if len(d.Author) == 0 {
		return "", ErrMalformedAuthor
	}
	return d.Author[0].Name, nil
}
