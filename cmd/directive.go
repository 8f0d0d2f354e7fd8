package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/mfisher87/mystmd-plugin-listing/internal/collector"
	"github.com/mfisher87/mystmd-plugin-listing/internal/config"
	"github.com/mfisher87/mystmd-plugin-listing/internal/feed"
	"github.com/mfisher87/mystmd-plugin-listing/internal/listing"
	"github.com/mfisher87/mystmd-plugin-listing/internal/render"
	"github.com/mfisher87/mystmd-plugin-listing/internal/root"
)

const (
	unknownDirectiveCode  = "UNKNOWN_DIRECTIVE"
	notImplementedCode    = "SELECTOR_NOT_IMPLEMENTED"
	invalidRequestCode    = "INVALID_REQUEST"
	invalidOptionCode     = "INVALID_OPTION"
	projectRootFailedCode = "PROJECT_ROOT_NOT_FOUND"
)

var errNotImplemented = errors.New("not implemented")

type directiveRequest struct {
	Node *struct {
		Options map[string]any `json:"options"`
	} `json:"node"`
}

// runDirective executes the named directive against the project at rootDir
// (discovered when empty). Feeds are written before the cards are rendered.
func runDirective(name, rootDir string, in io.Reader, out, errOut io.Writer) error {
	if name != ListingDirective {
		return goerrors.Wrap(fmt.Errorf("unknown directive %q, expected %q", name, ListingDirective), goerrors.CategoryValidation,
			fmt.Sprintf("only the %q directive is supported", ListingDirective)).WithTextCode(unknownDirectiveCode)
	}

	opts, err := decodeOptions(in)
	if err != nil {
		return err
	}
	number, err := numberOption(opts, config.DefaultNumber)
	if err != nil {
		return err
	}

	dir, err := root.Resolve(rootDir)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "locating project root").
			WithTextCode(projectRootFailedCode)
	}
	cfg, err := config.New(dir)
	if err != nil {
		return err
	}

	cards, err := buildListing(cfg, errOut, feed.DirSink{Dir: cfg.ListingDir})
	if err != nil {
		return err
	}
	if number > 0 && number < len(cards) {
		cards = cards[:number]
	}
	return printResult(out, cards)
}

// buildListing runs collection, aggregation, feed output and card rendering.
func buildListing(cfg *config.Config, errOut io.Writer, sink feed.Sink) ([]render.Node, error) {
	docs, err := collector.New(cfg, errOut).Collect()
	if err != nil {
		return nil, err
	}
	posts := listing.Aggregate(docs, cfg.Location)

	if err := feed.Write(cfg, posts, sink); err != nil {
		return nil, err
	}
	return render.Cards(posts)
}

func decodeOptions(in io.Reader) (map[string]any, error) {
	var req directiveRequest
	dec := json.NewDecoder(in)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "decoding directive request").
			WithTextCode(invalidRequestCode)
	}
	if req.Node == nil {
		return nil, goerrors.Wrap(errors.New(`missing "node"`), goerrors.CategoryValidation,
			"decoding directive request").WithTextCode(invalidRequestCode)
	}
	if req.Node.Options == nil {
		return map[string]any{}, nil
	}
	return req.Node.Options, nil
}

// numberOption reads the "number" option. Numeric strings are accepted and
// fractional values are truncated.
func numberOption(opts map[string]any, def int) (int, error) {
	raw, ok := opts["number"]
	if !ok || raw == nil {
		return def, nil
	}

	var n int
	switch v := raw.(type) {
	case json.Number:
		parsed, err := parseNumber(string(v))
		if err != nil {
			return 0, invalidNumber(raw, err)
		}
		n = parsed
	case string:
		parsed, err := parseNumber(strings.TrimSpace(v))
		if err != nil {
			return 0, invalidNumber(raw, err)
		}
		n = parsed
	default:
		return 0, invalidNumber(raw, fmt.Errorf("unsupported type %T", raw))
	}

	if n < 0 {
		return 0, invalidNumber(raw, errors.New("must not be negative"))
	}
	return n, nil
}

func parseNumber(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is not a finite number", s)
	}
	if math.Abs(f) >= math.MaxInt {
		return 0, fmt.Errorf("%s is too large", s)
	}
	return int(f), nil
}

func invalidNumber(raw any, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("invalid number option %v", raw)).
		WithTextCode(invalidOptionCode)
}

func notImplemented(selector, name string) error {
	return goerrors.Wrap(errNotImplemented, goerrors.CategoryCommand,
		fmt.Sprintf("--%s %s is not implemented", selector, name)).WithTextCode(notImplementedCode)
}
