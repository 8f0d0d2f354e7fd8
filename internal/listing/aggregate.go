package listing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Aggregate localizes every document date to loc, drops documents without a
// usable date and orders the rest most recent first. Documents sharing a date
// keep their discovery order.
func Aggregate(docs []*Document, loc *time.Location) Collection {
	if len(docs) == 0 {
		return Collection{}
	}

	out := make(Collection, 0, len(docs))
	for _, d := range docs {
		t, err := ParseDate(d.RawDate, loc)
		if err != nil {
			continue
		}
		d.Date = t
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ParseDate interprets a frontmatter date value in loc. Text without an
// explicit offset is read as wall-clock time in loc; instants are converted.
func ParseDate(v any, loc *time.Location) (time.Time, error) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("no date")
	case time.Time:
		return val.In(loc), nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, fmt.Errorf("empty date")
		}
		t, err := dateparse.ParseIn(s, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
		}
		return t.In(loc), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported date value %T", v)
	}
}
