package humanize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// layouts without a zone are read in the location given to Parse
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Value is a parsed time argument: either a full instant or a bare date.
type Value struct {
	t    time.Time
	date bool
}

// Parse reads s as one of the supported layouts, a bare "2006-01-02" date
// or a unix timestamp prefixed with "@".
func Parse(s string, loc *time.Location) (Value, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}

	if rest, ok := strings.CutPrefix(s, "@"); ok {
		sec, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid unix timestamp %q: %w", s, err)
		}
		return Value{t: time.Unix(sec, 0).In(loc)}, nil
	}

	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return Value{t: t, date: true}, nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return Value{t: t}, nil
		}
	}
	return Value{}, fmt.Errorf("unrecognized time %q", s)
}

func (v Value) IsDate() bool { return v.date }

// Time returns the instant, a bare date being midnight in the parse location.
func (v Value) Time() time.Time { return v.t }

// Instants unifies a pair of values. A bare date is promoted to midnight in
// the location of its counterpart.
func Instants(d, now Value) (time.Time, time.Time) {
	switch {
	case d.date && !now.date:
		return DateOf(d.t).Midnight(now.t.Location()), now.t
	case now.date && !d.date:
		return d.t, DateOf(now.t).Midnight(d.t.Location())
	}
	return d.t, now.t
}
