package humanize

import (
	"fmt"
	"maps"
	"strings"
)

// Template renders a count of some unit, e.g. 3 -> "3 days".
type Template func(n int) string

// Templates maps every unit to its template.
type Templates map[Unit]Template

// Plural returns an english singular/plural chooser. Both formats are
// expected to contain a single %d verb.
func Plural(one, other string) Template {
	return func(n int) string {
		if n == 1 {
			return fmt.Sprintf(one, n)
		}
		return fmt.Sprintf(other, n)
	}
}

// DefaultTemplates returns a fresh copy of the english table.
func DefaultTemplates() Templates {
	return Templates{
		Year:   Plural("%d year", "%d years"),
		Month:  Plural("%d month", "%d months"),
		Week:   Plural("%d week", "%d weeks"),
		Day:    Plural("%d day", "%d days"),
		Hour:   Plural("%d hour", "%d hours"),
		Minute: Plural("%d minute", "%d minutes"),
	}
}

// With returns a copy of t with overrides applied on top.
func (t Templates) With(overrides Templates) Templates {
	out := make(Templates, len(t)+len(overrides))
	maps.Copy(out, t)
	maps.Copy(out, overrides)
	return out
}

func (t Templates) render(u Unit, n int) (string, error) {
	tmpl, ok := t[u]
	if !ok || tmpl == nil {
		return "", fmt.Errorf("%w for unit %s", ErrMissingTemplate, u)
	}
	return tmpl(n), nil
}

// NoBreak keeps a rendered fragment on one line by replacing its spaces
// with non-breaking ones.
func NoBreak(s string) string {
	return strings.ReplaceAll(s, " ", "\u00a0")
}
