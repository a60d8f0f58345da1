package humanize

import (
	"errors"
	"slices"
	"strings"
	"time"
)

var (
	ErrInvalidDepth    = errors.New("depth must be greater than 0")
	ErrMissingTemplate = errors.New("no template")
)

const DefaultDepth = 2

var timeNow = time.Now

// Part is a single rendered unit of a phrase.
type Part struct {
	Unit  Unit
	Count int
}

type options struct {
	now       time.Time
	hasNow    bool
	reversed  bool
	templates Templates
	depth     int
	separator string
	wrap      func(string) string
}

type Option func(*options)

// Now sets the later of the two instants. Defaults to the current time.
func Now(t time.Time) Option {
	return func(o *options) {
		o.now = t
		o.hasNow = true
	}
}

// Reversed swaps both instants, so the phrase describes the time until d.
func Reversed() Option {
	return func(o *options) { o.reversed = true }
}

// WithTemplates replaces the whole template table. nil means the defaults.
func WithTemplates(t Templates) Option {
	return func(o *options) { o.templates = t }
}

// Depth limits how many adjacent units are rendered.
func Depth(n int) Option {
	return func(o *options) { o.depth = n }
}

func Separator(s string) Option {
	return func(o *options) { o.separator = s }
}

// Wrap is applied to each rendered unit before joining, see [NoBreak].
func Wrap(fn func(string) string) Option {
	return func(o *options) { o.wrap = fn }
}

func newOptions(opts []Option) options {
	o := options{
		depth:     DefaultDepth,
		separator: ", ",
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.templates == nil {
		o.templates = DefaultTemplates()
	}
	if o.wrap == nil {
		o.wrap = func(s string) string { return s }
	}
	return o
}

// Delta returns the time between d and now as a phrase like "2 weeks, 3 days".
// Units used are years, months, weeks, days, hours and minutes; up to depth
// adjacent units are shown and rendering stops at the first zero. If d is not
// before now the result is the zero-minute phrase.
func Delta(d time.Time, opts ...Option) (string, error) {
	o := newOptions(opts)
	if o.depth <= 0 {
		return "", ErrInvalidDepth
	}

	ps := parts(d, o)
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		s, err := o.templates.render(p.Unit, p.Count)
		if err != nil {
			return "", err
		}
		out = append(out, o.wrap(s))
	}
	return strings.Join(out, o.separator), nil
}

// Since is an alias for [Delta].
func Since(d time.Time, opts ...Option) (string, error) {
	return Delta(d, opts...)
}

// Until is like [Since] but measures the time until d.
func Until(d time.Time, opts ...Option) (string, error) {
	return Delta(d, append(slices.Clip(opts), Reversed())...)
}

// Parts returns the units [Delta] would render, without rendering them.
func Parts(d time.Time, opts ...Option) ([]Part, error) {
	o := newOptions(opts)
	if o.depth <= 0 {
		return nil, ErrInvalidDepth
	}
	return parts(d, o), nil
}

func parts(d time.Time, o options) []Part {
	now := timeNow()
	if o.hasNow {
		now = o.now
	}
	// calendar fields of both instants are compared in d's zone
	now = now.In(d.Location())

	if o.reversed {
		d, now = now, d
	}

	if seconds(now.Sub(d)) <= 0 {
		return zeroParts()
	}

	total := (now.Year()-d.Year())*12 + int(now.Month()-d.Month())
	if d.Day() > now.Day() || (d.Day() == now.Day() && timeOfDay(d) > timeOfDay(now)) {
		// the current month isn't completed yet
		total--
	}
	total = max(total, 0)

	pivot := d
	if total > 0 {
		pivot = addMonths(d, total)
	}
	remaining := max(seconds(now.Sub(pivot)), 0)

	counts := make([]int, 0, len(unitNames))
	counts = append(counts, total/12, total%12)
	for _, c := range chunkSeconds {
		n := remaining / c.secs
		remaining -= n * c.secs
		counts = append(counts, int(n))
	}

	first := -1
	for i, n := range counts {
		if n != 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return zeroParts()
	}

	var out []Part
	for i := first; i < len(counts) && len(out) < o.depth; i++ {
		if counts[i] == 0 {
			break
		}
		out = append(out, Part{Unit: Unit(i), Count: counts[i]})
	}
	return out
}

func zeroParts() []Part {
	return []Part{{Unit: Minute, Count: 0}}
}

// seconds truncates sub-second precision away.
func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// addMonths moves t n months forward keeping its clock. Unlike
// [time.Time.AddDate] the day is clamped to the length of the target month,
// so Jan 31 + 1 month is Feb 28 (or 29), never Mar 3.
func addMonths(t time.Time, n int) time.Time {
	y, m, day := t.Date()
	months := int(m) - 1 + n
	y += months / 12
	m = time.Month(months%12 + 1)
	day = min(day, daysIn(y, m))

	h, mi, s := t.Clock()
	return time.Date(y, m, day, h, mi, s, t.Nanosecond(), t.Location())
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date is a calendar date without a clock.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Midnight promotes the date to an instant at 00:00 in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}
