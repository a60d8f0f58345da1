package humanize

import "fmt"

// Unit is one of the calendar units a phrase can be built from, ordered from
// the largest to the smallest.
type Unit int

const (
	Year Unit = iota
	Month
	Week
	Day
	Hour
	Minute
)

var unitNames = [...]string{"year", "month", "week", "day", "hour", "minute"}

// Units returns all units in rendering order.
func Units() []Unit {
	return []Unit{Year, Month, Week, Day, Hour, Minute}
}

func (u Unit) String() string {
	if u < Year || u > Minute {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnit is the inverse of [Unit.String].
func ParseUnit(s string) (Unit, error) {
	for i, name := range unitNames {
		if name == s {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

// fixed sizes, in seconds, of the units that don't depend on the calendar
var chunkSeconds = [...]struct {
	unit Unit
	secs int64
}{
	{Week, 7 * 24 * 60 * 60},
	{Day, 24 * 60 * 60},
	{Hour, 60 * 60},
	{Minute, 60},
}
