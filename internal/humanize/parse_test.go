package humanize

import (
	"testing"
	"time"

	"olexsmir.xyz/x/is"
)

func TestParse(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	tests := []struct {
		in   string
		want time.Time
		date bool
	}{
		{in: "2021-03-15", want: time.Date(2021, time.March, 15, 0, 0, 0, 0, loc), date: true},
		{in: " 2021-03-15 ", want: time.Date(2021, time.March, 15, 0, 0, 0, 0, loc), date: true},
		{in: "2021-03-15 10:20:30", want: time.Date(2021, time.March, 15, 10, 20, 30, 0, loc)},
		{in: "2021-03-15T10:20:30", want: time.Date(2021, time.March, 15, 10, 20, 30, 0, loc)},
		{in: "2021-03-15T10:20", want: time.Date(2021, time.March, 15, 10, 20, 0, 0, loc)},
		{in: "2021-03-15T10:20:30Z", want: time.Date(2021, time.March, 15, 10, 20, 30, 0, time.UTC)},
		{in: "@0", want: time.Unix(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in, loc)
			is.Err(t, err, nil)
			is.Equal(t, v.Time().Equal(tt.want), true)
			is.Equal(t, v.IsDate(), tt.date)
		})
	}

	_, err := Parse("yesterday", loc)
	is.Err(t, err, "unrecognized time")

	_, err = Parse("@soon", loc)
	is.Err(t, err, "invalid unix timestamp")
}

func TestInstants(t *testing.T) {
	utc, err := Parse("2021-03-15", time.UTC)
	is.Err(t, err, nil)
	zoned, err := Parse("2021-03-20T12:00:00+05:00", time.UTC)
	is.Err(t, err, nil)

	d, now := Instants(utc, zoned)
	is.Equal(t, d.Location(), now.Location())
	is.Equal(t, d.Hour(), 0)
	is.Equal(t, d.Day(), 15)

	got, err := Delta(d, Now(now))
	is.Err(t, err, nil)
	is.Equal(t, got, "5 days, 12 hours")

	now, d = Instants(zoned, utc)
	is.Equal(t, d.Location(), now.Location())
	is.Equal(t, d.Hour(), 0)
}
