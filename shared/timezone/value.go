package timezone

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Value is what ToCurrent and ToStorage accept: an Instant to convert or a Raw value to construct.
type Value interface {
	isValue()
}

type instant struct {
	t time.Time
}

type raw struct {
	v any
}

func (instant) isValue() {}

func (raw) isValue() {}

// Instant marks t as an existing date. It is converted, never reinterpreted.
func Instant(t time.Time) Value {
	return instant{t: t}
}

// Raw marks v as a raw representation to build a date from: a string, unix seconds,
// a Components value, a []int tuple or anything a Constructor understands.
func Raw(v any) Value {
	return raw{v: v}
}

// Constructor builds a date from a raw value anchored in loc.
type Constructor func(raw any, loc *time.Location) (time.Time, error)

// Components is a wall clock reading. Out of range fields normalize the way time.Date does.
type Components struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// In returns the instant the components name in loc.
func (c Components) In(loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, c.Nanosecond, loc)
}

// Create is the default Constructor.
//
// Components and []int tuples (year, month, day, hour, minute, second, nanosecond; missing
// month and day default to 1) are read as wall clock in loc. Anything else is handed to
// cast.ToTimeInDefaultLocationE with loc as the default location: strings without an offset
// are anchored in loc, integers are unix seconds. The result is always expressed in loc.
func Create(value any, loc *time.Location) (time.Time, error) {
	switch v := value.(type) {
	case Components:
		return v.In(loc), nil
	case []int:
		c, err := componentsOf(v)
		if err != nil {
			return time.Time{}, err
		}

		return c.In(loc), nil
	}

	t, err := cast.ToTimeInDefaultLocationE(value, loc)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return t.In(loc), nil
}

func componentsOf(tuple []int) (Components, error) {
	if len(tuple) == 0 || len(tuple) > 7 {
		return Components{}, fmt.Errorf("timezone: date tuple needs 1 to 7 values, got %d", len(tuple))
	}

	fields := [7]int{0, 1, 1}
	copy(fields[:], tuple)

	return Components{
		Year:       fields[0],
		Month:      time.Month(fields[1]),
		Day:        fields[2],
		Hour:       fields[3],
		Minute:     fields[4],
		Second:     fields[5],
		Nanosecond: fields[6],
	}, nil
}
