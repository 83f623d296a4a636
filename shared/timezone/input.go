package timezone

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// MaxOffset is the largest fixed offset from UTC, in hours, that resolves.
const MaxOffset = 18

var (
	errEmptyName      = errors.New("empty timezone name")
	errLocalName      = errors.New("the host local zone is not a portable timezone")
	errNilLocation    = errors.New("nil location")
	errOffsetRange    = fmt.Errorf("offset exceeds %d hours", MaxOffset)
	errOffsetMinutes  = errors.New("offset minutes must be below 60")
	errOffsetStep     = errors.New("offset must be a whole number of minutes")
	offsetNamePattern = regexp.MustCompile(`^(?:UTC|GMT)?([+-])(\d{1,2})(?::?(\d{2}))?$`)
)

// Input is a timezone value waiting to be resolved: a Name, an Offset or a Zone.
type Input interface {
	resolve() (*time.Location, error)
}

// Name is an IANA timezone name or a numeric offset string such as "+02:00".
type Name string

// Offset is a fixed offset from UTC in hours east of UTC. Fractional hours such as
// 5.5 or -9.5 resolve as long as they land on a whole minute.
type Offset float64

type zone struct {
	loc *time.Location
}

// Zone wraps an already resolved location so it can be passed where an Input is expected.
func Zone(loc *time.Location) Input {
	return zone{loc: loc}
}

// Resolve turns any Input into a location, or fails with *InvalidTimezoneError.
func Resolve(in Input) (*time.Location, error) {
	if in == nil {
		return nil, invalid("<nil>", errNilLocation)
	}

	return in.resolve()
}

// Parse resolves a timezone string. It is Resolve(Name(name)).
func Parse(name string) (*time.Location, error) {
	return Resolve(Name(name))
}

func (n Name) resolve() (*time.Location, error) {
	raw := string(n)

	switch raw {
	case "":
		return nil, invalid(raw, errEmptyName)
	case "Local":
		return nil, invalid(raw, errLocalName)
	}

	if seconds, ok, err := parseOffsetName(raw); ok {
		if err != nil {
			return nil, invalid(raw, err)
		}

		return fixedZone(seconds), nil
	}

	loc, err := time.LoadLocation(raw)
	if err != nil {
		return nil, invalid(raw, err)
	}

	return loc, nil
}

func (o Offset) resolve() (*time.Location, error) {
	hours := float64(o)
	value := strconv.FormatFloat(hours, 'f', -1, 64)

	if math.IsNaN(hours) || hours > MaxOffset || hours < -MaxOffset {
		return nil, invalid(value, errOffsetRange)
	}

	minutes := hours * 60
	whole := math.Round(minutes)

	if math.Abs(minutes-whole) > 1e-9 {
		return nil, invalid(value, errOffsetStep)
	}

	return fixedZone(int(whole) * 60), nil
}

func (z zone) resolve() (*time.Location, error) {
	if z.loc == nil {
		return nil, invalid("<nil>", errNilLocation)
	}

	return z.loc, nil
}

// parseOffsetName reports whether raw is written as an offset and, if so, its value in seconds.
func parseOffsetName(raw string) (int, bool, error) {
	match := offsetNamePattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, false, nil
	}

	hours, _ := strconv.Atoi(match[2])
	minutes := 0

	if match[3] != "" {
		minutes, _ = strconv.Atoi(match[3])
		if minutes >= 60 {
			return 0, true, errOffsetMinutes
		}
	}

	seconds := hours*60*60 + minutes*60
	if seconds > MaxOffset*60*60 {
		return 0, true, errOffsetRange
	}

	if match[1] == "-" {
		seconds = -seconds
	}

	return seconds, true, nil
}

func fixedZone(seconds int) *time.Location {
	return time.FixedZone(FormatOffset(seconds), seconds)
}

// FormatOffset renders an offset in seconds as "+HH:MM", or "+HH:MM:SS" when it
// is not a whole number of minutes.
func FormatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}

	if seconds%60 != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, seconds/3600, seconds%3600/60, seconds%60)
	}

	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
