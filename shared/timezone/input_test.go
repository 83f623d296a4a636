package timezone_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dualzone/shared/timezone"
)

func TestResolve(t *testing.T) {
	brussels := mustLoad(t, "Europe/Brussels")

	tests := []struct {
		name         string
		input        timezone.Input
		wantName     string
		wantOffset   int
		wantErr      bool
		wantErrValue string
	}{
		{name: "iana name", input: timezone.Name("Europe/Brussels"), wantName: "Europe/Brussels", wantOffset: 3600},
		{name: "utc", input: timezone.Name("UTC"), wantName: "UTC"},
		{name: "etc zone", input: timezone.Name("Etc/GMT+3"), wantName: "Etc/GMT+3", wantOffset: -3 * 3600},
		{name: "offset with colon", input: timezone.Name("+02:00"), wantName: "+02:00", wantOffset: 2 * 3600},
		{name: "offset without colon", input: timezone.Name("-0530"), wantName: "-05:30", wantOffset: -(5*3600 + 30*60)},
		{name: "hours only", input: timezone.Name("+2"), wantName: "+02:00", wantOffset: 2 * 3600},
		{name: "utc prefixed", input: timezone.Name("UTC+8"), wantName: "+08:00", wantOffset: 8 * 3600},
		{name: "gmt prefixed", input: timezone.Name("GMT-03:30"), wantName: "-03:30", wantOffset: -(3*3600 + 30*60)},
		{name: "whole hours", input: timezone.Offset(2), wantName: "+02:00", wantOffset: 2 * 3600},
		{name: "negative hours", input: timezone.Offset(-7), wantName: "-07:00", wantOffset: -7 * 3600},
		{name: "fractional hours", input: timezone.Offset(5.5), wantName: "+05:30", wantOffset: 19800},
		{name: "quarter hours", input: timezone.Offset(5.75), wantName: "+05:45", wantOffset: 20700},
		{name: "tenth of an hour", input: timezone.Offset(-0.1), wantName: "-00:06", wantOffset: -360},
		{name: "zero offset", input: timezone.Offset(0), wantName: "+00:00"},
		{name: "largest offset", input: timezone.Offset(timezone.MaxOffset), wantName: "+18:00", wantOffset: 18 * 3600},
		{name: "resolved zone", input: timezone.Zone(brussels), wantName: "Europe/Brussels", wantOffset: 3600},
		{name: "unknown name", input: timezone.Name("Not/AZone"), wantErr: true, wantErrValue: "Not/AZone"},
		{name: "garbage", input: timezone.Name("???"), wantErr: true, wantErrValue: "???"},
		{name: "empty", input: timezone.Name(""), wantErr: true, wantErrValue: ""},
		{name: "host local", input: timezone.Name("Local"), wantErr: true, wantErrValue: "Local"},
		{name: "offset minutes overflow", input: timezone.Name("+02:75"), wantErr: true, wantErrValue: "+02:75"},
		{name: "offset name too large", input: timezone.Name("+19:00"), wantErr: true, wantErrValue: "+19:00"},
		{name: "offset too large", input: timezone.Offset(-timezone.MaxOffset - 1), wantErr: true, wantErrValue: "-19"},
		{name: "offset not on a minute", input: timezone.Offset(0.01), wantErr: true, wantErrValue: "0.01"},
		{name: "offset with seconds", input: timezone.Offset(1.001), wantErr: true, wantErrValue: "1.001"},
		{name: "offset nan", input: timezone.Offset(math.NaN()), wantErr: true, wantErrValue: "NaN"},
		{name: "nil zone", input: timezone.Zone(nil), wantErr: true, wantErrValue: "<nil>"},
		{name: "nil input", input: nil, wantErr: true, wantErrValue: "<nil>"},
	}

	winter := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := timezone.Resolve(tt.input)

			if tt.wantErr {
				assert.Nil(t, loc)
				assert.ErrorIs(t, err, timezone.ErrInvalidTimezone)

				var invalid *timezone.InvalidTimezoneError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.wantErrValue, invalid.Value)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, loc.String())

			_, offset := winter.In(loc).Zone()
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParse(t *testing.T) {
	loc, err := timezone.Parse("Asia/Jakarta")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())

	_, err = timezone.Parse("Asia/Nowhere")
	assert.ErrorIs(t, err, timezone.ErrInvalidTimezone)
	assert.Contains(t, err.Error(), `invalid timezone "Asia/Nowhere"`)
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "+00:00", timezone.FormatOffset(0))
	assert.Equal(t, "+05:45", timezone.FormatOffset(5*3600+45*60))
	assert.Equal(t, "-09:30", timezone.FormatOffset(-(9*3600 + 30*60)))
	assert.Equal(t, "+14:00", timezone.FormatOffset(14*3600))
	assert.Equal(t, "+00:01:30", timezone.FormatOffset(90))
	assert.Equal(t, "-00:00:02", timezone.FormatOffset(-2))
}

func TestOffsetNamesAreDistinct(t *testing.T) {
	offsets := []timezone.Offset{0, 0.25, 0.5, 1, 1.5, -0.5, -1}
	seen := map[string]timezone.Offset{}

	for _, o := range offsets {
		loc, err := timezone.Resolve(o)
		require.NoError(t, err)

		prev, dup := seen[loc.String()]
		assert.False(t, dup, "offsets %v and %v share the name %s", prev, o, loc.String())

		seen[loc.String()] = o
	}
}
