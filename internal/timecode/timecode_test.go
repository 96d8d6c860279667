package timecode

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/yt2xml/pkg/model"
)

func TestIsTimestamp(t *testing.T) {
	valid := []string{"0:00", "2:30", "59:59", "1:15:30", "12:00:00", "123:45:06", "  0:05  "}
	for _, s := range valid {
		assert.True(t, IsTimestamp(s), "want timestamp: %q", s)
	}

	invalid := []string{"", "Intro", "0:60", "123:45", "1:2", "1:15:60", "1234:00:00", "0:00 text", "-1:00", "1.5:00"}
	for _, s := range invalid {
		assert.False(t, IsTimestamp(s), "want not timestamp: %q", s)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0:00", 0},
		{"2:30", 150},
		{"05:00", 300},
		{"1:15:30", 4530},
		{"100:00:01", 360001},
		{" 7:30 ", 450},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1:60", "1:2:3", "99"} {
		_, err := Parse(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, model.ErrInvalidFormat), in)

		var te *model.TranscriptError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, in, te.Input)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{5.9, "0:05"},
		{150, "2:30"},
		{3599.99, "59:59"},
		{3600, "1:00:00"},
		{4530, "1:15:30"},
		{360001, "100:00:01"},
	}
	for _, tc := range tests {
		got, err := Format(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestFormat_InvalidArgument(t *testing.T) {
	for _, in := range []float64{-1, -0.5, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := Format(in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidArgument))
	}
	assert.Panics(t, func() { MustFormat(-1) })
}

func TestRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.4, 59, 61.7, 599, 3599, 3600, 4530.2, 86399, 359999.9} {
		s, err := Format(x)
		require.NoError(t, err)
		back, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, math.Floor(x), back, "round trip of %v via %q", x, s)
	}
}

func TestFormatMonotonicWithinBucket(t *testing.T) {
	under := []float64{0, 9, 10, 59, 60, 599}
	for i := 1; i < len(under); i++ {
		a, b := MustFormat(under[i-1]), MustFormat(under[i])
		// même nombre de chiffres pour les minutes : ordre lexicographique
		if len(a) == len(b) {
			assert.Less(t, a, b)
		}
	}
	assert.Less(t, MustFormat(3600), MustFormat(7199))
}

func TestFromMilliseconds(t *testing.T) {
	assert.Equal(t, 1.5, FromMilliseconds(1500))
	assert.Equal(t, 0.0, FromMilliseconds(0))
}

func TestFormatPublished(t *testing.T) {
	assert.Equal(t, "2025-07-17", FormatPublished("20250717"))
	assert.Equal(t, "", FormatPublished(""))
	assert.Equal(t, "2025-13-45", FormatPublished("2025-13-45"))
	assert.Equal(t, "20251345", FormatPublished("20251345"))
	assert.Equal(t, "abc", FormatPublished("abc"))
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		0:    "",
		-5:   "",
		45:   "45s",
		60:   "1m",
		163:  "2m 43s",
		3600: "1h",
		3661: "1h 1m 1s",
		7205: "2h 5s",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDuration(in), "duration %d", in)
	}
}
