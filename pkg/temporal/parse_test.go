package temporal_test

import (
	"testing"
	"time"

	"github.com/amirasaad/toolkit/pkg/apperrors"
	"github.com/amirasaad/toolkit/pkg/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-03-15", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{in: "20240315", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{in: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{in: "2023-02-29", wantErr: true},
		{in: "2024-13-01", wantErr: true},
		{in: "2024-0315", wantErr: true},
		{in: "24-03-15", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := temporal.ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseTime(t *testing.T) {
	got, err := temporal.ParseTime("13:45")
	require.NoError(t, err)
	assert.Equal(t, temporal.TimeOfDay{Hour: 13, Minute: 45}, got)

	got, err = temporal.ParseTime("23:59:59.5")
	require.NoError(t, err)
	assert.Equal(t, temporal.TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 500000000}, got)
	assert.Equal(t, "23:59:59.5", got.String())

	got, err = temporal.ParseTime("134530")
	require.NoError(t, err)
	assert.Equal(t, "13:45:30", got.String())

	for _, in := range []string{"24:00", "12:60", "12:00:61", "1:00", "noon"} {
		_, err = temporal.ParseTime(in)
		assert.ErrorIs(t, err, apperrors.ErrMalformed, in)
	}
}

func TestParseDateTime(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	got, err := temporal.ParseDateTime("2024-03-15T13:45:30", paris)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 13, 45, 30, 0, paris), got)

	got, err = temporal.ParseDateTime("2024-03-15T13:45", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())

	_, err = temporal.ParseDateTime("2024-03-15 13:45", nil)
	assert.ErrorIs(t, err, apperrors.ErrMalformed)
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in   string
		secs int
	}{
		{"Z", 0},
		{"+02:00", 7200},
		{"-0530", -(5*3600 + 30*60)},
		{"+02", 7200},
		{"+18:00", 18 * 3600},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			loc, err := temporal.ParseOffset(tt.in)
			require.NoError(t, err)
			_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
			assert.Equal(t, tt.secs, offset)
		})
	}

	for _, in := range []string{"+19:00", "+18:30", "02:00", "+2", "UTC"} {
		_, err := temporal.ParseOffset(in)
		assert.ErrorIs(t, err, apperrors.ErrMalformed, in)
	}
}

func TestParseOffsetDateTime(t *testing.T) {
	got, err := temporal.ParseOffsetDateTime("2024-03-15T13:45:30+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 15, 11, 45, 30, 0, time.UTC)))
	assert.Equal(t, "2024-03-15T13:45:30+02:00", temporal.FormatDateTime(got))

	_, err = temporal.ParseOffsetDateTime("2024-03-15T13:45:30")
	assert.ErrorIs(t, err, apperrors.ErrMalformed)

	instant, err := temporal.ParseInstant("2024-03-15T13:45:30.25-01:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, instant.Location())
	assert.Equal(t, "2024-03-15T14:45:30.25Z", temporal.FormatDateTime(instant))
}

func TestParseZonedDateTime(t *testing.T) {
	got, err := temporal.ParseZonedDateTime("2024-07-01T12:00:00+02:00[Europe/Paris]")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", got.Location().String())
	assert.Equal(t, 12, got.Hour())

	got, err = temporal.ParseZonedDateTime("2024-01-01T09:30[America/New_York]")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)))

	_, err = temporal.ParseZonedDateTime("2024-01-01T09:30[Mars/Olympus]")
	assert.ErrorIs(t, err, apperrors.ErrMalformed)
	_, err = temporal.ParseZonedDateTime("2024-01-01T09:30")
	assert.ErrorIs(t, err, apperrors.ErrMalformed)
}

func TestParseYearMonth(t *testing.T) {
	ym, err := temporal.ParseYearMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", ym.String())
	assert.Equal(t, 29, ym.Days())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), ym.LastDay(nil))

	_, err = temporal.ParseYearMonth("2024-13")
	assert.ErrorIs(t, err, apperrors.ErrMalformed)
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want temporal.Period
		str  string
	}{
		{"P1Y2M3DT4H5M6S", temporal.Period{Years: 1, Months: 2, Days: 3, Duration: 4*time.Hour + 5*time.Minute + 6*time.Second}, "P1Y2M3DT4H5M6S"},
		{"P2W", temporal.Period{Days: 14}, "P14D"},
		{"PT1.5S", temporal.Period{Duration: 1500 * time.Millisecond}, "PT1.5S"},
		{"pt36h", temporal.Period{Duration: 36 * time.Hour}, "PT36H"},
		{"-P1D", temporal.Period{Days: -1}, "P-1D"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := temporal.ParsePeriod(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.str, got.String())
		})
	}

	for _, in := range []string{"P", "PT", "P1DT", "1D", "P1H", "P1.5D"} {
		_, err := temporal.ParsePeriod(in)
		assert.ErrorIs(t, err, apperrors.ErrMalformed, in)
	}

	// components that do not fit are rejected instead of wrapping
	for _, in := range []string{
		"P99999999999999999999Y",
		"P9223372036854775807W",
		"PT9999999999H",
		"-PT9999999999H",
		"PT999999999999M",
		"PT99999999999S",
		"PT2562047H59M59S",
	} {
		_, err := temporal.ParsePeriod(in)
		assert.ErrorIs(t, err, apperrors.ErrMalformed, in)
	}
	p, err := temporal.ParsePeriod("PT2562047H")
	require.NoError(t, err)
	assert.Equal(t, 2562047*time.Hour, p.Duration)

	p, err = temporal.ParsePeriod("P1M")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), p.AddTo(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "PT0S", temporal.Period{}.String())
}
