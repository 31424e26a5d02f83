// Package temporal parses ISO 8601 dates, times, offsets and periods, and
// provides helpers for building and truncating time values.
//
// Every parser returns an apperrors Malformed error on invalid input and
// never panics.
package temporal

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone names such as "CET" resolve without a system database

	"github.com/amirasaad/toolkit/pkg/apperrors"
)

var (
	dateRe      = regexp.MustCompile(`^(\d{4})(-?)(\d{2})(-?)(\d{2})$`)
	timeRe      = regexp.MustCompile(`^(\d{2}):?(\d{2})(?::?(\d{2})(?:[.,](\d{1,9}))?)?$`)
	offsetRe    = regexp.MustCompile(`^(?:[Zz]|([+-])(\d{2})(?::?(\d{2}))?)$`)
	yearMonthRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	zonedRe     = regexp.MustCompile(`^(.+)\[([^\]]+)\]$`)
	periodRe    = regexp.MustCompile(`(?i)^([+-])?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?` +
		`(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:[.,]\d{1,9})?)S)?)?$`)
)

func malformed(what, s string, cause error) error {
	return apperrors.Malformed(what, s, cause)
}

// ParseDate parses "2024-03-15" or "20240315" as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return parseDate(s, time.UTC)
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil || m[2] != m[4] {
		return time.Time{}, malformed("date", s, nil)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[3])
	d, _ := strconv.Atoi(m[5])
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, loc)
	if t.Year() != y || int(t.Month()) != mo || t.Day() != d {
		return time.Time{}, malformed("date", s, fmt.Errorf("%04d-%02d-%02d does not exist", y, mo, d))
	}
	return t, nil
}

// ParseTime parses "13:45", "13:45:30" or "13:45:30.123456789". The compact
// forms "1345" and "134530" are accepted too.
func ParseTime(s string) (TimeOfDay, error) {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, malformed("time", s, nil)
	}
	var t TimeOfDay
	t.Hour, _ = strconv.Atoi(m[1])
	t.Minute, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		t.Second, _ = strconv.Atoi(m[3])
	}
	if m[4] != "" {
		frac := m[4] + strings.Repeat("0", 9-len(m[4]))
		t.Nanosecond, _ = strconv.Atoi(frac)
	}
	if t.Hour > 23 || t.Minute > 59 || t.Second > 59 {
		return TimeOfDay{}, malformed("time", s, fmt.Errorf("%s is out of range", t))
	}
	return t, nil
}

// ParseDateTime parses a local date-time such as "2024-03-15T13:45:30" in
// loc. A nil loc means UTC.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	date, clock, ok := strings.Cut(s, "T")
	if !ok {
		return time.Time{}, malformed("date-time", s, nil)
	}
	d, err := parseDate(date, loc)
	if err != nil {
		return time.Time{}, malformed("date-time", s, err)
	}
	t, err := ParseTime(clock)
	if err != nil {
		return time.Time{}, malformed("date-time", s, err)
	}
	return t.On(d), nil
}

// ParseOffset parses "Z", "+02:00", "-0530" or "+02" into a fixed zone.
func ParseOffset(s string) (*time.Location, error) {
	m := offsetRe.FindStringSubmatch(s)
	if m == nil {
		return nil, malformed("offset", s, nil)
	}
	if m[1] == "" {
		return time.UTC, nil
	}
	h, _ := strconv.Atoi(m[2])
	mins := 0
	if m[3] != "" {
		mins, _ = strconv.Atoi(m[3])
	}
	if h > 18 || mins > 59 || (h == 18 && mins > 0) {
		return nil, malformed("offset", s, fmt.Errorf("offset must be within ±18:00"))
	}
	secs := h*3600 + mins*60
	if m[1] == "-" {
		secs = -secs
	}
	return time.FixedZone(fmt.Sprintf("%s%02d:%02d", m[1], h, mins), secs), nil
}

// ParseOffsetDateTime parses a date-time with a trailing offset, for
// example "2024-03-15T13:45:30+02:00".
func ParseOffsetDateTime(s string) (time.Time, error) {
	date, rest, ok := strings.Cut(s, "T")
	if !ok {
		return time.Time{}, malformed("offset date-time", s, nil)
	}
	i := strings.IndexAny(rest, "Zz+-")
	if i < 0 {
		return time.Time{}, malformed("offset date-time", s, fmt.Errorf("missing offset"))
	}
	loc, err := ParseOffset(rest[i:])
	if err != nil {
		return time.Time{}, malformed("offset date-time", s, err)
	}
	t, err := ParseDateTime(date+"T"+rest[:i], loc)
	if err != nil {
		return time.Time{}, malformed("offset date-time", s, err)
	}
	return t, nil
}

// ParseInstant parses an offset date-time and returns it in UTC.
func ParseInstant(s string) (time.Time, error) {
	t, err := ParseOffsetDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseZonedDateTime parses "2024-03-15T13:45:30+01:00[Europe/Paris]". The
// offset is optional; without it the date-time is local to the zone.
func ParseZonedDateTime(s string) (time.Time, error) {
	m := zonedRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, malformed("zoned date-time", s, nil)
	}
	loc, err := time.LoadLocation(m[2])
	if err != nil {
		return time.Time{}, malformed("zoned date-time", s, err)
	}
	_, clock, _ := strings.Cut(m[1], "T")
	if strings.ContainsAny(clock, "Zz+-") {
		t, err := ParseOffsetDateTime(m[1])
		if err != nil {
			return time.Time{}, malformed("zoned date-time", s, err)
		}
		return t.In(loc), nil
	}
	t, err := ParseDateTime(m[1], loc)
	if err != nil {
		return time.Time{}, malformed("zoned date-time", s, err)
	}
	return t, nil
}

// ParseYearMonth parses "2024-03".
func ParseYearMonth(s string) (YearMonth, error) {
	m := yearMonthRe.FindStringSubmatch(s)
	if m == nil {
		return YearMonth{}, malformed("year-month", s, nil)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	if mo < 1 || mo > 12 {
		return YearMonth{}, malformed("year-month", s, fmt.Errorf("month %d is out of range", mo))
	}
	return YearMonth{Year: y, Month: time.Month(mo)}, nil
}

var errPeriodOverflow = errors.New("period component out of range")

// scaleDuration returns n units, n being non-negative.
func scaleDuration(n int, unit time.Duration) (time.Duration, error) {
	if int64(n) > math.MaxInt64/int64(unit) {
		return 0, errPeriodOverflow
	}
	return time.Duration(n) * unit, nil
}

// addDuration adds two non-negative durations.
func addDuration(a, b time.Duration) (time.Duration, error) {
	if a > math.MaxInt64-b {
		return 0, errPeriodOverflow
	}
	return a + b, nil
}

// ParsePeriod parses an ISO 8601 duration such as "P1Y2M3DT4H5M6.5S" or
// "P2W". A leading sign negates every component.
func ParsePeriod(s string) (Period, error) {
	m := periodRe.FindStringSubmatch(s)
	if m == nil || strings.HasSuffix(strings.ToUpper(s), "T") || strings.Trim(strings.ToUpper(s), "+-") == "P" {
		return Period{}, malformed("period", s, nil)
	}
	var numErr error
	atoi := func(v string) int {
		if v == "" || numErr != nil {
			return 0
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			numErr = err
		}
		return n
	}
	years, months, weeks, days := atoi(m[2]), atoi(m[3]), atoi(m[4]), atoi(m[5])
	hours, minutes := atoi(m[6]), atoi(m[7])
	if numErr != nil {
		return Period{}, malformed("period", s, numErr)
	}
	if weeks > (math.MaxInt-days)/7 {
		return Period{}, malformed("period", s, errPeriodOverflow)
	}
	p := Period{Years: years, Months: months, Days: weeks*7 + days}

	var err error
	if p.Duration, err = scaleDuration(hours, time.Hour); err != nil {
		return Period{}, malformed("period", s, err)
	}
	mins, err := scaleDuration(minutes, time.Minute)
	if err != nil {
		return Period{}, malformed("period", s, err)
	}
	if p.Duration, err = addDuration(p.Duration, mins); err != nil {
		return Period{}, malformed("period", s, err)
	}
	if m[8] != "" {
		secs, err := time.ParseDuration(strings.ReplaceAll(m[8], ",", ".") + "s")
		if err != nil {
			return Period{}, malformed("period", s, err)
		}
		if p.Duration, err = addDuration(p.Duration, secs); err != nil {
			return Period{}, malformed("period", s, err)
		}
	}
	if m[1] == "-" {
		p = p.Negate()
	}
	return p, nil
}
