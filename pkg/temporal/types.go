package temporal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time without a date or zone.
type TimeOfDay struct {
	Hour, Minute, Second, Nanosecond int
}

// On returns the instant at t on the calendar day of date, in date's
// location.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, t.Second, t.Nanosecond, date.Location())
}

// String formats t as "15:04:05", adding the fraction when non-zero.
func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		s += "." + strings.TrimRight(fmt.Sprintf("%09d", t.Nanosecond), "0")
	}
	return s
}

// YearMonth is a calendar month of a year.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// FirstDay returns midnight of the first day of the month in loc.
func (ym YearMonth) FirstDay(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, loc)
}

// LastDay returns midnight of the last day of the month in loc.
func (ym YearMonth) LastDay(loc *time.Location) time.Time {
	return ym.FirstDay(loc).AddDate(0, 1, -1)
}

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return ym.LastDay(time.UTC).Day()
}

// Period is a calendar amount of time: years, months and days applied with
// AddDate, plus an exact Duration.
type Period struct {
	Years, Months, Days int
	Duration            time.Duration
}

// AddTo returns t shifted by p.
func (p Period) AddTo(t time.Time) time.Time {
	return t.AddDate(p.Years, p.Months, p.Days).Add(p.Duration)
}

// Negate flips the sign of every component.
func (p Period) Negate() Period {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days, Duration: -p.Duration}
}

// IsZero reports whether every component is zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

// String formats p in ISO 8601 form, e.g. "P1Y2M3DT4H5M6S". The zero
// period is "PT0S".
func (p Period) String() string {
	if p.IsZero() {
		return "PT0S"
	}
	var b strings.Builder
	b.WriteByte('P')
	writeUnit(&b, p.Years, 'Y')
	writeUnit(&b, p.Months, 'M')
	writeUnit(&b, p.Days, 'D')
	if p.Duration != 0 {
		b.WriteByte('T')
		d := p.Duration
		h := d / time.Hour
		d -= h * time.Hour
		m := d / time.Minute
		d -= m * time.Minute
		writeUnit(&b, int(h), 'H')
		writeUnit(&b, int(m), 'M')
		if d != 0 {
			b.WriteString(strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
			b.WriteByte('S')
		}
	}
	return b.String()
}

func writeUnit(b *strings.Builder, n int, unit byte) {
	if n != 0 {
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(unit)
	}
}
