package temporal

import (
	"time"

	"github.com/jinzhu/now"
)

// ISO 8601 layouts used by the formatters.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05.999999999Z07:00"
)

var weekConfig = &now.Config{WeekStartDay: time.Monday}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// Date returns midnight of the given day in loc (UTC when nil).
func Date(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, orUTC(loc))
}

// DateTime returns the given wall-clock instant in loc (UTC when nil).
func DateTime(year int, month time.Month, day, hour, minute, sec int, loc *time.Location) time.Time {
	return time.Date(year, month, day, hour, minute, sec, 0, orUTC(loc))
}

// Today returns midnight of the current day in loc.
func Today(loc *time.Location) time.Time {
	return StartOfDay(time.Now().In(orUTC(loc)))
}

// TodayAt returns the current day at hour:minute in loc.
func TodayAt(hour, minute int, loc *time.Location) time.Time {
	return TimeOfDay{Hour: hour, Minute: minute}.On(Today(loc))
}

// PreviousCutoff returns the most recent daily cutoff at hour:00 in loc that
// lies strictly before t: today's when t is past it, otherwise yesterday's.
func PreviousCutoff(t time.Time, hour int, loc *time.Location) time.Time {
	local := t.In(orUTC(loc))
	cutoff := TimeOfDay{Hour: hour}.On(local)
	if local.After(cutoff) {
		return cutoff
	}
	return cutoff.AddDate(0, 0, -1)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time { return weekConfig.With(t).BeginningOfDay() }

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time { return weekConfig.With(t).EndOfDay() }

// StartOfWeek returns midnight of the Monday starting t's week.
func StartOfWeek(t time.Time) time.Time { return weekConfig.With(t).BeginningOfWeek() }

// EndOfWeek returns the last nanosecond of the Sunday ending t's week.
func EndOfWeek(t time.Time) time.Time { return weekConfig.With(t).EndOfWeek() }

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time { return weekConfig.With(t).BeginningOfMonth() }

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time { return weekConfig.With(t).EndOfMonth() }

// StartOfQuarter returns midnight of the first day of t's calendar quarter.
func StartOfQuarter(t time.Time) time.Time { return weekConfig.With(t).BeginningOfQuarter() }

// EndOfQuarter returns the last nanosecond of t's calendar quarter.
func EndOfQuarter(t time.Time) time.Time { return weekConfig.With(t).EndOfQuarter() }

// StartOfYear returns midnight of January 1 of t's year.
func StartOfYear(t time.Time) time.Time { return weekConfig.With(t).BeginningOfYear() }

// EndOfYear returns the last nanosecond of t's year.
func EndOfYear(t time.Time) time.Time { return weekConfig.With(t).EndOfYear() }

// FormatDate formats t as "2006-01-02".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime formats t with its offset, trimming a zero fraction.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
