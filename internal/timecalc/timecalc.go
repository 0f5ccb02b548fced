package timecalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKeyLayout is the layout of the keys that identify a day's workout log.
const DateKeyLayout = "2006-01-02"

// ErrInvalidDateKey is returned when a string is not a YYYY-MM-DD date key.
var ErrInvalidDateKey = errors.New("invalid date key")

// DateKey returns the YYYY-MM-DD key of the calendar day t falls on in its own
// location. Pass local times: a key derived from t.UTC() names the wrong day
// for late-evening sessions east or west of Greenwich.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a date key as midnight of that day in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, strings.TrimSpace(key), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDateKey, key, err)
	}
	return t, nil
}

// FormatDuration formats seconds as "1h 40m", "45m" or "30s".
// Zero and negative durations read "0m".
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "0m"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// Elapsed formats the time between start and end with FormatDuration.
// A zero start means the session never started.
func Elapsed(start, end time.Time) string {
	if start.IsZero() {
		return "0m"
	}
	return FormatDuration(int64(end.Sub(start) / time.Second))
}

// FormatDurationHHMMSS formats seconds as HH:MM:SS.
func FormatDurationHHMMSS(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatClock formats seconds as a stopwatch reading like "1:30".
func FormatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ParseClock parses "m:ss" notation into seconds.
// ok is false when s is not in clock notation.
func ParseClock(s string) (float64, bool) {
	minStr, secStr, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil || minutes < 0 {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(secStr), 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, false
	}
	return float64(minutes)*60 + seconds, true
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := StartOfDay(t.AddDate(0, 0, -(wd - 1)))
	sunday := EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthRange returns midnight of the first and of the last day of month in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from a to b, each taken in
// its own location. Days that are 23 or 25 hours long still count as one.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
