package stats

import (
	"time"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

// DayStatus classifies one calendar day.
type DayStatus string

const (
	StatusCompleteGood   DayStatus = "complete-good"
	StatusCompleteMedium DayStatus = "complete-medium"
	StatusCompleteLow    DayStatus = "complete-low"
	StatusCompleteNone   DayStatus = "complete-none"
	StatusFuture         DayStatus = "future"
	StatusEmpty          DayStatus = "empty"
	StatusRest           DayStatus = "rest"
	StatusAbsent         DayStatus = "absent"
)

// Penalized reports whether the status counts as a missed day.
func (s DayStatus) Penalized() bool {
	return s == StatusAbsent
}

// CalendarDay is the status of one day of a month.
type CalendarDay struct {
	Date      time.Time
	Key       string
	Status    DayStatus
	Completed int
	Total     int
}

// ClassifyMonth returns the status of every day of month, looking logs up
// by local date key. today is normalized to local midnight; restDay is the
// weekday exempt from the absent penalty.
func ClassifyMonth(
	year int,
	month time.Month,
	data model.WorkoutData,
	today time.Time,
	restDay time.Weekday,
) []CalendarDay {
	today = timecalc.StartOfDay(today)
	first, last := timecalc.MonthRange(year, month, today.Location())

	days := make([]CalendarDay, 0, last.Day())
	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		key := timecalc.DateKey(date)
		day := CalendarDay{Date: date, Key: key}
		day.Completed, day.Total = data[key].SetCounts()
		day.Status = classifyDay(date, today, restDay, day.Completed, day.Total)
		days = append(days, day)
	}
	return days
}

func classifyDay(date, today time.Time, restDay time.Weekday, completed, total int) DayStatus {
	if total > 0 {
		ratio := float64(completed) / float64(total)
		switch {
		case ratio >= 0.8:
			return StatusCompleteGood
		case ratio >= 0.5:
			return StatusCompleteMedium
		case ratio > 0:
			return StatusCompleteLow
		default:
			return StatusCompleteNone
		}
	}

	switch {
	case date.After(today):
		return StatusFuture
	case date.Equal(today):
		return StatusEmpty
	case date.Weekday() == restDay:
		return StatusRest
	default:
		return StatusAbsent
	}
}
