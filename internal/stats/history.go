package stats

import (
	"time"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

// LabelLayout formats the chart label of a day.
const LabelLayout = "Jan 2"

// Distribution counts the active days per category.
type Distribution struct {
	Strength int `json:"strength"`
	Cardio   int `json:"cardio"`
	Core     int `json:"core"`
}

// History is the aggregate of all logged days. The series slices are
// parallel: index i of each describes the i-th active day.
type History struct {
	Keys   []string
	Labels []string
	// StrengthVolume is reps × weight of completed strength sets.
	StrengthVolume []float64
	CardioMinutes  []float64
	CardioDistance []float64
	// CoreOutput is reps, or seconds held for hold exercises.
	CoreOutput []float64

	Distribution  Distribution
	TotalSessions int
	// TotalVolume is the sum of the daily strength volumes.
	TotalVolume float64
	Streak      int
	// Discipline is the adherence score over every logged day.
	Discipline int
}

// ComputeHistory folds the daily statistics over all logs in date order.
// A day with a log but no completed work is left out of the series and the
// distribution. now decides the streak and must be frozen by the caller.
func ComputeHistory(data model.WorkoutData, best BestLookup, now time.Time) History {
	h := History{TotalSessions: len(data)}

	var actual, target float64
	for _, key := range data.SortedKeys() {
		log := data[key]
		if log == nil {
			continue
		}
		day, err := timecalc.ParseDateKey(key, now.Location())
		if err != nil {
			continue
		}

		daily := ComputeDaily(log, best, now)
		actual += daily.Volume
		target += daily.TargetVolume
		h.TotalVolume += daily.StrengthVol
		if !daily.Active() {
			continue
		}

		out := rawOutput(log)
		h.Keys = append(h.Keys, key)
		h.Labels = append(h.Labels, day.Format(LabelLayout))
		h.StrengthVolume = append(h.StrengthVolume, out.strength)
		h.CardioMinutes = append(h.CardioMinutes, out.cardioMinutes)
		h.CardioDistance = append(h.CardioDistance, out.cardioKm)
		h.CoreOutput = append(h.CoreOutput, out.core)

		if daily.HasStrength {
			h.Distribution.Strength++
		}
		if daily.HasCardio {
			h.Distribution.Cardio++
		}
		if daily.HasCore {
			h.Distribution.Core++
		}
	}

	if target > 0 {
		h.Discipline = percent(actual, target)
	}
	h.Streak = Streak(data, now)
	return h
}

// Streak counts the consecutive logged days ending on the most recent one.
// The streak is broken, and 0, unless that day is today or yesterday.
func Streak(data model.WorkoutData, now time.Time) int {
	var days []time.Time
	for _, key := range data.SortedKeys() {
		if data[key] == nil {
			continue
		}
		day, err := timecalc.ParseDateKey(key, now.Location())
		if err != nil {
			continue
		}
		if n := len(days); n > 0 && timecalc.DaysBetween(days[n-1], day) == 0 {
			continue
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return 0
	}

	last := days[len(days)-1]
	if gap := timecalc.DaysBetween(last, now); gap != 0 && gap != 1 {
		return 0
	}

	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if timecalc.DaysBetween(days[i-1], days[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}

type dayOutput struct {
	strength      float64
	cardioMinutes float64
	cardioKm      float64
	core          float64
}

// rawOutput measures a day's completed sets in their real units, keeping
// minutes and kilometres apart.
func rawOutput(log *model.Log) dayOutput {
	var out dayOutput
	for _, ex := range log.Exercises {
		for _, s := range ex.Sets {
			if !s.Completed {
				continue
			}
			switch ex.Type {
			case model.TypeCardio:
				out.cardioMinutes += max(s.Time.Minutes(), 0)
				if ex.CardioMode != model.CardioCircuit {
					out.cardioKm += max(s.Distance.Float(), 0)
				}
			case model.TypeAbs:
				out.core += max(coreOutput(ex, s), 0)
			default:
				out.strength += max(VolumeLoad([]model.Set{s}, 0), 0)
			}
		}
	}
	return out
}
