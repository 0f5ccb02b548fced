package model

import (
	"sort"
	"time"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

// ExerciseType is the activity family an exercise belongs to.
type ExerciseType string

const (
	TypeStrength ExerciseType = "strength"
	TypeCardio   ExerciseType = "cardio"
	TypeAbs      ExerciseType = "abs"
)

// CardioMode selects which cardio field measures the work done.
type CardioMode string

const (
	CardioDistance CardioMode = "distance"
	CardioCircuit  CardioMode = "circuit"
)

// CoreMode selects whether a core exercise counts reps or hold time.
type CoreMode string

const (
	CoreReps CoreMode = "reps"
	CoreHold CoreMode = "hold"
)

const (
	// DefaultTargetSets applies when an exercise has no set target.
	DefaultTargetSets = 3
	// DefaultTargetReps applies when an exercise has no usable rep target.
	DefaultTargetReps = 8
)

// Set is one performed unit of an exercise. Which fields are used depends on
// the exercise type and mode.
type Set struct {
	Weight    Value  `json:"weight,omitempty"`
	Reps      Value  `json:"reps,omitempty"`
	Target    Value  `json:"target,omitempty"`
	Distance  Value  `json:"distance,omitempty"`
	Time      Value  `json:"time,omitempty"`
	Pace      string `json:"pace,omitempty"`
	HoldTime  Value  `json:"holdTime,omitempty"`
	Completed bool   `json:"completed"`
}

// PaceMinPerKm returns the pace in minutes per kilometre.
// ok is false unless both distance and time are positive numbers.
func (s Set) PaceMinPerKm() (float64, bool) {
	km := s.Distance.Float()
	minutes := s.Time.Minutes()
	if km <= 0 || minutes <= 0 {
		return 0, false
	}
	return minutes / km, true
}

// RecomputePace refreshes the derived Pace field from Distance and Time.
func (s *Set) RecomputePace() {
	pace, ok := s.PaceMinPerKm()
	if !ok {
		s.Pace = ""
		return
	}
	s.Pace = timecalc.FormatClock(int64(pace*60 + 0.5))
}

// Exercise is one exercise of a day's log together with its targets.
type Exercise struct {
	Name       string       `json:"name"`
	Type       ExerciseType `json:"type"`
	CardioMode CardioMode   `json:"cardioMode,omitempty"`
	CoreMode   CoreMode     `json:"coreMode,omitempty"`
	TargetSets int          `json:"targetSets,omitempty"`
	// TargetReps is the free-form target such as "8-12" or "AMRAP".
	TargetReps string `json:"targetReps,omitempty"`
	// NumericalTargetReps is the comparison target derived from TargetReps.
	NumericalTargetReps float64 `json:"numericalTargetReps,omitempty"`
	Sets                []Set   `json:"sets"`
}

// SetsTarget returns the planned number of sets.
func (e Exercise) SetsTarget() int {
	if e.TargetSets <= 0 {
		return DefaultTargetSets
	}
	return e.TargetSets
}

// Log is everything recorded on one calendar day.
type Log struct {
	Date      string     `json:"date"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

// Find returns the exercise with the given name.
func (l *Log) Find(name string) (*Exercise, bool) {
	if l == nil {
		return nil, false
	}
	for i := range l.Exercises {
		if l.Exercises[i].Name == name {
			return &l.Exercises[i], true
		}
	}
	return nil, false
}

// SetCounts returns the number of completed sets and of all sets.
func (l *Log) SetCounts() (int, int) {
	if l == nil {
		return 0, 0
	}
	var completed, total int
	for _, ex := range l.Exercises {
		for _, s := range ex.Sets {
			total++
			if s.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// WorkoutData maps local date keys to the log of that day.
type WorkoutData map[string]*Log

// SortedKeys returns the date keys in ascending order. Zero-padded keys sort
// chronologically as plain strings.
func (d WorkoutData) SortedKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
