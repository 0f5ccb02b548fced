package storage

import (
	"slices"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
)

// BestWeights returns a lookup of the heaviest completed weight per exercise
// over all of data.
func BestWeights(data model.WorkoutData) func(name string) (float64, bool) {
	return BestWeightsBefore(data, "")
}

// BestWeightsBefore is like BestWeights but only considers days strictly
// before the date key before. An empty key considers every day.
// The lookup is computed eagerly and never touches data again.
func BestWeightsBefore(data model.WorkoutData, before string) func(name string) (float64, bool) {
	best := map[string]float64{}
	for key, l := range data {
		if l == nil || (before != "" && key >= before) {
			continue
		}
		for _, ex := range l.Exercises {
			if ex.Type != "" && ex.Type != model.TypeStrength {
				continue
			}
			for _, s := range ex.Sets {
				if !s.Completed {
					continue
				}
				if w := s.Weight.Float(); w > best[ex.Name] {
					best[ex.Name] = w
				}
			}
		}
	}
	return func(name string) (float64, bool) {
		w, ok := best[name]
		return w, ok
	}
}

// Session is one day's performance of a single exercise.
type Session struct {
	Key      string
	Exercise model.Exercise
}

// LatestSessions returns up to n sessions of the named exercise with at
// least one completed set, most recent first.
func LatestSessions(data model.WorkoutData, name string, n int) []Session {
	keys := data.SortedKeys()
	slices.Reverse(keys)

	var out []Session
	for _, key := range keys {
		if len(out) >= n {
			break
		}
		ex, ok := data[key].Find(name)
		if !ok || !hasCompleted(ex.Sets) {
			continue
		}
		out = append(out, Session{Key: key, Exercise: *ex})
	}
	return out
}

func hasCompleted(sets []model.Set) bool {
	return slices.ContainsFunc(sets, func(s model.Set) bool { return s.Completed })
}
