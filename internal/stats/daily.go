package stats

import (
	"math"
	"time"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

// BestLookup returns the best weight previously recorded for an exercise.
// Implementations must be free of side effects.
type BestLookup func(exerciseName string) (weight float64, ok bool)

// Daily holds the statistics of one day's log. It is derived on demand and
// never stored.
type Daily struct {
	// Score is the actual volume as a percentage of the target volume.
	Score        int
	Volume       float64
	TargetVolume float64
	StrengthVol  float64
	// CardioVol mixes distance and minutes depending on each exercise's mode.
	CardioVol   float64
	AbsVol      float64
	HasStrength bool
	HasCardio   bool
	HasCore     bool
	Duration    string
}

// Active reports whether any completed set counted towards a category.
func (d Daily) Active() bool {
	return d.HasStrength || d.HasCardio || d.HasCore
}

// ComputeDaily derives the statistics of one day's log.
//
// Volumes from strength, cardio and core work are put on a common footing:
// the target of a cardio or core exercise is targetSets × target reps in the
// exercise's own unit, and a strength target is additionally scaled by a
// reference weight. Completed sets with missing numbers count at target so
// that ticking a set off always moves the score.
//
// end closes the session for the duration. A zero end means the log's own
// end time, or the current time for a session still running.
func ComputeDaily(log *model.Log, best BestLookup, end time.Time) Daily {
	if log == nil {
		return Daily{Duration: "0m"}
	}

	var d Daily
	for _, ex := range log.Exercises {
		reps := targetReps(ex)
		plannedSets := float64(ex.SetsTarget())

		switch ex.Type {
		case model.TypeCardio:
			d.TargetVolume += plannedSets * reps
			for _, s := range ex.Sets {
				if s.Completed {
					d.CardioVol += orTarget(cardioOutput(ex, s), reps)
				}
			}
		case model.TypeAbs:
			d.TargetVolume += plannedSets * reps
			for _, s := range ex.Sets {
				if s.Completed {
					d.AbsVol += orTarget(coreOutput(ex, s), reps)
				}
			}
		default:
			ref := referenceWeight(ex, best)
			d.TargetVolume += plannedSets * reps * ref
			for _, s := range ex.Sets {
				if !s.Completed {
					continue
				}
				d.StrengthVol += orTarget(s.Reps.Float(), setTargetReps(ex, s)) * orTarget(s.Weight.Float(), ref)
			}
		}
	}

	d.Volume = d.StrengthVol + d.CardioVol + d.AbsVol
	d.Score = percent(d.Volume, d.TargetVolume)
	d.HasStrength = d.StrengthVol > 0
	d.HasCardio = d.CardioVol > 0
	d.HasCore = d.AbsVol > 0

	d.Duration = "0m"
	if log.StartTime != nil {
		if end.IsZero() {
			end = time.Now()
			if log.EndTime != nil {
				end = *log.EndTime
			}
		}
		d.Duration = timecalc.Elapsed(*log.StartTime, end)
	}
	return d
}

// referenceWeight is the weight a strength target is measured in: the
// previous best, else the mean of this session's positive weights, else 1.
// Only strength exercises carry weights.
func referenceWeight(ex model.Exercise, best BestLookup) float64 {
	if best != nil {
		if w, ok := best(ex.Name); ok && w > 0 {
			return w
		}
	}
	var sum float64
	var n int
	for _, s := range ex.Sets {
		if w := s.Weight.Float(); w > 0 {
			sum += w
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}

// cardioOutput is the work of one cardio set in the exercise's unit.
func cardioOutput(ex model.Exercise, s model.Set) float64 {
	if ex.CardioMode == model.CardioCircuit {
		return s.Time.Minutes()
	}
	return s.Distance.Float()
}

// coreOutput is the work of one core set: reps, or seconds held.
func coreOutput(ex model.Exercise, s model.Set) float64 {
	if ex.CoreMode == model.CoreHold {
		return s.HoldTime.Seconds()
	}
	return s.Reps.Float()
}

func orTarget(v, target float64) float64 {
	if v > 0 {
		return v
	}
	return target
}

// maxPercent caps scores computed from absurdly large entries.
const maxPercent = math.MaxInt32

// percent returns round(actual / target × 100) with the target floored at 1,
// clamped to [0, maxPercent]. Overflowing input yields 0 or maxPercent.
func percent(actual, target float64) int {
	ratio := actual / max(target, 1) * 100
	switch {
	case math.IsNaN(ratio) || ratio <= 0:
		return 0
	case ratio >= maxPercent:
		return maxPercent
	}
	return int(math.Round(ratio))
}
