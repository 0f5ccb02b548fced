package stats

import "github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"

const (
	minRepsFor1RM = 1
	maxRepsFor1RM = 15
)

// VolumeLoad sums reps × weight over sets. A set without a positive weight
// is counted at bodyweight when bodyweight is positive. Completion is not
// checked; pass only the sets that should count.
func VolumeLoad(sets []model.Set, bodyweight float64) float64 {
	var total float64
	for _, s := range sets {
		weight := s.Weight.Float()
		if weight <= 0 {
			weight = max(bodyweight, 0)
		}
		total += s.Reps.Float() * weight
	}
	return total
}

// Max1RM returns the best Epley estimate weight × (1 + reps/30) over the
// sets with a positive weight and 1–15 reps. It returns nil when no set
// qualifies, which is not the same as a maximum of zero.
func Max1RM(sets []model.Set) *float64 {
	var best *float64
	for _, s := range sets {
		weight := s.Weight.Float()
		reps := s.Reps.Float()
		if weight <= 0 || reps < minRepsFor1RM || reps > maxRepsFor1RM {
			continue
		}
		estimate := weight * (1 + reps/30)
		if best == nil || estimate > *best {
			best = &estimate
		}
	}
	return best
}

// SessionSnapshot summarizes the completed sets of one exercise for the
// progress comparator.
func SessionSnapshot(ex model.Exercise, bodyweight float64) Snapshot {
	completed := make([]model.Set, 0, len(ex.Sets))
	for _, s := range ex.Sets {
		if s.Completed {
			completed = append(completed, s)
		}
	}
	return Snapshot{
		Volume: VolumeLoad(completed, bodyweight),
		Max1RM: Max1RM(completed),
	}
}
