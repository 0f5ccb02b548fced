package stats

import (
	"math"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/ptr"
)

// Verdict is the qualitative outcome of comparing two sessions.
type Verdict string

const (
	VerdictBaseline    Verdict = "Baseline Established"
	VerdictOverload    Verdict = "Progressive Overload Achieved"
	VerdictVolume      Verdict = "Volume Progression"
	VerdictRegression  Verdict = "Regression / Fatigue"
	VerdictDeload      Verdict = "Deload"
	VerdictMaintenance Verdict = "Maintenance"
)

const (
	volumeProgressionPercent = 2.5
	regressionKg             = -5
	deloadPercent            = -10
)

// Snapshot is the volume and estimated 1RM of one session.
type Snapshot struct {
	Volume float64
	Max1RM *float64
}

// Comparison is the difference between two sessions. Nil deltas mean there
// was nothing to compare against.
type Comparison struct {
	VolumeDeltaPercent *float64
	StrengthDeltaKg    *float64
	Verdict            Verdict
}

// CompareProgress compares the current session with the previous one.
// A nil previous session establishes the baseline.
func CompareProgress(current Snapshot, previous *Snapshot) Comparison {
	if previous == nil {
		return Comparison{Verdict: VerdictBaseline}
	}

	var volumeDelta float64
	switch {
	case previous.Volume > 0:
		volumeDelta = (current.Volume - previous.Volume) / previous.Volume * 100
	case current.Volume > 0:
		volumeDelta = 100
	}

	var strengthDelta *float64
	if current.Max1RM != nil && previous.Max1RM != nil {
		d := *current.Max1RM - *previous.Max1RM
		strengthDelta = &d
	}

	// The verdict is taken on the unrounded deltas.
	verdict := VerdictMaintenance
	switch {
	case strengthDelta != nil && *strengthDelta > 0:
		verdict = VerdictOverload
	case volumeDelta > volumeProgressionPercent:
		verdict = VerdictVolume
	case strengthDelta != nil && *strengthDelta < regressionKg:
		verdict = VerdictRegression
	case volumeDelta < deloadPercent:
		verdict = VerdictDeload
	}

	out := Comparison{
		VolumeDeltaPercent: ptr.Ref(round1(volumeDelta)),
		Verdict:            verdict,
	}
	if strengthDelta != nil {
		out.StrengthDeltaKg = ptr.Ref(round1(*strengthDelta))
	}
	return out
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
