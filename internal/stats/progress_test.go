package stats_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/stats"
)

func TestCompareProgress(t *testing.T) {
	tests := []struct {
		name     string
		current  stats.Snapshot
		previous *stats.Snapshot
		want     stats.Comparison
	}{
		{
			name:    "baseline",
			current: stats.Snapshot{Volume: 100, Max1RM: ref(100)},
			want:    stats.Comparison{Verdict: stats.VerdictBaseline},
		},
		{
			name:     "overload",
			current:  stats.Snapshot{Volume: 110, Max1RM: ref(105)},
			previous: &stats.Snapshot{Volume: 100, Max1RM: ref(100)},
			want: stats.Comparison{
				VolumeDeltaPercent: ref(10),
				StrengthDeltaKg:    ref(5),
				Verdict:            stats.VerdictOverload,
			},
		},
		{
			name:     "overload despite lower volume",
			current:  stats.Snapshot{Volume: 50, Max1RM: ref(101)},
			previous: &stats.Snapshot{Volume: 100, Max1RM: ref(100)},
			want: stats.Comparison{
				VolumeDeltaPercent: ref(-50),
				StrengthDeltaKg:    ref(1),
				Verdict:            stats.VerdictOverload,
			},
		},
		{
			name:     "deload",
			current:  stats.Snapshot{Volume: 50},
			previous: &stats.Snapshot{Volume: 100},
			want: stats.Comparison{
				VolumeDeltaPercent: ref(-50),
				Verdict:            stats.VerdictDeload,
			},
		},
		{
			name:     "volume progression",
			current:  stats.Snapshot{Volume: 103, Max1RM: ref(100)},
			previous: &stats.Snapshot{Volume: 100, Max1RM: ref(100)},
			want: stats.Comparison{
				VolumeDeltaPercent: ref(3),
				StrengthDeltaKg:    ref(0),
				Verdict:            stats.VerdictVolume,
			},
		},
		{
			name:     "regression",
			current:  stats.Snapshot{Volume: 95, Max1RM: ref(90)},
			previous: &stats.Snapshot{Volume: 100, Max1RM: ref(100)},
			want: stats.Comparison{
				VolumeDeltaPercent: ref(-5),
				StrengthDeltaKg:    ref(-10),
				Verdict:            stats.VerdictRegression,
			},
		},
		{
			name:     "maintenance",
			current:  stats.Snapshot{Volume: 101, Max1RM: ref(98)},
			previous: &stats.Snapshot{Volume: 100, Max1RM: ref(100)},
			want: stats.Comparison{
				VolumeDeltaPercent: ref(1),
				StrengthDeltaKg:    ref(-2),
				Verdict:            stats.VerdictMaintenance,
			},
		},
		{
			name:     "first volume after zero",
			current:  stats.Snapshot{Volume: 40},
			previous: &stats.Snapshot{},
			want: stats.Comparison{
				VolumeDeltaPercent: ref(100),
				Verdict:            stats.VerdictVolume,
			},
		},
		{
			name:     "both zero",
			current:  stats.Snapshot{},
			previous: &stats.Snapshot{},
			want: stats.Comparison{
				VolumeDeltaPercent: ref(0),
				Verdict:            stats.VerdictMaintenance,
			},
		},
		{
			name:     "rounded to one decimal",
			current:  stats.Snapshot{Volume: 1000, Max1RM: ref(116.66666)},
			previous: &stats.Snapshot{Volume: 3000, Max1RM: ref(116.66666)},
			want: stats.Comparison{
				VolumeDeltaPercent: ref(-66.7),
				StrengthDeltaKg:    ref(0),
				Verdict:            stats.VerdictDeload,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stats.CompareProgress(tt.current, tt.previous)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("CompareProgress() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompareProgressVerdictUsesUnroundedDelta(t *testing.T) {
	// 2.54% rounds to 2.5, which alone would not pass the threshold.
	got := stats.CompareProgress(stats.Snapshot{Volume: 1025.4}, &stats.Snapshot{Volume: 1000})
	if got.Verdict != stats.VerdictVolume {
		t.Errorf("Verdict = %q, want %q", got.Verdict, stats.VerdictVolume)
	}
	if *got.VolumeDeltaPercent != 2.5 {
		t.Errorf("VolumeDeltaPercent = %v, want 2.5", *got.VolumeDeltaPercent)
	}
}
