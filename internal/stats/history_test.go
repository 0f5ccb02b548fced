package stats_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/stats"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

func TestStreak(t *testing.T) {
	now := time.Date(2026, 3, 11, 18, 30, 0, 0, time.UTC)
	day := func(offset int) string {
		return timecalc.DateKey(now.AddDate(0, 0, offset))
	}
	logsOn := func(offsets ...int) model.WorkoutData {
		data := model.WorkoutData{}
		for _, o := range offsets {
			data[day(o)] = &model.Log{Date: day(o)}
		}
		return data
	}

	tests := []struct {
		name string
		data model.WorkoutData
		want int
	}{
		{"empty", model.WorkoutData{}, 0},
		{"today and the two days before", logsOn(0, -1, -2), 3},
		{"gap yesterday and nothing today", logsOn(-2, -3), 0},
		{"ending yesterday", logsOn(-1, -2), 2},
		{"only today", logsOn(0), 1},
		{"broken run", logsOn(0, -1, -3, -4), 2},
		{"future entry", logsOn(1), 0},
		{"nil log skipped", model.WorkoutData{day(0): {}, day(-1): nil}, 1},
		{"malformed key skipped", model.WorkoutData{day(0): {}, "garbage": {}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stats.Streak(tt.data, now); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}
	// Clocks go forward on 2026-03-29.
	now := time.Date(2026, 3, 30, 9, 0, 0, 0, loc)
	data := model.WorkoutData{
		"2026-03-28": {},
		"2026-03-29": {},
		"2026-03-30": {},
	}
	if got := stats.Streak(data, now); got != 3 {
		t.Errorf("Streak() = %d, want 3", got)
	}
}

func TestComputeHistory(t *testing.T) {
	now := time.Date(2026, 3, 11, 20, 0, 0, 0, time.UTC)
	data := model.WorkoutData{
		"2026-03-08": {Exercises: []model.Exercise{{
			Name:       "Squat",
			TargetSets: 3,
			TargetReps: "5",
			Sets:       []model.Set{{Weight: "100", Reps: "5"}},
		}}},
		"2026-03-09": {Exercises: []model.Exercise{
			{
				Name:       "Bench",
				Type:       model.TypeStrength,
				TargetSets: 3,
				TargetReps: "10",
				Sets:       []model.Set{{Weight: "50", Reps: "10", Completed: true}},
			},
			{
				Name:                "Run",
				Type:                model.TypeCardio,
				TargetSets:          1,
				NumericalTargetReps: 5,
				Sets:                []model.Set{{Distance: "5", Time: "30", Completed: true}},
			},
		}},
		"2026-03-10": {Exercises: []model.Exercise{{
			Name:       "Plank",
			Type:       model.TypeAbs,
			CoreMode:   model.CoreHold,
			TargetSets: 3,
			TargetReps: "60",
			Sets:       []model.Set{{HoldTime: "1:00", Completed: true}},
		}}},
		"2026-03-11": {Exercises: []model.Exercise{{
			Name:       "Circuit",
			Type:       model.TypeCardio,
			CardioMode: model.CardioCircuit,
			TargetSets: 2,
			TargetReps: "20",
			Sets:       []model.Set{{Distance: "4", Time: "20", Completed: true}},
		}}},
	}

	got := stats.ComputeHistory(data, nil, now)
	want := stats.History{
		Keys:           []string{"2026-03-09", "2026-03-10", "2026-03-11"},
		Labels:         []string{"Mar 9", "Mar 10", "Mar 11"},
		StrengthVolume: []float64{500, 0, 0},
		CardioMinutes:  []float64{30, 0, 20},
		CardioDistance: []float64{5, 0, 0},
		CoreOutput:     []float64{0, 60, 0},
		Distribution:   stats.Distribution{Strength: 1, Cardio: 2, Core: 1},
		TotalSessions:  4,
		TotalVolume:    500,
		Streak:         4,
		// (500 + 5 + 60 + 20) / (1500 + 1500 + 5 + 180 + 40)
		Discipline: 18,
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("ComputeHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeHistoryEmpty(t *testing.T) {
	got := stats.ComputeHistory(model.WorkoutData{}, nil, time.Now())
	if diff := cmp.Diff(stats.History{}, got); diff != "" {
		t.Errorf("ComputeHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeHistoryStrengthSeriesIgnoresReference(t *testing.T) {
	now := time.Date(2026, 3, 11, 20, 0, 0, 0, time.UTC)
	data := model.WorkoutData{
		"2026-03-11": {Exercises: []model.Exercise{{
			Name: "Pull-up",
			Sets: []model.Set{{Reps: "8", Completed: true}},
		}}},
	}
	got := stats.ComputeHistory(data, bestOf(map[string]float64{"Pull-up": 20}), now)

	// The daily volume counts the missing weight at the previous best; the
	// chart only shows what was lifted.
	if got.TotalVolume != 160 {
		t.Errorf("TotalVolume = %v, want 160", got.TotalVolume)
	}
	if diff := cmp.Diff([]float64{0}, got.StrengthVolume); diff != "" {
		t.Errorf("StrengthVolume mismatch (-want +got):\n%s", diff)
	}
	if got.Distribution.Strength != 1 {
		t.Errorf("Distribution.Strength = %d, want 1", got.Distribution.Strength)
	}
}

func TestComputeHistoryDisciplineClampsOverflow(t *testing.T) {
	now := time.Date(2026, 3, 11, 20, 0, 0, 0, time.UTC)
	data := model.WorkoutData{
		"2026-03-11": {Exercises: []model.Exercise{{
			Name: "Squat",
			Sets: []model.Set{{Reps: model.Num(1e300), Weight: model.Num(1e300), Completed: true}},
		}}},
	}
	got := stats.ComputeHistory(data, nil, now)
	if got.Discipline != math.MaxInt32 {
		t.Errorf("Discipline = %d, want %d", got.Discipline, math.MaxInt32)
	}
}
