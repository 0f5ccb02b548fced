package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/ptr"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/storage"
)

func writeRaw(t *testing.T, base, rel, content string) string {
	t.Helper()
	path := filepath.Join(base, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDayNotExist(t *testing.T) {
	base := t.TempDir()
	day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	l, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatalf("LoadDay on missing file: %v", err)
	}
	if l != nil {
		t.Errorf("LoadDay = %+v, want nil", l)
	}
}

func TestSaveDayAndLoadDay(t *testing.T) {
	base := t.TempDir()
	day := time.Date(2026, 2, 27, 18, 0, 0, 0, time.UTC)

	want := &model.Log{
		StartTime: ptr.Ref(day),
		Exercises: []model.Exercise{{
			Name:       "Bench Press",
			Type:       model.TypeStrength,
			TargetSets: 3,
			TargetReps: "8-12",
			Sets: []model.Set{
				{Weight: "60", Reps: "10", Completed: true},
				{Weight: "bar", Reps: "12"},
			},
		}},
	}
	if err := storage.SaveDay(base, day, want); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}
	if want.Date != "2026-02-27" {
		t.Errorf("SaveDay set Date = %q, want %q", want.Date, "2026-02-27")
	}
	if _, err := os.Stat(filepath.Join(base, "2026", "02", "27.json")); err != nil {
		t.Errorf("day file missing: %v", err)
	}

	got, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatalf("LoadDay after save: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadDay mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDayCorruptIsBackedUp(t *testing.T) {
	base := t.TempDir()
	day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	path := writeRaw(t, base, "2026/02/27.json", "{bad json")

	_, err := storage.LoadDay(base, day)
	if !errors.Is(err, storage.ErrCorrupt) {
		t.Fatalf("LoadDay error = %v, want ErrCorrupt", err)
	}
	if _, err := os.Stat(path + ".corrupt"); err != nil {
		t.Errorf("expected backup file to exist after corrupt JSON: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected corrupt file to be moved away")
	}
}

func TestUpdateDay(t *testing.T) {
	base := t.TempDir()
	day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)

	addSet := func(l *model.Log) error {
		ex, ok := l.Find("Squat")
		if !ok {
			l.Exercises = append(l.Exercises, model.Exercise{Name: "Squat"})
			ex = &l.Exercises[len(l.Exercises)-1]
		}
		ex.Sets = append(ex.Sets, model.Set{Weight: "100", Reps: "5", Completed: true})
		return nil
	}
	for i := 0; i < 2; i++ {
		if err := storage.UpdateDay(base, day, addSet); err != nil {
			t.Fatalf("UpdateDay: %v", err)
		}
	}

	l, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if len(l.Exercises) != 1 || len(l.Exercises[0].Sets) != 2 {
		t.Fatalf("got %+v, want one exercise with two sets", l.Exercises)
	}

	failing := errors.New("nope")
	err = storage.UpdateDay(base, day, func(l *model.Log) error {
		l.Exercises = nil
		return failing
	})
	if !errors.Is(err, failing) {
		t.Fatalf("UpdateDay error = %v, want %v", err, failing)
	}
	l, err = storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Exercises) != 1 {
		t.Error("failed update must not be saved")
	}
}

func TestLoadAllSkipsCorruptAndForeignFiles(t *testing.T) {
	base := t.TempDir()
	writeRaw(t, base, "2026/02/26.json", `{"date":"2026-02-26","exercises":[]}`)
	writeRaw(t, base, "2026/02/27.json", "{bad json")
	writeRaw(t, base, "2026/02/30.json", `{"exercises":[]}`)
	writeRaw(t, base, "2026/02/28.json.corrupt", "old")
	writeRaw(t, base, "config.yaml", "rest_day: monday\n")

	data, err := storage.LoadAll(base)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if diff := cmp.Diff([]string{"2026-02-26"}, data.SortedKeys()); diff != "" {
		t.Errorf("LoadAll keys mismatch (-want +got):\n%s", diff)
	}
	// Bulk loads leave corrupt files in place.
	if _, err := os.Stat(filepath.Join(base, "2026", "02", "27.json")); err != nil {
		t.Errorf("corrupt file should stay in place: %v", err)
	}
}

func TestLoadAllKeysMatchSavedDays(t *testing.T) {
	base := t.TempDir()
	days := []time.Time{
		time.Date(2025, 12, 31, 23, 30, 0, 0, time.Local),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local),
	}
	for _, day := range days {
		if err := storage.SaveDay(base, day, &model.Log{Exercises: []model.Exercise{}}); err != nil {
			t.Fatalf("SaveDay(%v): %v", day, err)
		}
	}

	data, err := storage.LoadAll(base)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	want := []string{"2025-12-31", "2026-01-01", "2026-03-09"}
	if diff := cmp.Diff(want, data.SortedKeys()); diff != "" {
		t.Errorf("LoadAll keys mismatch (-want +got):\n%s", diff)
	}
	for key, l := range data {
		if l.Date != key {
			t.Errorf("data[%q].Date = %q", key, l.Date)
		}
	}
}

func TestLoadAllMissingBase(t *testing.T) {
	data, err := storage.LoadAll(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("LoadAll = %v, want empty", data)
	}
}

func TestLoadRange(t *testing.T) {
	base := t.TempDir()
	for _, d := range []int{1, 3, 9} {
		day := time.Date(2026, 3, d, 0, 0, 0, 0, time.Local)
		if err := storage.SaveDay(base, day, &model.Log{}); err != nil {
			t.Fatal(err)
		}
	}

	from := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 8, 23, 59, 59, 0, time.Local)
	data, err := storage.LoadRange(base, from, to)
	if err != nil {
		t.Fatalf("LoadRange: %v", err)
	}
	if diff := cmp.Diff([]string{"2026-03-01", "2026-03-03"}, data.SortedKeys()); diff != "" {
		t.Errorf("LoadRange keys mismatch (-want +got):\n%s", diff)
	}
}

func TestFindActiveSession(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 3, 11, 0, 30, 0, 0, time.Local)

	active, _, err := storage.FindActiveSession(base, now)
	if err != nil {
		t.Fatal(err)
	}
	if active != nil {
		t.Fatal("expected no active session on empty storage")
	}

	// Started yesterday evening and still running after midnight.
	yesterday := now.AddDate(0, 0, -1)
	started := &model.Log{StartTime: ptr.Ref(now.Add(-2 * time.Hour))}
	if err := storage.SaveDay(base, yesterday, started); err != nil {
		t.Fatal(err)
	}
	finished := &model.Log{StartTime: ptr.Ref(now), EndTime: ptr.Ref(now)}
	if err := storage.SaveDay(base, now, finished); err != nil {
		t.Fatal(err)
	}

	active, day, err := storage.FindActiveSession(base, now)
	if err != nil {
		t.Fatal(err)
	}
	if active == nil {
		t.Fatal("expected active session, got nil")
	}
	if active.Date != "2026-03-10" {
		t.Errorf("active Date = %q, want %q", active.Date, "2026-03-10")
	}
	if day.Day() != 10 {
		t.Errorf("day = %v, want the 10th", day)
	}
}
