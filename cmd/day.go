package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/stats"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/storage"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

// resolveDay returns local midnight of the --date flag value, or of today.
func resolveDay(date string) (time.Time, error) {
	if date == "" {
		return timecalc.StartOfDay(now), nil
	}
	day, err := timecalc.ParseDateKey(date, now.Location())
	if err != nil {
		return time.Time{}, usageError("invalid --date: %w", err)
	}
	return day, nil
}

// updateDay runs storage.UpdateDay, keeping usage errors raised by fn and
// marking everything else as a storage failure.
func updateDay(day time.Time, fn func(l *model.Log) error) error {
	err := storage.UpdateDay(cfg.DataDir, day, fn)
	if err == nil {
		return nil
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return err
	}
	return storageError(err)
}

func loadAll() (model.WorkoutData, error) {
	data, err := storage.LoadAll(cfg.DataDir)
	if err != nil {
		return nil, storageError(err)
	}
	return data, nil
}

// dailyFor computes the statistics of the log stored under day, measuring
// strength targets against the bests recorded before that day. A running
// session is timed up to the frozen command time.
func dailyFor(data model.WorkoutData, day time.Time) stats.Daily {
	key := timecalc.DateKey(day)
	l := data[key]
	end := now
	if l != nil && l.EndTime != nil {
		end = *l.EndTime
	}
	return stats.ComputeDaily(l, storage.BestWeightsBefore(data, key), end)
}

// exerciseName joins the positional arguments so names need no quoting.
func exerciseName(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// describeSet renders one set in the units of its exercise.
func describeSet(ex model.Exercise, s model.Set) string {
	var b strings.Builder
	if s.Completed {
		b.WriteString("✓ ")
	} else {
		b.WriteString("· ")
	}

	switch ex.Type {
	case model.TypeCardio:
		if ex.CardioMode == model.CardioCircuit {
			fmt.Fprintf(&b, "%s min", orDash(s.Time))
			break
		}
		fmt.Fprintf(&b, "%s km in %s min", orDash(s.Distance), orDash(s.Time))
		if s.Pace != "" {
			fmt.Fprintf(&b, " (%s/km)", s.Pace)
		}
	case model.TypeAbs:
		if ex.CoreMode == model.CoreHold {
			fmt.Fprintf(&b, "%s s hold", orDash(s.HoldTime))
			break
		}
		fmt.Fprintf(&b, "%s reps", orDash(s.Reps))
	default:
		if s.Weight.IsSet() {
			fmt.Fprintf(&b, "%s × %s kg", orDash(s.Reps), s.Weight)
		} else {
			fmt.Fprintf(&b, "%s reps", orDash(s.Reps))
		}
	}
	return b.String()
}

func orDash(v model.Value) string {
	if !v.IsSet() {
		return "–"
	}
	return strings.TrimSpace(string(v))
}
