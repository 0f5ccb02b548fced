package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
)

var (
	logWeight   string
	logReps     string
	logDistance string
	logTime     string
	logHold     string
	logSet      int
	logPending  bool
	logDate     string
)

var logCmd = &cobra.Command{
	Use:   "log <exercise>",
	Short: "Record a set of an exercise",
	Long: `Record a completed set, or update an earlier one with --set.

Times accept minutes ("30") or clock notation ("29:45"). Sets logged
without a weight count at the configured bodyweight when comparing
progress.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLog,
}

func init() {
	f := logCmd.Flags()
	f.StringVar(&logWeight, "weight", "", "Weight in kg")
	f.StringVar(&logReps, "reps", "", "Repetitions")
	f.StringVar(&logDistance, "distance", "", "Distance in km")
	f.StringVar(&logTime, "time", "", "Time in minutes or m:ss")
	f.StringVar(&logHold, "hold", "", "Hold time in seconds or m:ss")
	f.IntVar(&logSet, "set", 0, "Update set number N instead of adding one")
	f.BoolVar(&logPending, "pending", false, "Record the set without marking it completed")
	f.StringVar(&logDate, "date", "", "Day to log on (YYYY-MM-DD, default today)")
}

func runLog(cmd *cobra.Command, args []string) error {
	name := exerciseName(args)
	day, err := resolveDay(logDate)
	if err != nil {
		return err
	}

	var (
		logged model.Set
		index  int
		ex     model.Exercise
	)
	err = updateDay(day, func(l *model.Log) error {
		found, ok := l.Find(name)
		if !ok {
			return usageError("no exercise %q on %s, add it first with: twt add %q", name, l.Date, name)
		}

		set, i, err := applySetFlags(cmd, found.Sets)
		if err != nil {
			return err
		}
		if found.Type == model.TypeCardio && found.CardioMode != model.CardioCircuit {
			set.RecomputePace()
		}
		if i == len(found.Sets) {
			found.Sets = append(found.Sets, set)
		} else {
			found.Sets[i] = set
		}
		logged, index, ex = set, i, *found
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set %d/%d: %s\n",
		ex.Name, index+1, ex.SetsTarget(), describeSet(ex, logged))
	return nil
}

// applySetFlags returns the set described by the flags and its index in
// sets. A new set has index len(sets); --set N starts from the existing set
// and only overrides the flags given.
func applySetFlags(cmd *cobra.Command, sets []model.Set) (model.Set, int, error) {
	var s model.Set
	i := len(sets)
	if logSet != 0 {
		if logSet < 1 || logSet > len(sets) {
			return model.Set{}, 0, usageError("--set %d out of range, %d sets logged", logSet, len(sets))
		}
		i = logSet - 1
		s = sets[i]
	}

	fields := []struct {
		flag  string
		value string
		dst   *model.Value
	}{
		{"weight", logWeight, &s.Weight},
		{"reps", logReps, &s.Reps},
		{"distance", logDistance, &s.Distance},
		{"time", logTime, &s.Time},
		{"hold", logHold, &s.HoldTime},
	}
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.dst = model.Value(f.value)
		}
	}
	if logSet == 0 || cmd.Flags().Changed("pending") {
		s.Completed = !logPending
	}
	return s, i, nil
}
