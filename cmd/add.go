package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/stats"
)

var (
	addType string
	addMode string
	addSets int
	addReps string
	addDate string
)

var addCmd = &cobra.Command{
	Use:   "add <exercise>",
	Short: "Add an exercise to a day's plan",
	Long: `Add an exercise with its targets to today's log (or --date).

The rep target is free text such as "8-12", "10" or "AMRAP". For cardio it
is the planned distance in km (or minutes for circuits), for holds the
planned seconds.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addType, "type", string(model.TypeStrength), "Exercise type: strength, cardio, abs")
	addCmd.Flags().StringVar(&addMode, "mode", "", "Cardio mode (distance, circuit) or core mode (reps, hold)")
	addCmd.Flags().IntVar(&addSets, "sets", model.DefaultTargetSets, "Planned number of sets")
	addCmd.Flags().StringVar(&addReps, "reps", "", "Rep target, e.g. 8-12")
	addCmd.Flags().StringVar(&addDate, "date", "", "Day to add to (YYYY-MM-DD, default today)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ex, err := newExercise(exerciseName(args), addType, addMode, addSets, addReps)
	if err != nil {
		return err
	}
	day, err := resolveDay(addDate)
	if err != nil {
		return err
	}

	err = updateDay(day, func(l *model.Log) error {
		if _, exists := l.Find(ex.Name); exists {
			return usageError("%q is already part of %s", ex.Name, l.Date)
		}
		l.Exercises = append(l.Exercises, ex)
		return nil
	})
	if err != nil {
		return err
	}

	target := ex.TargetReps
	if target == "" {
		target = fmt.Sprintf("%d", model.DefaultTargetReps)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %d × %s)\n", ex.Name, ex.Type, ex.SetsTarget(), target)
	return nil
}

// newExercise validates the flags of add and builds the exercise.
func newExercise(name, typ, mode string, sets int, reps string) (model.Exercise, error) {
	if name == "" {
		return model.Exercise{}, usageError("exercise name must not be empty")
	}
	if sets <= 0 {
		return model.Exercise{}, usageError("--sets must be positive, got %d", sets)
	}

	ex := model.Exercise{
		Name:                name,
		Type:                model.ExerciseType(strings.ToLower(typ)),
		TargetSets:          sets,
		TargetReps:          strings.TrimSpace(reps),
		NumericalTargetReps: stats.ParseTargetReps(reps),
		Sets:                []model.Set{},
	}
	mode = strings.ToLower(mode)

	switch ex.Type {
	case model.TypeStrength:
		if mode != "" {
			return model.Exercise{}, usageError("--mode is not used by strength exercises")
		}
	case model.TypeCardio:
		switch model.CardioMode(mode) {
		case "", model.CardioDistance:
			ex.CardioMode = model.CardioDistance
		case model.CardioCircuit:
			ex.CardioMode = model.CardioCircuit
		default:
			return model.Exercise{}, usageError("unknown cardio mode %q (distance, circuit)", mode)
		}
	case model.TypeAbs:
		switch model.CoreMode(mode) {
		case "", model.CoreReps:
			ex.CoreMode = model.CoreReps
		case model.CoreHold:
			ex.CoreMode = model.CoreHold
		default:
			return model.Exercise{}, usageError("unknown core mode %q (reps, hold)", mode)
		}
	default:
		return model.Exercise{}, usageError("unknown exercise type %q (strength, cardio, abs)", typ)
	}
	return ex, nil
}
