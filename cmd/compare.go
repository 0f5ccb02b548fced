package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/stats"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/storage"
)

var compareCmd = &cobra.Command{
	Use:   "compare <exercise>",
	Short: "Compare the last two sessions of an exercise",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	name := exerciseName(args)
	data, err := loadAll()
	if err != nil {
		return err
	}

	sessions := storage.LatestSessions(data, name, 2)
	if len(sessions) == 0 {
		return usageError("no completed sets of %q found", name)
	}

	current := stats.SessionSnapshot(sessions[0].Exercise, cfg.BodyweightKg)
	var previous *stats.Snapshot
	previousKey := ""
	if len(sessions) > 1 {
		p := stats.SessionSnapshot(sessions[1].Exercise, cfg.BodyweightKg)
		previous = &p
		previousKey = sessions[1].Key
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s on %s\n", name, sessions[0].Key)
	printSnapshot(out, "Current", current)
	if previous != nil {
		printSnapshot(out, "Previous ("+previousKey+")", *previous)
	}
	printComparison(out, stats.CompareProgress(current, previous))
	return nil
}

func printSnapshot(w io.Writer, label string, s stats.Snapshot) {
	est := "–"
	if s.Max1RM != nil {
		est = formatNumber(*s.Max1RM) + " kg"
	}
	fmt.Fprintf(w, "  %s: volume %s, est. 1RM %s\n", label, formatNumber(s.Volume), est)
}

func printComparison(w io.Writer, c stats.Comparison) {
	if c.VolumeDeltaPercent != nil {
		fmt.Fprintf(w, "  Volume: %+.1f%%\n", *c.VolumeDeltaPercent)
	}
	if c.StrengthDeltaKg != nil {
		fmt.Fprintf(w, "  Strength: %+.1f kg\n", *c.StrengthDeltaKg)
	}
	fmt.Fprintf(w, "  Verdict: %s\n", c.Verdict)
}
