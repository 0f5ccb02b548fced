package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/stats"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/storage"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and today's score",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	active, activeDay, err := storage.FindActiveSession(cfg.DataDir, now)
	if err != nil {
		return storageError(err)
	}
	data, err := loadAll()
	if err != nil {
		return err
	}

	if active != nil {
		elapsed := int64(now.Sub(*active.StartTime).Seconds())
		completed, total := active.SetCounts()
		fmt.Fprintln(out, "Running:")
		fmt.Fprintf(out, "  Since: %s\n", active.StartTime.Format("15:04"))
		fmt.Fprintf(out, "  Elapsed: %s\n", timecalc.FormatDurationHHMMSS(elapsed))
		fmt.Fprintf(out, "  Sets: %d/%d completed\n", completed, total)
		printDaily(out, dailyFor(data, activeDay))
		return nil
	}

	fmt.Fprintln(out, "No active session.")
	today := timecalc.StartOfDay(now)
	if data[timecalc.DateKey(today)] == nil {
		fmt.Fprintln(out, "Nothing logged today.")
		return nil
	}
	printDaily(out, dailyFor(data, today))
	return nil
}

// printDaily writes the statistics card of one day.
func printDaily(w io.Writer, d stats.Daily) {
	fmt.Fprintf(w, "  Score: %d%%\n", d.Score)
	fmt.Fprintf(w, "  Volume: %s / %s\n", formatNumber(d.Volume), formatNumber(d.TargetVolume))
	if d.HasStrength {
		fmt.Fprintf(w, "  Strength: %s\n", formatNumber(d.StrengthVol))
	}
	if d.HasCardio {
		fmt.Fprintf(w, "  Cardio output: %s\n", formatNumber(d.CardioVol))
	}
	if d.HasCore {
		fmt.Fprintf(w, "  Core: %s\n", formatNumber(d.AbsVol))
	}
	fmt.Fprintf(w, "  Duration: %s\n", d.Duration)
}

// formatNumber prints at most one decimal and drops a trailing ".0".
func formatNumber(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64)
}
