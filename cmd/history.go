package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/stats"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/storage"
)

var historyLast int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show totals, streak and the per-day progress series",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLast, "last", 14, "Number of most recent active days to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	data, err := loadAll()
	if err != nil {
		return err
	}
	h := stats.ComputeHistory(data, storage.BestWeights(data), now)
	printHistory(cmd.OutOrStdout(), h, historyLast)
	return nil
}

func printHistory(w io.Writer, h stats.History, last int) {
	fmt.Fprintf(w, "Sessions:     %d\n", h.TotalSessions)
	fmt.Fprintf(w, "Total volume: %s kg\n", formatNumber(h.TotalVolume))
	fmt.Fprintf(w, "Streak:       %d days\n", h.Streak)
	fmt.Fprintf(w, "Discipline:   %d%%\n", h.Discipline)
	fmt.Fprintf(w, "Focus:        strength %d, cardio %d, core %d\n",
		h.Distribution.Strength, h.Distribution.Cardio, h.Distribution.Core)

	if len(h.Keys) == 0 {
		return
	}
	from := 0
	if last > 0 && len(h.Keys) > last {
		from = len(h.Keys) - last
	}

	fmt.Fprintln(w, "--------------------------------------------------------")
	fmt.Fprintf(w, "%-8s%12s%12s%12s%12s\n", "Day", "Volume", "Cardio min", "Cardio km", "Core")
	for i := from; i < len(h.Keys); i++ {
		fmt.Fprintf(w, "%-8s%12s%12s%12s%12s\n",
			h.Labels[i],
			formatNumber(h.StrengthVolume[i]),
			formatNumber(h.CardioMinutes[i]),
			formatNumber(h.CardioDistance[i]),
			formatNumber(h.CoreOutput[i]),
		)
	}
}
