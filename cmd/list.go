package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/storage"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

var (
	listToday bool
	listWeek  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged exercises and sets",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listToday, "today", false, "Show today's log")
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show this week's logs")
}

func runList(cmd *cobra.Command, args []string) error {
	var from, to time.Time
	switch {
	case listWeek:
		from, to = timecalc.WeekRange(now)
	default:
		// Default to today (covers --today and the bare command).
		from = timecalc.StartOfDay(now)
		to = timecalc.EndOfDay(now)
	}

	week, err := storage.LoadRange(cfg.DataDir, from, to)
	if err != nil {
		return storageError(err)
	}
	// Scores need the earlier bests, which may lie outside the range.
	all, err := loadAll()
	if err != nil {
		return err
	}

	if listWeek {
		fmt.Fprintf(cmd.OutOrStdout(), "Week %s\n", timecalc.ISOWeekLabel(from))
	}
	printList(cmd.OutOrStdout(), week, all)
	return nil
}

// printList prints the logs of data day by day with their score.
func printList(w io.Writer, data, all model.WorkoutData) {
	if len(data) == 0 {
		fmt.Fprintln(w, "No workouts found.")
		return
	}

	for _, key := range data.SortedKeys() {
		l := data[key]
		day, err := timecalc.ParseDateKey(key, now.Location())
		if err != nil {
			continue
		}
		daily := dailyFor(all, day)
		fmt.Fprintf(w, "%s  %s  score %d%%  %s\n", key, day.Format("Mon"), daily.Score, daily.Duration)

		for _, ex := range l.Exercises {
			completed := 0
			for _, s := range ex.Sets {
				if s.Completed {
					completed++
				}
			}
			fmt.Fprintf(w, "  %s [%s] %d/%d sets\n", ex.Name, ex.Type, completed, ex.SetsTarget())
			for i, s := range ex.Sets {
				fmt.Fprintf(w, "    %d. %s\n", i+1, describeSet(ex, s))
			}
		}
	}
}
