package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/stats"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the month as a workout calendar",
	Args:  cobra.NoArgs,
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month to show (YYYY-MM, default current)")
}

var statusSymbols = map[stats.DayStatus]string{
	stats.StatusCompleteGood:   "●",
	stats.StatusCompleteMedium: "◐",
	stats.StatusCompleteLow:    "◔",
	stats.StatusCompleteNone:   "○",
	stats.StatusFuture:         " ",
	stats.StatusEmpty:          "□",
	stats.StatusRest:           "z",
	stats.StatusAbsent:         "✗",
}

func runCalendar(cmd *cobra.Command, args []string) error {
	year, month := now.Year(), now.Month()
	if calendarMonth != "" {
		t, err := time.ParseInLocation("2006-01", strings.TrimSpace(calendarMonth), now.Location())
		if err != nil {
			return usageError("invalid --month %q, want YYYY-MM", calendarMonth)
		}
		year, month = t.Year(), t.Month()
	}

	data, err := loadAll()
	if err != nil {
		return err
	}
	days := stats.ClassifyMonth(year, month, data, now, cfg.RestWeekday())
	printCalendar(cmd.OutOrStdout(), year, month, days)
	return nil
}

// printCalendar draws a Monday-first month grid with one symbol per day.
func printCalendar(w io.Writer, year int, month time.Month, days []stats.CalendarDay) {
	fmt.Fprintf(w, "%s %d\n", month, year)
	fmt.Fprintln(w, " Mo  Tu  We  Th  Fr  Sa  Su")

	var b strings.Builder
	if len(days) > 0 {
		offset := (int(days[0].Date.Weekday()) + 6) % 7
		b.WriteString(strings.Repeat("     ", offset))
	}
	missed := 0
	for _, d := range days {
		if d.Status.Penalized() {
			missed++
		}
		fmt.Fprintf(&b, "%2d%s  ", d.Date.Day(), statusSymbols[d.Status])
		if d.Date.Weekday() == time.Sunday {
			fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
			b.Reset()
		}
	}
	if b.Len() > 0 {
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "● ≥80%  ◐ ≥50%  ◔ started  ○ planned  □ today  z rest  ✗ missed")
	fmt.Fprintf(w, "Missed days: %d\n", missed)
}
