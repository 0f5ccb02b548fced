package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/storage"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start today's workout session",
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	today := timecalc.StartOfDay(now)

	// A session left running on an earlier day is finished first.
	active, activeDay, err := storage.FindActiveSession(cfg.DataDir, now)
	if err != nil {
		return storageError(err)
	}
	if active != nil && !timecalc.SameDay(activeDay, today) {
		fmt.Fprintf(os.Stderr, "Warning: auto-finishing the session of %s\n", active.Date)
		if err := updateDay(activeDay, finishSession); err != nil {
			return err
		}
	}

	resumed := false
	err = updateDay(today, func(l *model.Log) error {
		switch {
		case l.StartTime != nil && l.EndTime == nil:
			return usageError("a session is already running since %s", l.StartTime.Format("15:04"))
		case l.StartTime != nil:
			l.EndTime = nil
			resumed = true
		default:
			started := now
			l.StartTime = &started
		}
		return nil
	})
	if err != nil {
		return err
	}

	if resumed {
		fmt.Fprintf(cmd.OutOrStdout(), "Resumed today's session at %s\n", now.Format("15:04:05"))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Started session at %s\n", now.Format("15:04:05"))
	return nil
}

// finishSession closes a running session at the frozen command time.
func finishSession(l *model.Log) error {
	if l.StartTime == nil || l.EndTime != nil {
		return usageError("no active session to finish")
	}
	end := now
	if end.Before(*l.StartTime) {
		end = *l.StartTime
	}
	l.EndTime = &end
	return nil
}
