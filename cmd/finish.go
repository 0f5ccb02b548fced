package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/storage"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the running workout session",
	Args:  cobra.NoArgs,
	RunE:  runFinish,
}

func runFinish(cmd *cobra.Command, args []string) error {
	active, activeDay, err := storage.FindActiveSession(cfg.DataDir, now)
	if err != nil {
		return storageError(err)
	}
	if active == nil {
		return usageError("no active session to finish")
	}

	if err := updateDay(activeDay, finishSession); err != nil {
		return err
	}

	data, err := loadAll()
	if err != nil {
		return err
	}
	daily := dailyFor(data, activeDay)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Finished session of %s. Duration: %s\n",
		timecalc.DateKey(activeDay), daily.Duration)
	printDaily(out, daily)
	return nil
}
