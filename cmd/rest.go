package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/resttimer"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

var restCmd = &cobra.Command{
	Use:   "rest [seconds]",
	Short: "Count down a rest period between sets",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRest,
}

func runRest(cmd *cobra.Command, args []string) error {
	d := cfg.RestDuration()
	if len(args) == 1 {
		secs, err := strconv.Atoi(args[0])
		if err != nil || secs <= 0 {
			return usageError("rest length must be a positive number of seconds, got %q", args[0])
		}
		d = time.Duration(secs) * time.Second
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var timer resttimer.Timer
	timer.Start(d, func() { log.Debugf("rest period of %s elapsed", d) })
	return countdown(ctx, cmd.OutOrStdout(), &timer, time.Second)
}

// countdown redraws the remaining rest time every tick until the timer ends.
// Interrupting ctx cancels the timer.
func countdown(ctx context.Context, w io.Writer, timer *resttimer.Timer, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	draw := func() {
		secs := int64((timer.Remaining() + time.Second - 1) / time.Second)
		fmt.Fprintf(w, "\rRest: %s ", timecalc.FormatClock(secs))
	}
	draw()
	for {
		select {
		case <-ctx.Done():
			timer.Cancel()
			fmt.Fprintln(w, "\rRest canceled.")
			return nil
		case <-timer.Done():
			if err := timer.Wait(ctx); errors.Is(err, resttimer.ErrCanceled) {
				fmt.Fprintln(w, "\rRest canceled.")
				return nil
			}
			fmt.Fprintln(w, "\rRest over!\a  ")
			return nil
		case <-ticker.C:
			draw()
		}
	}
}
