package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/config"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/logging"
)

var (
	cfgFile string
	v       = config.New()
	cfg     config.Config
	logFile io.Closer

	// now is frozen once per command so every statistic sees the same instant.
	now     time.Time
	nowFunc = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "twt",
	Short: "Trivial Workout Tracker – a minimal CLI workout log",
	Long: `twt is a single-binary, file-based command-line workout log.
All data is stored as human-readable JSON files in ~/.twt/.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// exitError carries the process exit status of a failed command:
// 1 for usage errors, 2 for storage errors.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: 1, err: fmt.Errorf(format, args...)}
}

func storageError(err error) error {
	return &exitError{code: 2, err: err}
}

// exitCode maps an error returned by a command to its exit status.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

// Execute is the entry point called from main.
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// execute runs the root command and releases the log file whether or not
// the command succeeded.
func execute() error {
	err := rootCmd.Execute()
	closeLog()
	return err
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ~/.twt/config.yaml)")
	flags.String("data-dir", "", "Directory holding the day files")
	flags.String("log-level", "", "Diagnostics level: trace, debug, info, warn, error")
	_ = v.BindPFlag("data_dir", flags.Lookup("data-dir"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(restCmd)
	rootCmd.AddCommand(exportCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	now = nowFunc()

	path := cfgFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	c, err := config.Load(v, path)
	if err != nil {
		return err
	}
	cfg = c

	logFile = logging.Setup(logging.SetupParams{
		LogFileName:   cfg.Log.File,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.WithFields(log.Fields{
		"command":  cmd.Name(),
		"data_dir": cfg.DataDir,
		"config":   path,
	}).Debug("configuration loaded")
	return nil
}

func closeLog() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "closing log file:", err)
	}
	logFile = nil
}
