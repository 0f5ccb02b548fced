package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// nopCloser is returned when logging to stderr, which is never closed.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type SetupParams struct {
	LogFileName   string
	LogLevel      string
	LogFormatJSON bool
}

// Setup configures the standard logrus logger. Diagnostics go to stderr
// unless a log file is given; stdout is left to command output. The
// returned closer releases the log file.
func Setup(params SetupParams) io.Closer {
	return Configure(logrus.StandardLogger(), params)
}

// Configure applies params to logger.
func Configure(logger *logrus.Logger, params SetupParams) io.Closer {
	if params.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	logger.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logger.SetOutput(os.Stderr)
		return nopCloser{}
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
	}
	logger.SetOutput(lumberJackLogger)
	logger.Debugf("writing logs to %s", params.LogFileName)
	return lumberJackLogger
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.WarnLevel
	}
}
