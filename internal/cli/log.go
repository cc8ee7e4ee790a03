package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/benoitkugler/gridtracks/logger"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// redirectLibraryLogs sends the output of the library loggers to [l]:
// warnings at warn level, progress at debug level.
// The returned function restores the previous outputs.
func redirectLibraryLogs(l *log.Logger) (restore func()) {
	previousWarning, previousProgress := logger.WarningLogger.Writer(), logger.ProgressLogger.Writer()
	previousFlags := logger.ProgressLogger.Flags()

	logger.WarningLogger.SetOutput(l.StandardLog(log.StandardLogOptions{ForceLevel: log.WarnLevel}).Writer())
	logger.ProgressLogger.SetOutput(l.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel}).Writer())
	logger.ProgressLogger.SetFlags(0) // l already reports the time

	return func() {
		logger.WarningLogger.SetOutput(previousWarning)
		logger.ProgressLogger.SetOutput(previousProgress)
		logger.ProgressLogger.SetFlags(previousFlags)
	}
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
