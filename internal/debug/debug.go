package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

const defaultLogFile = "/tmp/pantry-debug.log"

var (
	once    sync.Once
	logger  *slog.Logger
	logFile = defaultLogFile
)

// Init sets the file the logger writes to. It must be called before the first GetLogger call to take effect.
func Init(path string) {
	if path != "" {
		logFile = path
	}
}

// GetLogger returns a singleton slog logger instance
func GetLogger() *slog.Logger {
	once.Do(func() {
		var w io.Writer = io.Discard
		f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			w = f
		}
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}))
	})
	return logger
}
