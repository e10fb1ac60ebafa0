package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileHandler writes human-readable logs to stdout and a rotating file.
// Used in dev mode where Cloud Logging JSON is just noise.
func NewFileHandler(level slog.Level) slog.Handler {
	w := io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	})
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}
