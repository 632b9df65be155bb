package logging

import (
	"log/slog"
	"os"
)

// Setup routes the default slog logger to stdout as JSON. main calls this
// before anything else so even startup failures come out structured.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
