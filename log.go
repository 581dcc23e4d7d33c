package sweet

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for debug logging in this package.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// checkLogger is the default logger of Checked.
var checkLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
