package pw

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	slogenv "github.com/cbrewster/slog-env"
)

// logger is the package-level structured logger.
// Set GO_LOG=debug|info|warn|error to control verbosity at runtime.
// Default is WARN so production binaries are silent.
var logger = slog.New(slogenv.NewHandler(
	slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
	slogenv.WithDefaultLevel(slog.LevelWarn),
))

// safeCall runs fn and recovers any panic, returning it as an error.
// Use this in every trampoline to prevent Go panics from crossing the
// CGo boundary (which is undefined behaviour).
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in CGo callback",
				"recover", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()))
			err = fmt.Errorf("panic in callback: %v", r)
		}
	}()
	return fn()
}
