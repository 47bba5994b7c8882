// Package tinyblue provides menu navigation for small character displays
// such as the 16x2 HD44780 LCDs found on microcontroller and single-board
// computer projects.
//
// A menu is a set of Screens registered by path on a Navigator. Each screen
// holds a fixed list of Items the user scrolls through with one button and
// activates with another. The Navigator keeps a stack of open screens and
// draws the visible window of the top one through a Display.
//
//	display := hd44780.New(bus, 0x27, 2, 16)
//	nav, _ := tinyblue.New(display, tinyblue.Options{Rows: 2, Columns: 16})
//
//	about := tinyblue.MustScreen(tinyblue.NewBackItem("Back"), tinyblue.NewItem("v1.0"))
//	nav.Register("/about", about)
//	nav.Register("/", tinyblue.MustScreen(
//	    tinyblue.NewActionItem("About", func() { nav.Open("/about") }),
//	))
//
// Button handlers post to an EventQueue and a Loop applies them, so no
// navigation state is touched from interrupt context.
package tinyblue

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/constants"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/internal"
)

func init() {
	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		internal.SetInternalLogLevel(internal.ParseLevel(level))
	}
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log line is written to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the minimum level for navigation diagnostics.
// Can also be set via the TINYBLUE_LOG_LEVEL environment variable.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}
