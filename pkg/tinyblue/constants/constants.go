// Package constants defines shared constants, types, and configuration values
// used throughout the tinyblue menu engine.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar is the environment variable name for the internal log level.
const LogLevelEnvVar = "TINYBLUE_LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default viewport and navigation settings.
const (
	DefaultRows     = 2   // Lines on a 1602 character LCD
	DefaultColumns  = 16  // Characters per line on a 1602 character LCD
	DefaultRootPath = "/" // Path of the permanent bottom-of-stack screen
)

// Default timing constants.
const (
	DefaultDebounce        = 100 * time.Millisecond // Minimum interval between accepted button triggers
	DefaultTickInterval    = 10 * time.Millisecond  // Main loop event drain interval
	DefaultRefreshInterval = time.Second            // Sensor refresh and redraw interval
)

// Custom character slots uploaded to the display at startup.
const (
	GlyphSlotNone       uint8 = 0 // Cursor for non-clickable items
	GlyphSlotActionable uint8 = 1 // Cursor for clickable items
	GlyphSlotBack       uint8 = 2 // Cursor for back items
)

// BlankCursor is written in the cursor column of unselected rows.
const BlankCursor byte = ' '
