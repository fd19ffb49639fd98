package outwriter

import (
	"os"

	"github.com/huangsam/scorecard/internal/contract"
	"golang.org/x/term"
)

// Bounds of free-text columns in table output.
const (
	defaultTermWidth = 80
	tableChrome      = 20 // borders, separators and padding
	minTextWidth     = 15
	maxTextWidth     = 70
)

// terminalWidth returns the configured width, else the width of stdout, else 80.
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}

// GetMaxTextWidth returns how wide metric names and comments may be in table output,
// given the width taken by the fixed columns around them.
func GetMaxTextWidth(cfg *contract.Config, fixedWidth int) int {
	return min(max(terminalWidth(cfg)-fixedWidth-tableChrome, minTextWidth), maxTextWidth)
}
