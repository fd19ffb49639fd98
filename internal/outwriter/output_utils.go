package outwriter

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
)

// ErrUnsupportedOutput is returned when a result cannot be rendered in the requested format.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// colorizers returns the green, red and yellow sprinters, or plain ones when colors are off.
func colorizers(useColors bool) (green, red, yellow func(...any) string) {
	if !useColors {
		return fmt.Sprint, fmt.Sprint, fmt.Sprint
	}
	return color.New(color.FgGreen).SprintFunc(),
		color.New(color.FgRed).SprintFunc(),
		color.New(color.FgYellow).SprintFunc()
}

// formatDelta renders a category delta with a direction marker.
func formatDelta(d schema.CategoryDelta, precision int, useColors bool) string {
	green, red, yellow := colorizers(useColors)
	switch d.Kind {
	case schema.Improvement:
		return green(fmt.Sprintf("+%.*f ▲", precision, d.Magnitude))
	case schema.Decline:
		return red(fmt.Sprintf("-%.*f ▼", precision, d.Magnitude))
	default:
		return yellow(fmt.Sprintf("%.*f", precision, 0.0))
	}
}

// formatLabel renders the readiness label of a percentage.
func formatLabel(pct float64, useColors bool) string {
	if useColors {
		return contract.GetColorLabel(pct)
	}
	return schema.GetPlainLabel(pct)
}
