package output

import (
	"fmt"
	"strings"
)

// PercentBar renders a visual progress bar for a 0-100 percentage.
// Example: "████████░░ 80%"
func PercentBar(pct float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((pct / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case pct >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case pct >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f%%", pct)))
}

// Streak renders a streak count with a flame for active streaks.
func Streak(days int) string {
	if days <= 0 {
		return StyleMuted.Render("0 days")
	}
	label := fmt.Sprintf("🔥 %d day", days)
	if days != 1 {
		label += "s"
	}
	return StyleSuccess.Render(label)
}

// TrendArrow returns a styled trend indicator for a delta value.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
func TrendArrow(delta float64) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	if delta > 0 {
		return StyleSuccess.Render(fmt.Sprintf("▲ +%.0f%%", delta))
	}
	return StyleError.Render(fmt.Sprintf("▼ %.0f%%", delta))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
