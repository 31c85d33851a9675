package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/phase"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the lipgloss style for a derived phase status.
func StatusStyle(s phase.Status) lipgloss.Style {
	switch s {
	case phase.StatusCompleted:
		return StyleGreen
	case phase.StatusCurrent:
		return StyleBlue
	case phase.StatusBlocked:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status marker such as "● BLOCKED".
func StatusIndicator(s phase.Status) string {
	switch s {
	case phase.StatusCompleted:
		return StyleGreen.Render("✓ DONE")
	case phase.StatusCurrent:
		return StyleBlue.Render("▶ CURRENT")
	case phase.StatusBlocked:
		return StyleRed.Render("● BLOCKED")
	default:
		return StyleDim.Render("○ UPCOMING")
	}
}

// SeverityStyle returns the style for a punch item severity.
func SeverityStyle(s domain.PunchSeverity) lipgloss.Style {
	switch s {
	case domain.SeverityCritical:
		return StyleRed
	case domain.SeverityMajor:
		return StyleYellow
	default:
		return StyleDim
	}
}

// DeliveryStyle returns the style for a delivery status.
func DeliveryStyle(s domain.DeliveryStatus) lipgloss.Style {
	switch s {
	case domain.DeliveryDelivered:
		return StyleGreen
	case domain.DeliveryDelayed:
		return StyleRed
	case domain.DeliveryInTransit:
		return StyleYellow
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
