package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/revenda/internal/dashboard"
	"github.com/jask/revenda/internal/database/repository"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSapphire lipgloss.Color = "#74c7ec"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases
const (
	colorBrand   = colorBlue
	colorAccent  = colorSapphire
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerUserStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	sidebarFocusStyle = sidebarStyle.BorderForeground(colorFocus)

	menuItemStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	menuActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	menuExitStyle   = lipgloss.NewStyle().Foreground(colorError)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = statusBarStyle.Foreground(colorError)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Width(24)

	cardTitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	chipStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	chipActiveStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtext1)
	requiredStyle     = lipgloss.NewStyle().Foreground(colorError)
	sectionLabelStyle = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorOverlay1)
	errorTextStyle    = lipgloss.NewStyle().Foreground(colorError)
	buttonStyle       = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorBrand).
				Bold(true).
				Padding(0, 2)
	buttonIdleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1).
			Padding(0, 2)
)

// toneColor maps a dashboard card tone to the palette.
func toneColor(t dashboard.Tone) lipgloss.Color {
	switch t {
	case dashboard.ToneSuccess:
		return colorSuccess
	case dashboard.ToneWarning:
		return colorWarning
	case dashboard.ToneInfo:
		return colorInfo
	default:
		return colorOverlay0
	}
}

// statusColor is used for status badges in the inventory table and chart.
func statusColor(s repository.Status) lipgloss.Color {
	switch s {
	case repository.StatusAvailable:
		return colorSuccess
	case repository.StatusSold:
		return colorPeach
	case repository.StatusNegotiation:
		return colorWarning
	default:
		return colorSurface2
	}
}
