package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPurple      = lipgloss.Color("#7D56F4")
	ColorGreen       = lipgloss.Color("#25A065")
	ColorBlue        = lipgloss.Color("#4285F4")
	ColorRed         = lipgloss.Color("#E05252")
	ColorYellow      = lipgloss.Color("#E5C07B")
	ColorGray        = lipgloss.Color("#626262")
	ColorGrayDim     = lipgloss.Color("#404040")
	ColorWhite       = lipgloss.Color("#FFFFFF")
	ColorOffWhite    = lipgloss.Color("#D0D0D0")
	ColorSelectionBg = lipgloss.Color("#2D3B4D")
	ColorCyan        = lipgloss.Color("#56B6C2")
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)
)

// Goal card styles
var (
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelectionBg)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	NextStepStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	PercentStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	CardIndent = "  "
)

// Milestone styles
var (
	ReachedStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow)

	LockedStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ActionEnabledStyle = lipgloss.NewStyle().
				Foreground(ColorBlue)

	ActionLockedStyle = lipgloss.NewStyle().
				Foreground(ColorGrayDim)

	NotFoundStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)
)

// Milestone icons
const (
	IconReached = "★"
	IconActive  = "◐"
	IconLocked  = "⊘"
	IconCursor  = "›"
)
