package colors

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// COLOR is a terminal style used for compiler output.
type COLOR struct {
	style lipgloss.Style
}

func newColor(hex string, bold bool) COLOR {
	return COLOR{style: lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(bold)}
}

// Palette
var (
	RED    = newColor("#EF4444", false)
	GREEN  = newColor("#10B981", false)
	YELLOW = newColor("#F59E0B", false)
	BLUE   = newColor("#3B82F6", false)
	PURPLE = newColor("#A855F7", false)
	CYAN   = newColor("#06B6D4", false)
	GREY   = newColor("#6B7280", false)
	ORANGE = newColor("#F97316", false)
	WHITE  = newColor("#F8FAFC", false)

	BOLD_RED    = newColor("#EF4444", true)
	BOLD_GREEN  = newColor("#10B981", true)
	BOLD_YELLOW = newColor("#F59E0B", true)
	BOLD_CYAN   = newColor("#06B6D4", true)
	BOLD_PURPLE = newColor("#A855F7", true)
)

// Color modes accepted by SetMode.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// SetMode selects whether styles emit escape sequences.
// In auto mode the terminal attached to stdout decides.
func SetMode(mode string) error {
	switch mode {
	case ModeAuto, "":
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	case ModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case ModeNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
	return nil
}
