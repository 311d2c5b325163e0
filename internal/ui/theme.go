package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moodline/internal/journal"
)

// Moodline theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconJournal = "📓"
	IconSpark   = "✨"
	IconChart   = "📈"
	IconStreak  = "🔥"
	IconProfile = "👤"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSun     = "☀️"
	IconMoon    = "🌙"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// BandStyle maps a mood band to its style: red ≤4, orange ≤7, green >7.
func BandStyle(b journal.Band) lipgloss.Style {
	switch b {
	case journal.BandLow:
		return Bad
	case journal.BandMid:
		return Warn
	default:
		return Good
	}
}

// MoodText renders a mood value in its band color.
func MoodText(mood int) string {
	return BandStyle(journal.BandFor(float64(mood))).Render(fmt.Sprintf("%d/10", mood))
}

// MeanText renders an average, or a muted empty state when the window
// held no entries.
func MeanText(m journal.Mean) string {
	if !m.Valid {
		return Muted.Render("no data")
	}
	return BandStyle(journal.BandFor(m.Value)).Render(fmt.Sprintf("%.1f", journal.Round1(m.Value)))
}
