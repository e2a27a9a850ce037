package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Arise theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSwords  = "⚔️"
	IconDungeon = "🏰"
	IconBadge   = "🎖️"
	IconScroll  = "📜"
	IconFlex    = "💪"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// rankStyles follows the hunter tier palette: gray through red.
var rankStyles = map[string]lipgloss.Style{
	"E": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
	"D": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	"C": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	"B": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")),
	"A": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	"S": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
}

// RankText renders a rank letter in its tier color.
func RankText(rank string) string {
	if st, ok := rankStyles[rank]; ok {
		return st.Render(rank + "-Rank")
	}
	return Muted.Render(rank)
}

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

// XPBar renders a textual progress bar like "[####------] 80/200".
func XPBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	capped := value
	if capped > total {
		capped = total
	}
	filled := int(float64(capped) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := Good.Render(strings.Repeat("#", filled)) + Muted.Render(strings.Repeat("-", width-filled))
	return fmt.Sprintf("[%s] %d/%d", bar, value, total)
}

// TaskBox renders a checkbox for a quest task line.
func TaskBox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
