package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/scrobl/vinyl/internal/duration"
	"github.com/scrobl/vinyl/internal/engine"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a78bfa")).
			Bold(true)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))
	playingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a78bfa")).
			Bold(true)
	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#303030")).
			Foreground(lipgloss.Color("#c0c0c0"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5555"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#585858"))
)

// View renders the whole screen.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	b.WriteString(m.headerView(width))
	b.WriteString("\n\n")

	if m.prompting {
		b.WriteString("Load release\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter to load, esc to cancel"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.trackListView(width))
	b.WriteString("\n")
	b.WriteString(renderProgressBar(m.progress, width, m.engine.IsPlaying()))
	b.WriteString("\n\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space play/pause · n next · p prev · enter select · l load · N notif · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) headerView(width int) string {
	tracks := m.engine.Tracks()
	if len(tracks) == 0 {
		return titleStyle.Render("Vinyl") + mutedStyle.Render("  no album loaded")
	}
	header := fmt.Sprintf("%s – %s", tracks[0].Artist, tracks[0].Album)
	return titleStyle.Render(runewidth.Truncate(header, width, "…"))
}

func (m Model) trackListView(width int) string {
	tracks := m.engine.Tracks()
	if len(tracks) == 0 {
		return mutedStyle.Render("  Press l to load a Discogs release")
	}

	current := m.engine.CurrentIndex()
	playing := m.engine.IsPlaying()

	var b strings.Builder
	for i, t := range tracks {
		marker := "  "
		if i == current && playing {
			marker = "▶ "
		}

		line := fmt.Sprintf("%s%-4s %s", marker, t.Position, t.Title)
		dur := t.DurationDisplay

		// Right-align the duration, truncating the title if needed.
		avail := width - lipgloss.Width(dur) - 2
		if avail < 1 {
			avail = 1
		}
		line = runewidth.Truncate(line, avail, "…")
		pad := avail - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		line = line + strings.Repeat(" ", pad) + "  " + dur

		switch {
		case i == m.cursor:
			line = cursorStyle.Render(line)
		case i == current && playing:
			line = playingStyle.Render(line)
		}

		b.WriteString(line)
		if i < len(tracks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) statusView() string {
	if m.loading {
		return mutedStyle.Render("Loading release...")
	}
	if m.status == "" {
		return ""
	}
	if statusIsError(m.status) {
		return errorStyle.Render(m.status)
	}
	return mutedStyle.Render(m.status)
}

// statusIsError reports whether the status line came from a failed
// operation. errmsg formats every failure as "Failed to ...".
func statusIsError(s string) bool {
	return strings.HasPrefix(s, "Failed")
}

// renderProgressBar renders a block-style progress bar.
// Format: ▶  1:23  ▓▓▓▓▓░░░░░  4:56
func renderProgressBar(p engine.Progress, width int, playing bool) string {
	status := "▶"
	if !playing {
		status = "⏸"
	}

	posStr := duration.FormatSeconds(p.Elapsed)
	durStr := duration.FormatSeconds(p.Total)

	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < 3 {
		return status + "  " + posStr + " / " + durStr
	}

	var ratio float64
	if p.Total > 0 {
		ratio = float64(p.Elapsed) / float64(p.Total)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)

	return status + "  " + posStr + "  " + bar + "  " + durStr
}
