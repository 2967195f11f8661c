package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hellasleeper108/bigO/internal/governor"
	"github.com/hellasleeper108/bigO/internal/report"
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var b strings.Builder
	b.WriteString(renderHeader())
	b.WriteString("\n")

	width := rightViewportMax
	if m.width > 0 && m.width < width {
		width = m.width
	}

	// Elapsed (left) and mode badge (right), aligned to the viewport width.
	elapsed := renderElapsed(m.startedAt)
	mode := modeBadge(m.mode)
	pad := width - lipgloss.Width(elapsed) - lipgloss.Width(mode)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(elapsed)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(mode)
	b.WriteString("\n")

	mCopy := m
	mCopy.progress.Width = width
	b.WriteString(mCopy.progress.View())
	b.WriteString("\n\n")

	b.WriteString(renderRows(m))

	if m.finished && len(m.ranking) > 0 {
		b.WriteString(renderRanking(m))
	}
	if m.aborting && !m.finished {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render("\nAborting at the next step boundary..."))
		b.WriteString("\n")
	}

	if m.helpVisible {
		b.WriteString("\n")
		b.WriteString(renderHelp())
	}
	b.WriteString("\n")
	b.WriteString(renderFooter(m.finished))
	return b.String()
}

func renderHeader() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("Empirical Complexity Visualizer\n")
}

func renderElapsed(startedAt time.Time) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	return fmt.Sprintf("⏱ Elapsed: %s", style.Render(time.Since(startedAt).Truncate(time.Second).String()))
}

func modeBadge(mode governor.Mode) string {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if mode == governor.Chaos {
		return style.Foreground(lipgloss.Color("196")).Render("CHAOS")
	}
	return style.Foreground(lipgloss.Color("46")).Render("TEACHING")
}

// renderRows draws one line per algorithm: status icon, name, latest sample,
// and a live bar scaled against the slowest latest sample on screen.
func renderRows(m Model) string {
	var b strings.Builder

	var maxLatest time.Duration
	for _, r := range m.rows {
		if r.Latest.Elapsed > maxLatest {
			maxLatest = r.Latest.Elapsed
		}
	}

	for _, r := range m.rows {
		icon := renderStatus(m, r.Status)
		if r.Samples == 0 {
			b.WriteString(fmt.Sprintf(" %s %-16s\n", icon, r.Name))
			continue
		}
		bar := liveBar(r.Latest.Elapsed, maxLatest)
		b.WriteString(fmt.Sprintf(" %s %-16s n=%-9d %10s %s\n",
			icon, r.Name, r.Latest.N, report.HumanDuration(r.Latest.Elapsed), bar))
		if r.Detail != "" && r.Status != Done {
			b.WriteString("      ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(r.Detail))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func liveBar(v, maxV time.Duration) string {
	if maxV <= 0 || v <= 0 {
		return ""
	}
	n := int(int64(v) * chartBarWidth / int64(maxV))
	if n < 1 {
		n = 1
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Render(strings.Repeat("█", n))
}

func renderStatus(m Model, s Status) string {
	switch s {
	case Measuring:
		return m.spinner.View()
	case Done:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render("✅")
	case Denied:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render("🛑")
	case Failed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("❌")
	case Cancelled:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("✋")
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("·")
	}
}

func renderRanking(m Model) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("🏁 Ranking"))
	b.WriteString("\n")
	for _, e := range m.ranking {
		if !e.Measured {
			b.WriteString(fmt.Sprintf(" [%d] %-16s %-11s (unmeasured)\n", e.Position, e.Algorithm, e.Label.Notation()))
			continue
		}
		b.WriteString(fmt.Sprintf(" [%d] %-16s %-11s %10s — %s\n",
			e.Position, e.Algorithm, e.Label.Notation(), report.HumanDuration(e.Elapsed), e.Judgment))
	}
	return b.String()
}

func renderFooter(finished bool) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if finished {
		return style.Render("q: quit • h/?: help")
	}
	return style.Render("q: quit • a/esc: abort • h/?: help")
}

func renderHelp() string {
	border := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Foreground(lipgloss.Color("69"))
	content := []string{
		"Help",
		"",
		"h/?: toggle this help",
		"q/ctrl+c: quit (aborts a running sweep)",
		"a/esc: abort the sweep, keep partial results",
	}
	return border.Render(strings.Join(content, "\n"))
}
