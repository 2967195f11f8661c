package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hellasleeper108/bigO/internal/sweep"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		if p, ok := pm.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd

	case sampleMsg:
		if r := m.row(msg.Algorithm); r != nil {
			r.Status = Measuring
			r.Latest = msg.Point
			r.Samples++
		}
		m.doneSteps++
		cmd := m.progressCmd()
		return m, tea.Batch(m.listenForEvents(), cmd)

	case seriesDoneMsg:
		if r := m.row(msg.Algorithm); r != nil {
			r.Status = statusForOutcome(msg.Outcome)
			r.Detail = msg.Outcome.Detail
		}
		m.advance()
		return m, m.listenForEvents()

	case runDoneMsg:
		m.ranking = msg.Ranking
		m.finished = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if !m.finished && m.abort != nil {
			m.abort()
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Abort):
		if m.finished {
			// Run already over; treat as quit.
			m.quitting = true
			return m, tea.Quit
		}
		if m.abort != nil && !m.aborting {
			m.aborting = true
			m.abort()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil
	}
	return m, nil
}

// progressCmd animates the bar toward the current step fraction. Pointer
// receiver: progress.SetPercent stores the target on the model it is called
// on, and the caller returns m, so the target must land on that same m.
func (m *Model) progressCmd() tea.Cmd {
	if m.totalSteps <= 0 {
		return nil
	}
	pct := float64(m.doneSteps) / float64(m.totalSteps)
	if pct > 1 {
		pct = 1
	}
	return m.progress.SetPercent(pct)
}

func statusForOutcome(o sweep.Outcome) Status {
	switch o.Kind {
	case sweep.OutcomeCompleted:
		return Done
	case sweep.OutcomePolicyDenied:
		return Denied
	case sweep.OutcomeExecutionFailed:
		return Failed
	case sweep.OutcomeCancelled:
		return Cancelled
	default:
		return Pending
	}
}
