// Package tui is the live presentation adapter: a Bubble Tea view fed by
// engine events while a sweep runs.
package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hellasleeper108/bigO/internal/sweep"
)

// channelReporter bridges engine callbacks onto the Bubble Tea message loop.
// It implements sweep.Reporter.
type channelReporter struct {
	events chan tea.Msg
}

func (r *channelReporter) OnSample(seriesID string, p sweep.SamplePoint) {
	r.events <- sampleMsg{Algorithm: seriesID, Point: p}
}

func (r *channelReporter) OnSeriesFinalized(seriesID string, outcome sweep.Outcome) {
	r.events <- seriesDoneMsg{Algorithm: seriesID, Outcome: outcome}
}

func (r *channelReporter) OnRunFinished(ranking []sweep.RankingEntry) {
	r.events <- runDoneMsg{Ranking: ranking}
}

// Run starts the Bubble Tea program, wiring the orchestrator's event stream
// to messages, and blocks until the user quits. The finished result is
// returned so the caller can render a final report after the screen closes.
func Run(ctx context.Context, orch *sweep.Orchestrator, cfg sweep.RunConfig) (*sweep.Result, error) {
	events := make(chan tea.Msg, channelBufferSize)
	orch.WithReporter(&channelReporter{events: events})

	totalSteps := len(cfg.Algorithms) * len(cfg.Sizes())
	model := NewModel(cfg.Algorithms, cfg.Mode, totalSteps, events, orch.Abort)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Silence external logs during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	type runOutcome struct {
		res *sweep.Result
		err error
	}
	done := make(chan runOutcome, 1)
	go func() {
		res, err := orch.Start(ctx, cfg)
		if err != nil {
			// Validation failures never emit OnRunFinished; unblock the view.
			events <- runDoneMsg{}
		}
		done <- runOutcome{res: res, err: err}
	}()

	if _, err := p.Run(); err != nil {
		return nil, err
	}
	// Quitting the view aborts the engine; wait for it to finalize.
	out := <-done
	return out.res, out.err
}
