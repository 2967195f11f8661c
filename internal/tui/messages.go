package tui

import "github.com/hellasleeper108/bigO/internal/sweep"

// Message types for Bubble Tea update loop.

// sampleMsg carries one timed measurement for an algorithm's row.
type sampleMsg struct {
	Algorithm string
	Point     sweep.SamplePoint
}

// seriesDoneMsg marks one algorithm's sweep as finalized.
type seriesDoneMsg struct {
	Algorithm string
	Outcome   sweep.Outcome
}

// runDoneMsg signals that the whole run reached a terminal state.
type runDoneMsg struct {
	Ranking []sweep.RankingEntry
}
