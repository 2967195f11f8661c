package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hellasleeper108/bigO/internal/governor"
	"github.com/hellasleeper108/bigO/internal/sweep"
)

// Status represents per-algorithm lifecycle.
type Status int

const (
	Pending Status = iota
	Measuring
	Done
	Denied
	Failed
	Cancelled
)

// Row is the per-algorithm state rendered in the chart.
type Row struct {
	Name    string
	Status  Status
	Latest  sweep.SamplePoint
	Samples int
	Detail  string
}

// Model is the root Bubble Tea model.
type Model struct {
	rows       []Row
	mode       governor.Mode
	totalSteps int
	doneSteps  int

	spinner  spinner.Model
	progress progress.Model
	ranking  []sweep.RankingEntry

	startedAt   time.Time
	finished    bool
	aborting    bool
	quitting    bool
	helpVisible bool
	width       int
	height      int

	// inbound messages from the engine bridge
	events chan tea.Msg

	// abort requests cooperative cancellation of the running sweep.
	abort func()

	keys keyMap
}

// NewModel constructs a Model with one pending row per algorithm.
func NewModel(algorithms []string, mode governor.Mode, totalSteps int, events chan tea.Msg, abort func()) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	rows := make([]Row, len(algorithms))
	for i, name := range algorithms {
		rows[i] = Row{Name: name, Status: Pending}
	}
	if len(rows) > 0 {
		rows[0].Status = Measuring
	}
	return Model{
		rows:       rows,
		mode:       mode,
		totalSteps: totalSteps,
		spinner:    sp,
		progress:   progress.New(progress.WithDefaultGradient()),
		startedAt:  time.Now(),
		events:     events,
		abort:      abort,
		keys:       newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.listenForEvents(),
		m.spinner.Tick,
	)
}

// listenForEvents returns a Tea command that waits for the next engine event.
func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m *Model) row(name string) *Row {
	for i := range m.rows {
		if m.rows[i].Name == name {
			return &m.rows[i]
		}
	}
	return nil
}

// advance moves the "measuring" marker to the next pending row.
func (m *Model) advance() {
	for i := range m.rows {
		if m.rows[i].Status == Pending {
			m.rows[i].Status = Measuring
			return
		}
	}
}
