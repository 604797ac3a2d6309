// Package progress renders the progress of a background task on the
// terminal, as a bubbletea progress bar or as plain carriage-return updates.
package progress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ecourts-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// DefaultInterval is how often the task is polled.
const DefaultInterval = 100 * time.Millisecond

// ErrInterrupted is returned when the user quits before the task finishes.
// The task itself keeps running.
var ErrInterrupted = errors.New("progress: interrupted")

// TaskSource returns task snapshots by id.
type TaskSource interface {
	Get(id string) (domain.Task, error)
}

type tickMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is a bubbletea model that polls one task until it finishes.
type Model struct {
	tasks       TaskSource
	id          string
	label       string
	interval    time.Duration
	bar         progress.Model
	quit        key.Binding
	styles      *styles.Styles
	task        domain.Task
	err         error
	interrupted bool
}

// NewModel creates a model for the task with id.
func NewModel(tasks TaskSource, id, label string) Model {
	s := styles.DefaultStyles()
	return Model{
		tasks:    tasks,
		id:       id,
		label:    label,
		interval: DefaultInterval,
		bar: progress.New(
			progress.WithSolidFill(string(s.Palette().Accent)),
			progress.WithWidth(40),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "stop waiting"),
		),
		styles: s,
	}
}

// Init starts polling.
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles ticks and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			m.interrupted = true
			return m, tea.Quit
		}
	case tickMsg:
		task, err := m.tasks.Get(m.id)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.task = task
		if task.Status.IsTerminal() {
			return m, tea.Quit
		}
		return m, tick(m.interval)
	}
	return m, nil
}

// View renders the label, bar and status.
func (m Model) View() string {
	status := m.styles.Muted.Render(string(m.status()))
	return fmt.Sprintf("%s %s %s\n", m.styles.Title.Render(m.label), m.bar.ViewAs(float64(m.task.Progress)/100), status)
}

func (m Model) status() domain.TaskStatus {
	if m.task.Status == "" {
		return domain.TaskPending
	}
	return m.task.Status
}

// Task returns the last snapshot seen.
func (m Model) Task() domain.Task {
	return m.task
}

// Run shows a progress bar on out until the task finishes or the user quits.
func Run(ctx context.Context, tasks TaskSource, id, label string, out io.Writer) (domain.Task, error) {
	p := tea.NewProgram(NewModel(tasks, id, label), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return domain.Task{}, fmt.Errorf("progress: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return domain.Task{}, fmt.Errorf("progress: unexpected model %T", final)
	}
	if m.err != nil {
		return domain.Task{}, m.err
	}
	if m.interrupted {
		return m.task, ErrInterrupted
	}
	return m.task, nil
}

// Plain writes "\r<label> NN%" updates to w until the task finishes or ctx
// ends. It is used when out is not a terminal.
func Plain(ctx context.Context, tasks TaskSource, id, label string, w io.Writer, interval time.Duration) (domain.Task, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := -1
	for {
		task, err := tasks.Get(id)
		if err != nil {
			return domain.Task{}, err
		}
		if task.Progress != last {
			fmt.Fprintf(w, "\r%s %3d%%", label, task.Progress)
			last = task.Progress
		}
		if task.Status.IsTerminal() {
			fmt.Fprintln(w)
			return task, nil
		}

		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return task, ctx.Err()
		case <-ticker.C:
		}
	}
}
