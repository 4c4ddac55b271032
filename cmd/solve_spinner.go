package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type solveDoneMsg struct {
	err error
}

type solveSpinnerModel struct {
	spinner spinner.Model
	label   string
	solve   tea.Cmd
	err     error
	done    bool
}

func newSolveSpinnerModel(label string, solve tea.Cmd) solveSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return solveSpinnerModel{
		spinner: s,
		label:   label,
		solve:   solve,
	}
}

func (m solveSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.solve)
}

func (m solveSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case solveDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m solveSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runSolveSpinner animates label on output until solve returns.
func runSolveSpinner(ctx context.Context, output io.Writer, label string, solve func(context.Context) error) error {
	solveCmd := func() tea.Msg {
		return solveDoneMsg{err: solve(ctx)}
	}

	p := tea.NewProgram(
		newSolveSpinnerModel(label, solveCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(solveSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
