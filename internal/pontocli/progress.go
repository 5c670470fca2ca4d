package pontocli

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phillip-england/ponto/internal/pontoapp"
)

type statusMsg pontoapp.Status

// progressModel shows a spinner and the latest status text of a background
// run until its final status arrives.
type progressModel struct {
	spinner  spinner.Model
	statuses <-chan pontoapp.Status
	text     string
	final    *pontoapp.Status
}

func newProgressModel(statuses <-chan pontoapp.Status) progressModel {
	return progressModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		statuses: statuses,
	}
}

func waitForStatus(statuses <-chan pontoapp.Status) tea.Cmd {
	return func() tea.Msg {
		status, ok := <-statuses
		if !ok {
			return statusMsg{Done: true}
		}
		return statusMsg(status)
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForStatus(m.statuses))
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		if msg.Done {
			final := pontoapp.Status(msg)
			m.final = &final
			return m, tea.Quit
		}
		m.text = msg.Text
		return m, waitForStatus(m.statuses)
	case tea.KeyMsg:
		// The run keeps going; ctrl+c only leaves the view.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.final != nil {
		return ""
	}
	return m.spinner.View() + " " + statusStyle.Render(m.text) + "\n"
}

// runWithProgress renders the progress view for statuses and returns the
// final status. If the view exits early the run is still waited for.
func runWithProgress(app *Context, statuses <-chan pontoapp.Status) pontoapp.Status {
	program := tea.NewProgram(newProgressModel(statuses), tea.WithInput(app.Stdin), tea.WithOutput(app.Stderr))
	out, err := program.Run()
	if err != nil {
		app.Logger.Warn("progress view", "err", err)
		return pontoapp.Wait(statuses)
	}
	if m, ok := out.(progressModel); ok && m.final != nil {
		return *m.final
	}
	return pontoapp.Wait(statuses)
}
