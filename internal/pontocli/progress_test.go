package pontocli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phillip-england/ponto/internal/pontoapp"
)

func TestProgressModelFollowsStatuses(t *testing.T) {
	statuses := make(chan pontoapp.Status, 2)
	m := newProgressModel(statuses)

	next, cmd := m.Update(statusMsg{Text: "A ler o ficheiro exportado..."})
	m = next.(progressModel)
	assert.Equal(t, "A ler o ficheiro exportado...", m.text)
	assert.Contains(t, m.View(), "A ler o ficheiro exportado...")
	require.NotNil(t, cmd)

	statuses <- pontoapp.Status{Text: "A gerar o relatório... Por favor aguarde."}
	msg := cmd()
	assert.Equal(t, statusMsg{Text: "A gerar o relatório... Por favor aguarde."}, msg)

	final := pontoapp.Status{Done: true, Result: pontoapp.Result{Files: []string{"r.xlsx"}}}
	next, cmd = m.Update(statusMsg(final))
	m = next.(progressModel)
	require.NotNil(t, m.final)
	assert.Equal(t, []string{"r.xlsx"}, m.final.Result.Files)
	assert.Empty(t, m.View())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestProgressModelClosedChannel(t *testing.T) {
	statuses := make(chan pontoapp.Status)
	close(statuses)
	assert.Equal(t, statusMsg{Done: true}, waitForStatus(statuses)())
}

func TestProgressModelCtrlCLeavesView(t *testing.T) {
	m := newProgressModel(make(chan pontoapp.Status))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, requireInteger(" 510 "))
	assert.Error(t, requireInteger("8h30"))
	assert.NoError(t, requireText("export.csv"))
	assert.Error(t, requireText("  "))
}

func TestNewReportFormBindsInput(t *testing.T) {
	in := pontoapp.Input{Kind: "full", TargetMinutes: "510", ToleranceMinutes: "15"}
	assert.NotNil(t, newReportForm(&in))
}
