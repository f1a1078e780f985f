package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	runFormFunc = fn
	t.Cleanup(func() { runFormFunc = orig })
}

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI()
	require.NotNil(t, ui)
	assert.NotNil(t, ui.isTerminal)
}

func TestHuhUIRequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}

	var choice string
	err := ui.Select("Version", []string{"7.1", "7.2"}, &choice)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")

	var ok bool
	require.Error(t, ui.Confirm("Sure?", &ok))
}

func TestHuhUIRunsForm(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	called := 0
	stubRunForm(t, func(form *huh.Form) error {
		assert.NotNil(t, form)
		called++
		return nil
	})

	var choice string
	require.NoError(t, ui.Select("Version", []string{"7.1", "7.2"}, &choice))
	var ok bool
	require.NoError(t, ui.Confirm("Sure?", &ok))
	assert.Equal(t, 2, called)
}

func TestHuhUIAbortIsCancelled(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })

	var ok bool
	assert.ErrorIs(t, ui.Confirm("Sure?", &ok), ErrCancelled)
}

func TestHuhUIPropagatesFormErrors(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	boom := errors.New("render failed")
	stubRunForm(t, func(*huh.Form) error { return boom })

	var choice string
	assert.ErrorIs(t, ui.Select("Version", []string{"7.1"}, &choice), boom)
}

func TestInterruptFilter(t *testing.T) {
	assert.Equal(t, tea.QuitMsg{}, interruptFilter(nil, tea.InterruptMsg{}))
	msg := tea.KeyMsg{Type: tea.KeyEnter}
	assert.Equal(t, msg, interruptFilter(nil, msg))
}
