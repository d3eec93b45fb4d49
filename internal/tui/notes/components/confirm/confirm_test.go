package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyConfirm(t *testing.T) {
	m := New()
	m.Activate("quit", "Quit?")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	assert.False(t, m.Active)
	require.NotNil(t, cmd)
	assert.Equal(t, ConfirmedMsg{Tag: "quit"}, cmd())
}

func TestKeyCancel(t *testing.T) {
	m := New()
	m.Activate("quit", "Quit?")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Active)
	require.NotNil(t, cmd)
	assert.Equal(t, CancelledMsg{Tag: "quit"}, cmd())
}

func TestInactiveIgnoresInput(t *testing.T) {
	m := New()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Nil(t, cmd)

	_, cmd = m.Click(3, 5)
	assert.Nil(t, cmd)
}

func TestClickButtons(t *testing.T) {
	m := New()
	m.Activate("quit", "Quit?")
	yes, no := m.buttonAreas()

	_, cmd := m.Click(yes.x, yes.y)
	require.NotNil(t, cmd)
	assert.Equal(t, ConfirmedMsg{Tag: "quit"}, cmd())

	_, cmd = m.Click(no.x+1, no.y)
	require.NotNil(t, cmd)
	assert.Equal(t, CancelledMsg{Tag: "quit"}, cmd())

	still, cmd := m.Click(0, 0)
	assert.Nil(t, cmd)
	assert.True(t, still.Active)
}

func TestViewContainsPrompt(t *testing.T) {
	m := New()
	assert.Empty(t, m.View())

	m.Activate("quit", "Quit? Notes are not saved.")
	assert.Contains(t, m.View(), "Quit? Notes are not saved.")
}
