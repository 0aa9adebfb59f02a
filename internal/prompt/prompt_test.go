// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package prompt

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m tea.Model, msgs ...tea.KeyMsg) (model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m.(model), cmd
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	j     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	k     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}
)

func TestModel_Navigation(t *testing.T) {
	labels := []string{"ENG-1: a", "ENG-2: b", "ENG-3: c"}

	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		cursor int
	}{
		{"start", nil, 0},
		{"down", []tea.KeyMsg{down}, 1},
		{"down clamps", []tea.KeyMsg{down, down, down, down}, 2},
		{"up clamps", []tea.KeyMsg{up}, 0},
		{"vi keys", []tea.KeyMsg{j, j, k}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(newModel("pick", labels), tt.keys...)
			assert.Equal(t, tt.cursor, m.cursor)
			assert.Equal(t, -1, m.chosen)
			assert.Nil(t, cmd)
		})
	}
}

func TestModel_Choose(t *testing.T) {
	m, cmd := press(newModel("pick", []string{"a", "b"}), down, enter)

	assert.Equal(t, 1, m.chosen)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Quit(t *testing.T) {
	m, cmd := press(newModel("pick", []string{"a", "b"}), down, esc)

	assert.Equal(t, -1, m.chosen)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_IgnoresOtherMessages(t *testing.T) {
	m, cmd := newModel("pick", []string{"a"}).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.(model).cursor)
}

func TestModel_View(t *testing.T) {
	m, _ := press(newModel("Which issue did you mean?", []string{"ENG-1: a", "ENG-2: b"}), down)
	view := m.View()

	assert.Contains(t, view, "Which issue did you mean?")
	assert.Contains(t, view, "  ENG-1: a")
	assert.Contains(t, view, "> ENG-2: b")
	assert.Contains(t, view, "enter choose")
}

// TestChoose_Trivial verifies no program runs for zero or one label.
func TestChoose_Trivial(t *testing.T) {
	_, err := Choose(context.Background(), "pick", nil)
	assert.Error(t, err)

	idx, err := Choose(context.Background(), "pick", []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}
