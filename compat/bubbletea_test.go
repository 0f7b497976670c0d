package compat_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quelltext/tuilog/compat"
	"github.com/quelltext/tuilog/pkg/tuilog"
)

func refreshed(t *testing.T, m compat.LogModel) compat.LogModel {
	t.Helper()
	m, cmd := m.Update(compat.RefreshMsg(time.Now()))
	require.NotNil(t, cmd, "refresh must schedule the next tick")
	return m
}

func sized(m compat.LogModel, w, h int) compat.LogModel {
	m, _ = m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m
}

func key(m compat.LogModel, k string) compat.LogModel {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return m
}

func TestLogModelViewShowsEntries(t *testing.T) {
	h := newHandle(t)
	h.Log(time.Now(), tuilog.LevelInfo, "t", "alpha")
	h.Log(time.Now(), tuilog.LevelError, "t", "beta")

	m := sized(compat.NewLogModel(h), 80, 10)
	m = refreshed(t, m)

	view := m.View()
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "beta")
}

func TestLogModelFollowsNewest(t *testing.T) {
	h := newHandle(t)
	for i := 0; i < 20; i++ {
		h.Log(time.Now(), tuilog.LevelInfo, "t", "line-"+strings.Repeat("x", i))
	}

	m := sized(compat.NewLogModel(h), 80, 5)
	m = refreshed(t, m)
	require.True(t, m.Following())

	// Following shows the newest page only.
	view := m.View()
	assert.NotContains(t, view, "line-x\n")
	assert.Contains(t, view, "line-"+strings.Repeat("x", 19))
	assert.Len(t, strings.Split(view, "\n"), 5)
}

func TestLogModelScrollUpStopsFollowing(t *testing.T) {
	h := newHandle(t)
	for i := 0; i < 20; i++ {
		h.Log(time.Now(), tuilog.LevelInfo, "t", "n")
	}

	m := sized(compat.NewLogModel(h), 80, 5)
	m = refreshed(t, m)

	m = key(m, "k")
	assert.False(t, m.Following(), "scrolling up leaves follow mode")

	// Scrolling back to the bottom resumes following.
	m = key(m, "j")
	assert.True(t, m.Following())

	// "G" jumps straight back to following from anywhere.
	m = key(m, "k")
	m = key(m, "k")
	m = key(m, "G")
	assert.True(t, m.Following())
}

func TestLogModelEmptyBuffer(t *testing.T) {
	h := newHandle(t)
	m := sized(compat.NewLogModel(h), 80, 5)
	m = refreshed(t, m)
	assert.Equal(t, "", m.View())
}
