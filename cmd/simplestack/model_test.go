package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/focus"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/router"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/screens"
)

func newTestModel(t *testing.T, platform constants.Platform) model {
	t.Helper()
	announcer := &focusAnnouncer{}
	nav := simplestack.NewNavigator(simplestack.NavigatorOptions{
		Platform: platform,
		Focus:    focus.ForPlatform(platform, announcer.request),
		Bodies:   demoBodies(),
	})
	require.NoError(t, nav.Mount())
	return newModel(nav, announcer, 10*time.Millisecond)
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func topScreen(t *testing.T, m model) router.Entry {
	t.Helper()
	top, ok := m.nav.Engine().Top()
	require.True(t, ok)
	return top
}

func TestModelInitialView(t *testing.T) {
	m := newTestModel(t, constants.PlatformDefault)
	view := m.View()

	assert.Contains(t, view, "Miniapp Screen Title")
	assert.Contains(t, view, "Replace with feed")
	assert.Contains(t, view, "by Gandalf")
	assert.Contains(t, view, "stack: Article")
}

func TestModelNumberKeyRunsActionAndSchedulesSettle(t *testing.T) {
	m := newTestModel(t, constants.PlatformDefault)

	m, cmd := send(t, m, key("1"))
	require.NotNil(t, cmd, "transition in flight needs a settle tick")
	assert.True(t, m.settling)
	assert.True(t, m.nav.Engine().InFlight())
	assert.Equal(t, screens.NewsFeed, topScreen(t, m).Screen)
	assert.Contains(t, m.View(), "(transitioning)")

	m, cmd = send(t, m, settleMsg{})
	assert.Nil(t, cmd)
	assert.False(t, m.settling)
	assert.False(t, m.nav.Engine().InFlight())
	assert.Contains(t, m.View(), "Feed")
}

func TestModelSelectionAndEnter(t *testing.T) {
	m := newTestModel(t, constants.PlatformDefault)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.selected)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.selected)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "update params is not a transition")
	assert.Equal(t, "Babel fish", screens.AuthorName(topScreen(t, m).Params))
	assert.Contains(t, m.View(), "by Babel fish")
}

func TestModelEscGoesBackAndFocusesHeader(t *testing.T) {
	m := newTestModel(t, constants.PlatformIOS)
	m.nav.Engine().Push(screens.NewsFeed, screens.NewsFeedParams{Date: 1}.Params())
	m, _ = send(t, m, settleMsg{})
	assert.Equal(t, screens.NewsFeed, topScreen(t, m).Screen)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m, _ = send(t, m, settleMsg{})

	assert.Equal(t, screens.Article, topScreen(t, m).Screen)
	assert.Equal(t, 1, m.announcer.count)
	assert.Contains(t, m.View(), "◉")
}

func TestModelHardwareButtons(t *testing.T) {
	m := newTestModel(t, constants.PlatformDefault)

	m, _ = send(t, m, buttonMsg{button: constants.VirtualButtonDown})
	assert.Equal(t, 1, m.selected)

	_, cmd := send(t, m, buttonMsg{button: constants.VirtualButtonMenu})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, constants.PlatformDefault)
	_, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
