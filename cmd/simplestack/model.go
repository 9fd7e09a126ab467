package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/focus"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/header"
)

// focusAnnouncer records accessibility focus requests so the view can show
// which header currently holds focus.
type focusAnnouncer struct {
	last  focus.Handle
	count int
}

func (a *focusAnnouncer) request(h focus.Handle) {
	a.last = h
	a.count++
}

// settleMsg fires when the visual transition of the stack is done.
type settleMsg struct{}

// buttonMsg carries a press from the hardware input device.
type buttonMsg struct {
	button constants.VirtualButton
}

type model struct {
	nav        *simplestack.Navigator
	announcer  *focusAnnouncer
	transition time.Duration

	selected int
	entryID  string
	settling bool
	width    int
}

func newModel(nav *simplestack.Navigator, announcer *focusAnnouncer, transition time.Duration) model {
	m := model{
		nav:        nav,
		announcer:  announcer,
		transition: transition,
		width:      60,
	}
	if top, ok := nav.Engine().Top(); ok {
		m.entryID = top.ID
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h", "shift+tab":
			return m.handleButton(constants.VirtualButtonLeft)
		case "right", "l", "tab":
			return m.handleButton(constants.VirtualButtonRight)
		case "enter", " ":
			return m.handleButton(constants.VirtualButtonA)
		case "esc", "backspace":
			return m.handleButton(constants.VirtualButtonB)
		}
		if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			m.nav.Press(int(k[0] - '1'))
			return m.afterNavigation()
		}
		return m, nil

	case buttonMsg:
		return m.handleButton(msg.button)

	case settleMsg:
		m.settling = false
		m.nav.Settle()
		return m.afterNavigation()
	}

	return m, nil
}

func (m model) handleButton(b constants.VirtualButton) (tea.Model, tea.Cmd) {
	view, err := m.nav.Current()
	if err != nil {
		return m, nil
	}

	switch b {
	case constants.VirtualButtonLeft, constants.VirtualButtonUp:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case constants.VirtualButtonRight, constants.VirtualButtonDown:
		if m.selected < len(view.Actions)-1 {
			m.selected++
		}
		return m, nil
	case constants.VirtualButtonA:
		m.nav.Press(m.selected)
	case constants.VirtualButtonB:
		m.nav.Back()
	case constants.VirtualButtonMenu:
		return m, tea.Quit
	default:
		return m, nil
	}

	return m.afterNavigation()
}

// afterNavigation resets the button selection when the active entry changed
// and schedules the settle tick while a transition is in flight.
func (m model) afterNavigation() (tea.Model, tea.Cmd) {
	if top, ok := m.nav.Engine().Top(); ok && top.ID != m.entryID {
		m.entryID = top.ID
		m.selected = 0
	}

	if m.nav.Engine().InFlight() && !m.settling {
		m.settling = true
		return m, tea.Tick(m.transition, func(time.Time) tea.Msg {
			return settleMsg{}
		})
	}
	return m, nil
}

func (m model) View() string {
	view, err := m.nav.Current()
	if err != nil {
		return dimStyle.Render("navigator not mounted") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader(view))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderButtons(view))
	sb.WriteString("\n\n")
	if view.Body != "" {
		sb.WriteString(bodyStyle.Render(view.Body))
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.renderStatus(view))
	sb.WriteString("\n")
	return sb.String()
}

func (m model) renderHeader(view simplestack.View) string {
	el := view.HeaderElement

	back := ""
	if el.Back != nil {
		back = "‹ " + el.Back.Label
	}

	title := el.Title
	if h, ok := m.nav.Focus().Target(view.Entry.Screen); ok && m.announcer.last == h && !view.InFlight {
		title = focusedStyle.Render("◉ ") + title
	}

	if !view.Header.Custom() {
		line := titleStyle.Render(title)
		if back != "" {
			line = dimStyle.Render(back) + "  " + line
		}
		return line
	}

	theme := el.Theme
	width := max(m.width, lipgloss.Width(back)+lipgloss.Width(title)+4)
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(hexColor(theme.BackgroundColor))).
		Foreground(lipgloss.Color(hexColor(theme.TitleColor))).
		PaddingLeft(theme.Padding.Left/2).
		PaddingRight(theme.Padding.Right/2).
		Width(width)

	inner := width - theme.Padding.Left/2 - theme.Padding.Right/2
	align := lipgloss.Left
	if el.TitleAlign == header.TextAlignCenter {
		align = lipgloss.Center
	}
	centered := lipgloss.PlaceHorizontal(max(inner-lipgloss.Width(back), 0), align, title)

	return style.Render(back + centered)
}

func (m model) renderButtons(view simplestack.View) string {
	buttons := make([]string, 0, len(view.Actions))
	for i, a := range view.Actions {
		label := fmt.Sprintf("%d %s", i+1, a.Label)
		style := outlinedButtonStyle
		if a.Primary {
			style = containedButtonStyle
		}
		if i == m.selected {
			style = style.BorderForeground(lipgloss.Color("5"))
		}
		buttons = append(buttons, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m model) renderStatus(view simplestack.View) string {
	names := make([]string, 0, view.Depth)
	for _, e := range m.nav.Engine().Entries() {
		names = append(names, e.Name)
	}

	status := fmt.Sprintf("stack: %s", strings.Join(names, " › "))
	if view.InFlight {
		status += "  (transitioning)"
	}
	if m.announcer.count > 0 {
		status += fmt.Sprintf("  focus requests: %d", m.announcer.count)
	}
	return statusStyle.Render(status) + "\n" + dimStyle.Render("←/→ select · enter press · esc back · q quit")
}
