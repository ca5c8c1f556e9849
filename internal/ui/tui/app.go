package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/aocinput/internal/domain"
)

type screen int

const (
	screenInput screen = iota
	screenGroup
)

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	payload domain.Payload
	main    list.Model
	detail  list.Model
	group   int // 1-based group shown on screenGroup

	width  int
	height int
	toast  string
}

// Run opens the browser on an already loaded payload.
func Run(deps Deps, p domain.Payload) error {
	m := wrapSafe(newModel(deps, p), deps.Logger)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

func newModel(deps Deps, p domain.Payload) model {
	m := model{
		theme:  DefaultTheme(),
		deps:   deps,
		scr:    screenInput,
		main:   newList(nil, false),
		detail: newList(nil, false),
	}
	m.setPayload(p)
	return m
}

func newList(items []list.Item, showDesc bool) list.Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = showDesc
	if !showDesc {
		d.SetSpacing(0)
	}

	l := list.New(items, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return l
}

func (m *model) setPayload(p domain.Payload) {
	m.payload = p
	if groups := payloadGroups(p); groups != nil {
		m.main = newList(groupItems(groups), true)
	} else {
		m.main = newList(lineItems(payloadLines(p)), false)
	}
	m.scr = screenInput
	m.group = 0
	m.resize()
}

func (m *model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w, h := m.width-8, m.height-10
	m.main.SetSize(w, h)
	m.detail.SetSize(w, h)
}

func (m model) grouped() bool {
	return m.payload.Shape == domain.ShapeGroups || m.payload.Shape == domain.ShapeIntGroups
}

func (m model) active() list.Model {
	if m.scr == screenGroup {
		return m.detail
	}
	return m.main
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case payloadLoadedMsg:
		if msg.err != nil {
			m.toast = "Reload failed: " + userMessage(msg.err)
			return m, nil
		}
		m.setPayload(msg.payload)
		m.toast = "Reloaded"
		return m, nil

	case tea.KeyMsg:
		if m.active().FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenInput {
				return m, tea.Quit
			}
			m.scr = screenInput
			return m, nil

		case "esc", "b":
			if m.scr == screenGroup {
				m.scr = screenInput
				return m, nil
			}

		case "r":
			m.toast = ""
			return m, cmdReload(m.deps)

		case "enter":
			if m.scr == screenInput && m.grouped() {
				it, ok := m.main.SelectedItem().(groupItem)
				if !ok {
					return m, nil
				}
				m.detail = newList(lineItems(it.lines), false)
				m.group = it.n
				m.scr = screenGroup
				m.resize()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.scr == screenGroup {
		m.detail, cmd = m.detail.Update(msg)
	} else {
		m.main, cmd = m.main.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("aocinput · "+m.payload.Name) + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%s · %s · %d", m.payload.Path, m.payload.Shape, m.payload.Len())) + "\n"

	var body, help string
	switch m.scr {
	case screenGroup:
		body = m.theme.Title.Render(fmt.Sprintf("group %d", m.group)) + "\n\n" + m.detail.View()
		help = "↑/↓ navigate • / search • esc/b back • r reload • q back"
	default:
		body = m.main.View()
		if m.grouped() {
			help = "↑/↓ navigate • enter open group • / search • r reload • q quit"
		} else {
			help = "↑/↓ navigate • / search • r reload • q quit"
		}
	}

	out := header + "\n" + m.theme.Card.Render(body) + "\n" + m.theme.Help.Render(help)
	if m.toast != "" {
		out += "\n" + m.theme.Toast.Render(m.toast)
	}
	return wrap.Render(out)
}
