package tui

import (
	"fmt"

	"huectl/internal/color"
	"huectl/internal/scheme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SchemeLoader loads a scheme for the preview pane.
type SchemeLoader func(id scheme.Identifier) (*scheme.Scheme, error)

type schemeItem struct {
	id      scheme.Identifier
	current bool
}

func (i schemeItem) Title() string { return i.id.String() }

func (i schemeItem) Description() string {
	if i.current {
		return string(i.id.System) + " · current"
	}
	return string(i.id.System)
}

func (i schemeItem) FilterValue() string { return i.id.String() }

type pickerModel struct {
	list    list.Model
	keys    KeyMap
	load    SchemeLoader
	preview map[scheme.Identifier]string
	choice  string
	width   int
}

func newPickerModel(ids []scheme.Identifier, current string, load SchemeLoader) pickerModel {
	items := make([]list.Item, 0, len(ids))
	selected := 0
	for i, id := range ids {
		isCurrent := id.String() == current
		if isCurrent {
			selected = i
		}
		items = append(items, schemeItem{id: id, current: isCurrent})
	}

	keys := DefaultKeyMap()
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select a scheme"
	l.SetShowStatusBar(true)
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select, keys.Quit}
	}
	l.Select(selected)

	return pickerModel{
		list:    l,
		keys:    keys,
		load:    load,
		preview: make(map[scheme.Identifier]string),
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.width = msg.Width - h
		listWidth := m.width
		if m.load != nil {
			listWidth -= previewWidth
		}
		m.list.SetSize(max(listWidth, 20), msg.Height-v)
	case tea.KeyMsg:
		// While the filter input is focused keys belong to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Select):
			if item, ok := m.list.SelectedItem().(schemeItem); ok {
				m.choice = item.id.String()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			if msg.String() == "esc" && m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.load == nil {
		return docStyle.Render(m.list.View())
	}
	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.previewView()))
}

func (m pickerModel) previewView() string {
	item, ok := m.list.SelectedItem().(schemeItem)
	if !ok {
		return ""
	}
	if cached, ok := m.preview[item.id]; ok {
		return cached
	}
	var body string
	s, err := m.load(item.id)
	if err != nil {
		body = errorStyle.Render(err.Error())
	} else {
		body = color.RenderPalette(s)
	}
	rendered := previewStyle.Render(body)
	// The map is shared between model copies, so the cache survives updates.
	m.preview[item.id] = rendered
	return rendered
}

// PickScheme shows an interactive list of ids and returns the chosen
// scheme, or "" when the user quits without choosing.
func PickScheme(ids []scheme.Identifier, current string, load SchemeLoader) (string, error) {
	if len(ids) == 0 {
		return "", fmt.Errorf("no schemes installed: run \"huectl install\" first")
	}
	p := tea.NewProgram(newPickerModel(ids, current, load), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("scheme picker failed: %w", err)
	}
	return final.(pickerModel).choice, nil
}
