// Package history is the searchable list of past deposits and withdrawals.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rshep3087/happyjar/jar"
	"github.com/Rshep3087/happyjar/ledger"
	"github.com/Rshep3087/happyjar/search"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Normal     lipgloss.Style
	Selected   lipgloss.Style
	Date       lipgloss.Style
	Text       lipgloss.Style
	Match      lipgloss.Style
	Deposit    lipgloss.Style
	Withdrawal lipgloss.Style
	Info       lipgloss.Style
	Empty      lipgloss.Style
}

// Colors seeds the styles.
type Colors struct {
	Primary string
	Muted   string
	Text    string
	// Match and Withdrawal default to Primary and orange.
	Match      string
	Withdrawal string
}

func NewStyles(c Colors) Styles {
	if c.Match == "" {
		c.Match = c.Primary
	}
	if c.Withdrawal == "" {
		c.Withdrawal = "#ffa500"
	}

	return Styles{
		Normal: lipgloss.NewStyle().Padding(0, 0, 0, 2),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(c.Primary)).
			Padding(0, 0, 0, 1),
		Date:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		Match:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Match)),
		Deposit:    lipgloss.NewStyle().Bold(true),
		Withdrawal: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Withdrawal)),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)).Padding(2, 2),
	}
}

type keyMap struct {
	search key.Binding
	clear  key.Binding
	accept key.Binding
	delete key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply search"),
		),
		delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
	}
}

// DeletedMsg reports an entry removed from the history.
type DeletedMsg struct {
	Entry ledger.Entry
}

// Model is the history screen.
type Model struct {
	Styles Styles
	jar    *jar.Jar
	keys   keyMap
	list   list.Model
	input  textinput.Model
	query  string
	index  search.Index
	dark   bool
}

func New(j *jar.Jar, colors Colors, dark bool) Model {
	styles := NewStyles(colors)

	index := search.NewIndex(j.Location())
	l := list.New([]list.Item{}, delegate{styles: styles, index: index, dark: dark}, 0, 0)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	// j, h, l, g and d switch screens, so the list only keeps keys no
	// screen uses
	l.KeyMap.CursorDown.SetKeys("down")
	l.KeyMap.PrevPage.SetKeys("left", "pgup", "b", "u")
	l.KeyMap.NextPage.SetKeys("right", "pgdown", "f")
	l.KeyMap.GoToStart.SetKeys("home")
	l.StatusMessageLifetime = 3 * time.Second

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search text or dates (2025/03/07, 3月7日, 3/7)"
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Primary))

	m := Model{
		Styles: styles,
		jar:    j,
		keys:   newKeyMap(),
		list:   l,
		input:  input,
		index:  index,
		dark:   dark,
	}
	m.Refresh()
	return m
}

// Refresh reloads the entries matching the current query.
func (m *Model) Refresh() tea.Cmd {
	entries := m.jar.Search(m.query)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e, query: m.query}
	}
	return m.list.SetItems(items)
}

// SetDark switches the tier colours used for deposit values.
func (m *Model) SetDark(dark bool) {
	m.dark = dark
	m.list.SetDelegate(delegate{styles: m.Styles, index: m.index, dark: dark})
}

// Searching reports whether the search box has focus.
func (m Model) Searching() bool { return m.input.Focused() }

// Query is the active search.
func (m Model) Query() string { return m.query }

// Visible returns the entries currently listed.
func (m Model) Visible() []ledger.Entry {
	items := m.list.Items()
	out := make([]ledger.Entry, 0, len(items))
	for _, it := range items {
		if e, ok := it.(entryItem); ok {
			out = append(out, e.entry)
		}
	}
	return out
}

func (m *Model) SetSize(width, height int) {
	// search box and result line
	m.list.SetSize(width, height-2)
	m.input.Width = width - 4
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if m.Searching() {
		return m.updateSearch(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.search):
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(keyMsg, m.keys.clear):
		if m.query != "" {
			m.input.Reset()
			m.query = ""
			cmd := m.Refresh()
			return m, cmd
		}

	case key.Matches(keyMsg, m.keys.delete):
		return m.deleteSelected()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.accept):
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.clear):
		m.input.Blur()
		m.input.Reset()
		m.query = ""
		cmd := m.Refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if q := strings.TrimSpace(m.input.Value()); q != m.query {
		m.query = q
		refresh := m.Refresh()
		return m, tea.Batch(cmd, refresh)
	}
	return m, cmd
}

func (m Model) deleteSelected() (Model, tea.Cmd) {
	it, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return m, nil
	}

	m.jar.Delete(it.entry.ID)
	refresh := m.Refresh()
	status := m.list.NewStatusMessage(fmt.Sprintf("Deleted %q", it.entry.Text))

	return m, tea.Batch(refresh, status, func() tea.Msg {
		return DeletedMsg{Entry: it.entry}
	})
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.query != "" {
		b.WriteString(m.Styles.Info.Render(fmt.Sprintf("%d found", len(m.list.Items()))))
	}
	b.WriteString("\n")

	switch {
	case len(m.jar.Entries()) == 0:
		b.WriteString(m.Styles.Empty.Render("Nothing saved yet.\nPress d on the jar screen to save some happiness!"))
	case len(m.list.Items()) == 0:
		b.WriteString(m.Styles.Empty.Render(fmt.Sprintf("No results\nNothing matches %q.", m.query)))
	default:
		b.WriteString(m.list.View())
	}

	return b.String()
}
