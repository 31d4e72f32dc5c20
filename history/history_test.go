package history

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Rshep3087/happyjar/jar"
	"github.com/Rshep3087/happyjar/ledger"
	"github.com/Rshep3087/happyjar/search"
	"github.com/Rshep3087/happyjar/visualizer"
	"github.com/carlmjohnson/be"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var testColors = Colors{Primary: "#ff8fab", Muted: "#7f7d78", Text: "#FAFAFA"}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestJar(t *testing.T) *jar.Jar {
	t.Helper()
	clock := time.Date(2025, 3, 7, 9, 30, 0, 0, time.UTC)
	l := ledger.New(ledger.WithClock(func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}))
	j := jar.New(
		jar.WithLedger(l),
		jar.WithScene(visualizer.New(visualizer.DefaultConfig())),
		jar.WithLocation(time.UTC),
	)

	_, err := j.Deposit("Had coffee with Mia", 2)
	be.NilErr(t, err)
	_, err = j.Deposit("long nap", 1)
	be.NilErr(t, err)
	_, err = j.Withdraw("gift for mia", 10)
	be.NilErr(t, err)
	return j
}

func TestNewListsNewestFirst(t *testing.T) {
	m := New(newTestJar(t), testColors, false)
	visible := m.Visible()
	be.Equal(t, 3, len(visible))
	be.Equal(t, "gift for mia", visible[0].Text)
	be.Equal(t, "Had coffee with Mia", visible[2].Text)
	be.False(t, m.Searching())
}

func TestSearch(t *testing.T) {
	m := New(newTestJar(t), testColors, false)
	m.SetSize(80, 20)

	m, _ = m.Update(runes("/"))
	be.True(t, m.Searching())

	m, _ = m.Update(runes("MIA"))
	be.Equal(t, "MIA", m.Query())
	be.Equal(t, 2, len(m.Visible()))
	be.True(t, strings.Contains(m.View(), "2 found"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	be.False(t, m.Searching())
	be.Equal(t, "MIA", m.Query())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	be.Equal(t, "", m.Query())
	be.Equal(t, 3, len(m.Visible()))
}

func TestSearchByDate(t *testing.T) {
	m := New(newTestJar(t), testColors, false)
	m, _ = m.Update(runes("/"))
	m, _ = m.Update(runes("3月7日"))
	be.Equal(t, 3, len(m.Visible()))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	be.False(t, m.Searching())
	be.Equal(t, 3, len(m.Visible()))
}

func TestNoResults(t *testing.T) {
	m := New(newTestJar(t), testColors, false)
	m.SetSize(80, 20)
	m, _ = m.Update(runes("/"))
	m, _ = m.Update(runes("zebra"))

	view := m.View()
	be.True(t, strings.Contains(view, "0 found"))
	be.True(t, strings.Contains(view, "No results"))
}

func TestEmptyState(t *testing.T) {
	j := jar.New(jar.WithScene(visualizer.New(visualizer.DefaultConfig())))
	m := New(j, testColors, false)
	be.True(t, strings.Contains(m.View(), "Nothing saved yet"))
}

func TestDeleteSelected(t *testing.T) {
	j := newTestJar(t)
	m := New(j, testColors, false)
	m.SetSize(80, 20)

	m, cmd := m.Update(runes("x"))
	be.Nonzero(t, cmd)
	be.Equal(t, 2, len(m.Visible()))
	be.Equal(t, 2, len(j.Entries()))
	// deleting the withdrawal restores its amount
	be.Equal(t, 15, j.Balance())
}

func TestNewStylesFallbacks(t *testing.T) {
	s := NewStyles(testColors)
	be.Equal[lipgloss.TerminalColor](t, lipgloss.Color("#ff8fab"), s.Match.GetForeground())
	be.Equal[lipgloss.TerminalColor](t, lipgloss.Color("#ffa500"), s.Withdrawal.GetForeground())

	c := testColors
	c.Match = "#ff6961"
	be.Equal[lipgloss.TerminalColor](t, lipgloss.Color("#ff6961"), NewStyles(c).Match.GetForeground())
}

func TestListLeavesScreenKeysAlone(t *testing.T) {
	m := New(newTestJar(t), testColors, false)
	m.SetSize(80, 20)

	for _, k := range []string{"j", "h", "l", "g", "d"} {
		m, _ = m.Update(runes(k))
		be.Equal(t, 0, m.list.Index())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	be.Equal(t, 1, m.list.Index())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	be.Equal(t, 0, m.list.Index())
}

func TestSlashIsTextWhileSearching(t *testing.T) {
	m := New(newTestJar(t), testColors, false)
	m, _ = m.Update(runes("/"))
	m, _ = m.Update(runes("3/7"))
	be.Equal(t, "3/7", m.Query())
	be.Equal(t, 3, len(m.Visible()))
}

func TestDelegateRender(t *testing.T) {
	m := New(newTestJar(t), testColors, false)
	m.SetSize(80, 20)

	d := delegate{styles: m.Styles, index: search.NewIndex(time.UTC)}
	var buf bytes.Buffer
	d.Render(&buf, m.list, 0, m.list.Items()[2])

	out := buf.String()
	be.True(t, strings.Contains(out, "2025/03/07 10:30"))
	be.True(t, strings.Contains(out, "Had coffee with Mia"))
	be.True(t, strings.Contains(out, "+10"))
}

func TestHighlightKeepsText(t *testing.T) {
	d := delegate{styles: NewStyles(testColors)}
	be.Equal(t, "Had coffee with Mia", stripped(d.highlight("Had coffee with Mia", "mia")))
}

// stripped removes ANSI escape sequences.
func stripped(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc && (r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'):
			esc = false
		case !esc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
