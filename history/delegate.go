package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rshep3087/happyjar/ledger"
	"github.com/Rshep3087/happyjar/level"
	"github.com/Rshep3087/happyjar/search"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DateLayout is how entry times are shown.
const DateLayout = "2006/01/02 15:04"

type entryItem struct {
	entry ledger.Entry
	query string
}

func (i entryItem) Title() string { return i.entry.Text }

func (i entryItem) FilterValue() string { return i.entry.Text }

type delegate struct {
	styles Styles
	index  search.Index
	dark   bool
}

func (d delegate) Height() int { return 2 }

func (d delegate) Spacing() int { return 1 }

func (d delegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}

	e := it.entry
	selected := index == m.Index()

	value := d.valueView(e)
	date := d.styles.Date.Render(e.Timestamp.In(d.index.Location()).Format(DateLayout))
	text := d.highlight(e.Text, it.query)

	row := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, value, "  ", date),
		text,
	)

	if selected {
		row = d.styles.Selected.Render(row)
	} else {
		row = d.styles.Normal.Render(row)
	}

	fmt.Fprint(w, row)
}

func (d delegate) valueView(e ledger.Entry) string {
	if e.IsWithdrawal {
		return d.styles.Withdrawal.Render(fmt.Sprintf("↑ %d", e.Value()))
	}

	c := level.Hex(level.Color(e.Tier, d.dark))
	return d.styles.Deposit.Foreground(lipgloss.Color(c)).Render(fmt.Sprintf("♥ +%d", e.Value()))
}

func (d delegate) highlight(text, query string) string {
	var b strings.Builder
	for _, span := range search.HighlightSpans(text, query) {
		if span.Matched {
			b.WriteString(d.styles.Match.Render(span.Text(text)))
		} else {
			b.WriteString(d.styles.Text.Render(span.Text(text)))
		}
	}
	return b.String()
}
