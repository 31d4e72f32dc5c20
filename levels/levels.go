// Package levels renders the tier reference table.
package levels

import (
	"strconv"

		"github.com/Rshep3087/happyjar/ledger"
	"github.com/Rshep3087/happyjar/level"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

type Colors struct {
	Primary string
}

type Model struct {
	levels   table.Model
	currency string
}

func New(colors Colors, currency string) Model {
	levels := table.New(
		table.WithColumns([]table.Column{
			{Title: "Tier", Width: 6},
			{Title: "Name", Width: 16},
			{Title: "Value", Width: 10},
			{Title: "Size", Width: 6},
			{Title: "Light", Width: 9},
			{Title: "Dark", Width: 9},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(colors.Primary))

	levels.SetStyles(tableStyle)

	m := Model{levels: levels, currency: currency}
	m.levels.SetRows(Rows(currency))
	return m
}

// Row describes one tier.
type Row struct {
	Tier  int    `json:"tier"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Size  int    `json:"size"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// Describe lists every tier with its value shown in currency.
func Describe(currency string) []Row {
	tiers := level.Tiers()
	out := make([]Row, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, Row{
			Tier:  tier,
			Name:  titleCaser.String(level.Name(tier)),
			Value: ledger.Money(level.DisplayValue(tier), currency).Display(),
			Size:  int(level.VisualSize(tier)),
			Light: level.Hex(level.Color(tier, false)),
			Dark:  level.Hex(level.Color(tier, true)),
		})
	}
	return out
}

// Rows returns the table rows for currency.
func Rows(currency string) []table.Row {
	described := Describe(currency)
	rows := make([]table.Row, 0, len(described))
	for _, r := range described {
		rows = append(rows, table.Row{
			strconv.Itoa(r.Tier),
			r.Name,
			r.Value,
			strconv.Itoa(r.Size),
			r.Light,
			r.Dark,
		})
	}
	return rows
}

func (m *Model) SetFocus(focus bool) {
	if focus {
		m.levels.Focus()
	} else {
		m.levels.Blur()
	}
}

func (m *Model) SetSize(width, height int) {
	m.levels.SetHeight(height)
	m.levels.SetWidth(width)
}

func (m *Model) SetCurrency(currency string) {
	m.currency = currency
	m.levels.SetRows(Rows(currency))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.levels, cmd = m.levels.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.levels.View()
}
