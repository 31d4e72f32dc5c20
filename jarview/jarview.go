// Package jarview is the jar screen: the balance, the deposit and withdraw
// actions and the hearts piling up inside the jar.
package jarview

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Rshep3087/happyjar/jar"
	"github.com/Rshep3087/happyjar/ledger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	springFrequency = 8.0
	springDamping   = 1.0
	defaultFrame    = time.Second / 30
	// rows taken by the header, actions and notes
	chromeHeight = 7
)

const (
	countNote    = "Hearts in the jar count every happiness you have ever saved."
	giveBackNote = "Giving back only lowers the balance."
)

// FrameMsg advances the simulation by one frame.
type FrameMsg time.Time

type Styles struct {
	BalanceStyle  lipgloss.Style
	ActionStyle   lipgloss.Style
	DisabledStyle lipgloss.Style
	KeyStyle      lipgloss.Style
	NoteStyle     lipgloss.Style
	JarStyle      lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		BalanceStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff8fab")),
		ActionStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		DisabledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7d78")),
		KeyStyle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff8fab")),
		NoteStyle:     lipgloss.NewStyle().Faint(true),
		JarStyle:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7D56F4")),
	}
}

// Model is the jar screen.
type Model struct {
	Styles   Styles
	jar      *jar.Jar
	currency string
	frame    time.Duration

	spring   harmonica.Spring
	shown    float64
	velocity float64

	worldW, worldH float64
	width, height  int
	canvas         *Canvas
}

type Option func(*Model)

func WithCurrency(code string) Option {
	return func(m *Model) {
		m.currency = code
	}
}

// WithFrameInterval sets the time between simulation steps.
func WithFrameInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.frame = d
		}
	}
}

// WithJarSize sets the size of the simulated jar in points.
func WithJarSize(width, height float64) Option {
	return func(m *Model) {
		m.worldW, m.worldH = width, height
	}
}

func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

func New(j *jar.Jar, opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		jar:      j,
		currency: ledger.DefaultCurrency,
		frame:    defaultFrame,
		worldW:   300,
		worldH:   400,
		canvas:   newCanvas(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.spring = harmonica.NewSpring(m.frame.Seconds(), springFrequency, springDamping)
	m.shown = float64(j.Balance())

	return m
}

// Tick schedules the next frame.
func (m Model) Tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(FrameMsg); ok {
		m.jar.Step(m.frame.Seconds())
		m.animate()
		return m, m.Tick()
	}
	return m, nil
}

// animate moves the displayed balance one frame towards the real one.
func (m *Model) animate() {
	target := float64(m.jar.Balance())
	m.shown, m.velocity = m.spring.Update(m.shown, m.velocity, target)
	if math.Abs(m.shown-target) < 0.5 && math.Abs(m.velocity) < 0.5 {
		m.shown, m.velocity = target, 0
	}
}

// ShownBalance is the balance as currently animated.
func (m Model) ShownBalance() int {
	return int(math.Round(m.shown))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetCurrency(code string) {
	m.currency = code
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.Styles.BalanceStyle.Render(ledger.Money(m.ShownBalance(), m.currency).Display()))
	b.WriteString("\n\n")
	b.WriteString(m.actionsView())
	b.WriteString("\n")
	b.WriteString(m.jarView())
	b.WriteString("\n")
	b.WriteString(m.Styles.NoteStyle.Render(countNote))
	b.WriteString("\n")
	b.WriteString(m.Styles.NoteStyle.Render(giveBackNote))

	return b.String()
}

func (m Model) actionsView() string {
	deposit := fmt.Sprintf("%s %s", m.Styles.KeyStyle.Render("d"), m.Styles.ActionStyle.Render("deposit (save happiness)"))

	withdrawStyle, keyStyle := m.Styles.ActionStyle, m.Styles.KeyStyle
	if !m.jar.CanWithdraw() {
		withdrawStyle, keyStyle = m.Styles.DisabledStyle, m.Styles.DisabledStyle
	}
	withdraw := fmt.Sprintf("%s %s", keyStyle.Render("w"), withdrawStyle.Render("withdraw (give back)"))

	return lipgloss.JoinHorizontal(lipgloss.Top, deposit, "   ", withdraw)
}

func (m Model) jarView() string {
	frameW, frameH := m.Styles.JarStyle.GetFrameSize()
	cols := m.width - frameW
	rows := m.height - chromeHeight - frameH
	w, h := fit(m.worldW, m.worldH, cols, rows)
	if w == 0 {
		return ""
	}

	pixels := Rasterize(m.jar.Bodies(), m.worldW, m.worldH, w, h)
	return m.Styles.JarStyle.Render(m.canvas.Render(pixels))
}
