package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug"`
	// DarkMode selects the dark heart palette
	DarkMode bool `toml:"dark_mode" mapstructure:"dark_mode"`
	// Currency is the ISO 4217 code balances are shown in
	Currency string `toml:"currency" mapstructure:"currency"`
	// Timezone is the IANA zone dates are shown and searched in; empty means local
	Timezone string `toml:"timezone" mapstructure:"timezone"`

	Physics Physics `toml:"physics" mapstructure:"physics"`
	Colors  Colors  `toml:"colors" mapstructure:"colors"`
}

// Physics configures the jar simulation.
type Physics struct {
	// Width and Height are the jar size in points
	Width  float64 `toml:"width" mapstructure:"width"`
	Height float64 `toml:"height" mapstructure:"height"`
	// FPS is how many simulation steps run per second
	FPS            int     `toml:"fps" mapstructure:"fps"`
	PointsPerMeter float64 `toml:"points_per_meter" mapstructure:"points_per_meter"`
	// Gravity in m/s²
	Gravity float64 `toml:"gravity" mapstructure:"gravity"`
	// Seed fixes spawn positions; 0 picks a random seed
	Seed uint64 `toml:"seed" mapstructure:"seed"`
	// Engine picks the simulation: "builtin" or "chipmunk"
	Engine string `toml:"engine" mapstructure:"engine"`
}

// Physics engines.
const (
	EngineBuiltin  = "builtin"
	EngineChipmunk = "chipmunk"
)

// Colors overrides the theme. Values are hex ("#ff0000") or ANSI ("21").
type Colors struct {
	Primary       string `toml:"primary" mapstructure:"primary"`
	Error         string `toml:"error" mapstructure:"error"`
	Success       string `toml:"success" mapstructure:"success"`
	Muted         string `toml:"muted" mapstructure:"muted"`
	Text          string `toml:"text" mapstructure:"text"`
	SecondaryText string `toml:"secondary_text" mapstructure:"secondary_text"`
	Border        string `toml:"border" mapstructure:"border"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Currency: "JPY",
		Physics: Physics{
			Width:          300,
			Height:         400,
			FPS:            30,
			PointsPerMeter: 150,
			Gravity:        9.8,
			Engine:         EngineBuiltin,
		},
		Colors: Colors{
			Primary:       "#ff8fab",
			Error:         "#ff0000",
			Success:       "#22ba46",
			Muted:         "#7f7d78",
			Text:          "#FAFAFA",
			SecondaryText: "#888888",
			Border:        "#7D56F4",
		},
	}
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// FrameInterval is the time between simulation steps.
func (p Physics) FrameInterval() time.Duration {
	fps := p.FPS
	if fps <= 0 {
		fps = Default().Physics.FPS
	}
	return time.Second / time.Duration(fps)
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New(primary string) Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 24},
			{Title: "Value", Width: 20},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(primary))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func orNotSet(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	seed := "random"
	if config.Physics.Seed != 0 {
		seed = strconv.FormatUint(config.Physics.Seed, 10)
	}

	rows := []table.Row{
		{"Debug", strconv.FormatBool(config.Debug), "Enable debug logging"},
		{"Dark Mode", strconv.FormatBool(config.DarkMode), "Use the dark heart palette"},
		{"Currency", orNotSet(config.Currency), "Currency the balance is shown in"},
		{"Timezone", orNotSet(config.Timezone), "Time zone for dates and date search"},
		{"Jar Size", formatFloat(config.Physics.Width) + "x" + formatFloat(config.Physics.Height), "Jar width and height in points"},
		{"Frame Rate", strconv.Itoa(config.Physics.FPS), "Simulation steps per second"},
		{"Points per Meter", formatFloat(config.Physics.PointsPerMeter), "Scale between points and meters"},
		{"Gravity", formatFloat(config.Physics.Gravity), "Gravity in m/s²"},
		{"Seed", seed, "Seed for spawn positions"},
		{"Engine", orNotSet(config.Physics.Engine), "Physics engine: builtin or chipmunk"},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
