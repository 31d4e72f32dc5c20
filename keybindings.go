package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	jar       key.Binding
	history   key.Binding
	levels    key.Binding
	config    key.Binding
	deposit   key.Binding
	withdraw  key.Binding
	palette   key.Binding
	currency  key.Binding
	escape    key.Binding
	fullHelp  key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.deposit,
		km.withdraw,
		km.jar,
		km.history,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.jar,
			km.history,
			km.levels,
			km.config,
			km.quit,
			km.fullHelp,
		},
		{
			km.deposit,
			km.withdraw,
			km.palette,
			km.currency,
			km.escape,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		jar: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "jar"),
		),
		history: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		levels: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "levels"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		deposit: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "save a happiness"),
		),
		withdraw: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "give back"),
		),
		palette: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "light/dark hearts"),
		),
		currency: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "currency"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// handleKeyPress handles global keys. A nil cmd means the key was not
// consumed and should reach the active component.
func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k, "state", m.sessionState)

	if model, cmd := handleSpecialKeys(msg, m); cmd != nil {
		return model, cmd
	}

	if isInputBlocked(m) {
		return m, nil
	}

	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	if model, cmd := handleSessionStateKeys(msg, m); cmd != nil {
		return model, cmd
	}

	return m, nil
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.forceQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(msg, m)
	}

	return m, nil
}

func formActive(f *huh.Form) bool {
	return f != nil && f.State == huh.StateNormal
}

func isInputBlocked(m *model) bool {
	if m.sessionState == historyState && m.history.Searching() {
		return true
	}

	if m.sessionState == depositState && formActive(m.depositForm) {
		return true
	}

	if m.sessionState == withdrawState && formActive(m.withdrawForm) {
		return true
	}

	if m.sessionState == loading {
		return true
	}

	return false
}

// changeState moves to next, remembering where we came from.
func (m *model) changeState(next sessionState) {
	if m.sessionState == next {
		return
	}

	log.Debug("changing state", "from", m.sessionState, "to", next)
	m.previousSessionState = m.sessionState
	m.sessionState = next
	m.levels.SetFocus(next == levelsState)
	m.configView.SetFocus(next == configView)
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if m.sessionState == errorState {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.jar):
		m.changeState(jarState)

	case key.Matches(msg, m.keys.history):
		if m.sessionState != historyState {
			m.changeState(historyState)
			return m, m.history.Refresh()
		}

	case key.Matches(msg, m.keys.levels):
		m.changeState(levelsState)

	case key.Matches(msg, m.keys.config):
		m.changeState(configView)

	case key.Matches(msg, m.keys.deposit):
		m.depositForm = newDepositForm(m.config.Currency, m.formTheme)
		m.changeState(depositState)
		return m, m.depositForm.Init()

	case key.Matches(msg, m.keys.withdraw):
		if !m.jar.CanWithdraw() {
			m.statusMsg = "There is nothing in the jar to give back yet."
			m.statusErr = true
			return m, nil
		}
		m.withdrawForm = newWithdrawForm(m.jar.Balance(), m.formTheme)
		m.changeState(withdrawState)
		return m, m.withdrawForm.Init()

	case key.Matches(msg, m.keys.palette):
		m.setDark(!m.config.DarkMode)

	case key.Matches(msg, m.keys.currency):
		m.setCurrency(nextCurrency(m.config.Currency))

	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleEscape backs out of the current screen to the jar.
func handleEscape(_ tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch m.sessionState {
	case depositState, withdrawState:
		log.Debug("aborting form", "state", m.sessionState)
		if m.depositForm != nil {
			m.depositForm.State = huh.StateAborted
		}
		if m.withdrawForm != nil {
			m.withdrawForm.State = huh.StateAborted
		}
		m.changeState(jarState)
		return m, nil

	case historyState:
		// left to the history screen, which clears its search first
		if m.history.Searching() || m.history.Query() != "" {
			return m, nil
		}

	case loading, errorState:
		return m, nil
	}

	m.changeState(jarState)
	return m, nil
}

// setDark switches every view to the light or dark heart palette.
func (m *model) setDark(dark bool) {
	m.config.DarkMode = dark
	m.scene.SetDark(dark)
	m.history.SetDark(dark)
	m.configView.SetConfig(m.config)
}

// currencies are the codes the currency key cycles through.
var currencies = []string{"JPY", "USD", "EUR", "GBP"}

// nextCurrency returns the code after current, or the first one when
// current is not in the cycle.
func nextCurrency(current string) string {
	for i, c := range currencies {
		if c == current {
			return currencies[(i+1)%len(currencies)]
		}
	}
	return currencies[0]
}

// setCurrency shows every amount in code from now on.
func (m *model) setCurrency(code string) {
	m.config.Currency = code
	m.jarView.SetCurrency(code)
	m.levels.SetCurrency(code)
	m.configView.SetConfig(m.config)
}
