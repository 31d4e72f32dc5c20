package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

const warmTimeout = 10 * time.Second

type texturesWarmedMsg struct {
	dark bool
	err  error
}

// warmTextures renders every heart of one shade ahead of the first deposit.
func (m model) warmTextures(dark bool) tea.Cmd {
	textures := m.textures
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
		defer cancel()

		err := textures.Warm(ctx, dark)
		return texturesWarmedMsg{dark: dark, err: err}
	}
}

func texturesKey(dark bool) string {
	if dark {
		return darkTexturesKey
	}
	return lightTexturesKey
}

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	// title, status line and help
	takenHeight := 6
	width, height := msg.Width-h, msg.Height-v-takenHeight

	m.jarView.SetSize(width, height)
	m.history.SetSize(width, height)
	m.levels.SetSize(width, height)
	m.configView.SetSize(width, height)

	m.help.Width = msg.Width

	if m.depositForm != nil {
		m.depositForm = m.depositForm.WithHeight(height).WithWidth(width)
	}
	if m.withdrawForm != nil {
		m.withdrawForm = m.withdrawForm.WithHeight(height).WithWidth(width)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleTexturesWarmed(msg texturesWarmedMsg) (tea.Model, tea.Cmd) {
	key := texturesKey(msg.dark)
	if msg.err != nil {
		log.Error("failed to render hearts", "shade", key, "error", msg.err)
		m.sessionState = errorState
		m.errorMsg = fmt.Sprintf("Could not draw the hearts: %s", msg.err)
		return m, nil
	}

	log.Debug("hearts ready", "shade", key, "cached", m.textures.Len())
	m.loadingState.set(key)
	m.sessionState = m.checkIfLoading()
	return m, nil
}

// handleFormSubmit applies a completed deposit or withdraw form to the jar.
func (m model) handleFormSubmit(f *huh.Form) (tea.Model, tea.Cmd) {
	state := m.sessionState
	m.changeState(jarState)

	switch state {
	case depositState:
		m.applyDeposit(f.GetString("text"), f.GetInt("tier"))
	case withdrawState:
		m.applyWithdraw(f.GetString("text"), f.GetString("amount"))
	}

	cmd := m.history.Refresh()
	return m, cmd
}

func (m *model) applyDeposit(text string, tier int) {
	e, err := m.jar.Deposit(text, tier)
	if err != nil {
		m.setStatusError("deposit", err)
		return
	}

	log.Debug("deposited", "id", e.ID, "tier", e.Tier, "value", e.Value())
	m.statusMsg = fmt.Sprintf("Saved %q (+%d)", e.Text, e.Value())
	m.statusErr = false
}

func (m *model) applyWithdraw(text, amountStr string) {
	amount, err := parseAmount(amountStr, m.jar.Balance())
	if err != nil {
		m.setStatusError("withdraw", err)
		return
	}

	e, err := m.jar.Withdraw(text, amount)
	if err != nil {
		m.setStatusError("withdraw", err)
		return
	}

	log.Debug("withdrew", "id", e.ID, "amount", e.Amount)
	m.statusMsg = fmt.Sprintf("Gave back %d for %q", e.Amount, e.Text)
	m.statusErr = false
}

func (m *model) setStatusError(op string, err error) {
	log.Debug("operation rejected", "op", op, "error", err)
	m.statusMsg = err.Error()
	m.statusErr = true
}

func (m model) checkIfLoading() sessionState {
	if loaded, pending := m.loadingState.allLoaded(); !loaded {
		log.Debug("still loading", "pending", pending)
		return loading
	}

	if m.sessionState == loading {
		return jarState
	}
	return m.sessionState
}
