package main

import (
	"github.com/Rshep3087/happyjar/history"
	"github.com/Rshep3087/happyjar/jarview"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case texturesWarmedMsg:
		return m.handleTexturesWarmed(msg)

	// the jar keeps falling while other screens are shown
	case jarview.FrameMsg:
		var cmd tea.Cmd
		m.jarView, cmd = m.jarView.Update(msg)
		return m, cmd

	case history.DeletedMsg:
		log.Debug("deleted entry", "id", msg.Entry.ID, "balance", m.jar.Balance())
		return m, nil
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case jarState:
		m.jarView, cmd = m.jarView.Update(msg)
		return m, cmd

	case historyState:
		m.history, cmd = m.history.Update(msg)
		return m, cmd

	case depositState:
		return m.updateForm(msg, &m.depositForm)

	case withdrawState:
		return m.updateForm(msg, &m.withdrawForm)

	case levelsState:
		m.levels, cmd = m.levels.Update(msg)
		return m, cmd

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case loading:
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateForm forwards msg to the form in slot and applies it once completed.
func (m *model) updateForm(msg tea.Msg, slot **huh.Form) (tea.Model, tea.Cmd) {
	if *slot == nil {
		m.changeState(jarState)
		return *m, nil
	}

	updated, cmd := (*slot).Update(msg)
	f, ok := updated.(*huh.Form)
	if !ok {
		log.Debug("form update did not return a form")
		return *m, nil
	}
	*slot = f

	switch f.State {
	case huh.StateCompleted:
		return m.handleFormSubmit(f)
	case huh.StateAborted:
		m.changeState(jarState)
		return *m, nil
	}

	return *m, cmd
}
