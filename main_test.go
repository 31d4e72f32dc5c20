package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Rshep3087/happyjar/config"
	"github.com/Rshep3087/happyjar/jarview"
	"github.com/carlmjohnson/be"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T) *model {
	t.Helper()

	cfg := config.Default()
	cfg.Timezone = "UTC"
	cfg.Physics.Seed = 1

	m, err := newModel(cfg)
	be.NilErr(t, err)
	m.loadingState.set(lightTexturesKey)
	m.loadingState.set(darkTexturesKey)
	m.sessionState = jarState
	return &m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModel(t *testing.T) {
	m, err := newModel(config.Default())
	be.NilErr(t, err)

	be.Equal(t, loading, m.sessionState)
	be.AllEqual(t, []string{darkTexturesKey, lightTexturesKey}, m.loadingState.pending())
	be.Equal(t, 0, m.jar.Balance())
	be.Nonzero(t, m.Init())
}

func TestNewModelInvalidTimezone(t *testing.T) {
	cfg := config.Default()
	cfg.Timezone = "Not/AZone"

	_, err := newModel(cfg)
	be.Nonzero(t, err)
}

func TestTexturesWarmed(t *testing.T) {
	m, err := newModel(config.Default())
	be.NilErr(t, err)

	msg := m.warmTextures(false)()
	warmed, ok := msg.(texturesWarmedMsg)
	be.True(t, ok)
	be.NilErr(t, warmed.err)
	be.Equal(t, 5, m.textures.Len())

	next, _ := m.handleTexturesWarmed(warmed)
	m = next.(model)
	be.Equal(t, loading, m.sessionState)

	next, _ = m.handleTexturesWarmed(texturesWarmedMsg{dark: true})
	m = next.(model)
	be.Equal(t, jarState, m.sessionState)
}

func TestTexturesWarmedError(t *testing.T) {
	m, err := newModel(config.Default())
	be.NilErr(t, err)

	next, _ := m.handleTexturesWarmed(texturesWarmedMsg{err: errors.New("boom")})
	m = next.(model)

	be.Equal(t, errorState, m.sessionState)
	be.True(t, strings.Contains(m.errorMsg, "boom"))
	be.True(t, strings.Contains(m.View(), "'q' to quit"))
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name          string
		initialState  sessionState
		key           rune
		expectedState sessionState
		expectedPrev  sessionState
	}{
		{"jar to history", jarState, 'h', historyState, jarState},
		{"jar to levels", jarState, 'l', levelsState, jarState},
		{"history to config", historyState, 'g', configView, historyState},
		{"levels to jar", levelsState, 'j', jarState, levelsState},
		{"jar to jar keeps previous", jarState, 'j', jarState, jarState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.sessionState = tt.initialState
			m.previousSessionState = jarState

			resultModel, _ := handleKeyPress(runeKey(tt.key), m)
			result := resultModel.(*model)

			be.Equal(t, tt.expectedState, result.sessionState)
			be.Equal(t, tt.expectedPrev, result.previousSessionState)
		})
	}
}

func TestDepositKeyOpensForm(t *testing.T) {
	m := newTestModel(t)

	resultModel, cmd := handleKeyPress(runeKey('d'), m)
	result := resultModel.(*model)

	be.Equal(t, depositState, result.sessionState)
	be.Nonzero(t, result.depositForm)
	be.Nonzero(t, cmd)
	be.True(t, isInputBlocked(result))
}

func TestWithdrawDisabledWhenEmpty(t *testing.T) {
	m := newTestModel(t)

	resultModel, _ := handleKeyPress(runeKey('w'), m)
	result := resultModel.(*model)

	be.Equal(t, jarState, result.sessionState)
	be.True(t, result.withdrawForm == nil)
	be.True(t, result.statusErr)
}

func TestWithdrawKeyOpensForm(t *testing.T) {
	m := newTestModel(t)
	m.applyDeposit("sunny walk", 2)

	resultModel, cmd := handleKeyPress(runeKey('w'), m)
	result := resultModel.(*model)

	be.Equal(t, withdrawState, result.sessionState)
	be.Nonzero(t, result.withdrawForm)
	be.Nonzero(t, cmd)
}

func TestQuit(t *testing.T) {
	t.Run("q quits on the jar", func(t *testing.T) {
		m := newTestModel(t)
		_, cmd := handleKeyPress(runeKey('q'), m)
		be.True(t, isQuit(cmd))
	})

	t.Run("q is text while searching", func(t *testing.T) {
		m := newTestModel(t)
		m.sessionState = historyState
		m.history, _ = m.history.Update(runeKey('/'))
		be.True(t, m.history.Searching())

		_, cmd := handleKeyPress(runeKey('q'), m)
		be.True(t, cmd == nil)
	})

	t.Run("q is text in a form", func(t *testing.T) {
		m := newTestModel(t)
		m.sessionState = depositState
		m.depositForm = newDepositForm("JPY", nil)

		_, cmd := handleKeyPress(runeKey('q'), m)
		be.True(t, cmd == nil)
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := newTestModel(t)
		m.sessionState = depositState
		m.depositForm = newDepositForm("JPY", nil)

		_, cmd := handleKeyPress(tea.KeyMsg{Type: tea.KeyCtrlC}, m)
		be.True(t, isQuit(cmd))
	})
}

func TestHandleEscape(t *testing.T) {
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	t.Run("aborts the deposit form", func(t *testing.T) {
		m := newTestModel(t)
		m.sessionState = depositState
		m.depositForm = newDepositForm("JPY", nil)

		resultModel, _ := handleEscape(esc, m)
		result := resultModel.(*model)

		be.Equal(t, jarState, result.sessionState)
		be.Equal(t, huh.StateAborted, result.depositForm.State)
	})

	t.Run("levels back to jar", func(t *testing.T) {
		m := newTestModel(t)
		m.sessionState = levelsState

		resultModel, _ := handleEscape(esc, m)
		result := resultModel.(*model)

		be.Equal(t, jarState, result.sessionState)
		be.Equal(t, levelsState, result.previousSessionState)
	})

	t.Run("history clears its search first", func(t *testing.T) {
		m := newTestModel(t)
		m.sessionState = historyState
		m.history, _ = m.history.Update(runeKey('/'))
		m.history, _ = m.history.Update(runeKey('a'))
		be.Equal(t, "a", m.history.Query())

		resultModel, _ := handleEscape(esc, m)
		result := resultModel.(*model)
		be.Equal(t, historyState, result.sessionState)
	})

	t.Run("loading stays", func(t *testing.T) {
		m := newTestModel(t)
		m.sessionState = loading

		resultModel, _ := handleEscape(esc, m)
		be.Equal(t, loading, resultModel.(*model).sessionState)
	})
}

func TestApplyDeposit(t *testing.T) {
	m := newTestModel(t)

	m.applyDeposit("sunny walk", 3)
	be.False(t, m.statusErr)
	be.Equal(t, 50, m.jar.Balance())
	be.Equal(t, 1, m.scene.Len())
	be.True(t, strings.Contains(m.statusMsg, "sunny walk"))

	m.applyDeposit("   ", 3)
	be.True(t, m.statusErr)
	be.Equal(t, 50, m.jar.Balance())
	be.Equal(t, 1, m.scene.Len())
}

func TestApplyWithdraw(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		wantErr     error
		wantBalance int
	}{
		{"within balance", "20", nil, 30},
		{"whole balance", "50", nil, 0},
		{"exceeds balance", "51", errExceedsBalance, 50},
		{"not a number", "abc", errAmountNotNumber, 50},
		{"zero", "0", errAmountPositive, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.applyDeposit("sunny walk", 3)

			m.applyWithdraw("a treat", tt.amount)

			be.Equal(t, tt.wantBalance, m.jar.Balance())
			be.Equal(t, tt.wantErr != nil, m.statusErr)
			if tt.wantErr != nil {
				be.Equal(t, tt.wantErr.Error(), m.statusMsg)
			}
		})
	}
}

func TestPaletteToggle(t *testing.T) {
	m := newTestModel(t)
	be.False(t, m.config.DarkMode)

	resultModel, _ := handleKeyPress(runeKey('t'), m)
	result := resultModel.(*model)

	be.True(t, result.config.DarkMode)
	be.True(t, result.scene.Config().Dark)
}

func TestCurrencyKeyCycles(t *testing.T) {
	m := newTestModel(t)
	be.Equal(t, "JPY", m.config.Currency)

	resultModel, _ := handleKeyPress(runeKey('c'), m)
	result := resultModel.(*model)

	be.Equal(t, "USD", result.config.Currency)
	be.True(t, strings.Contains(result.jarView.View(), "$0.00"))
}

func TestNextCurrency(t *testing.T) {
	tests := []struct {
		current  string
		expected string
	}{
		{"JPY", "USD"},
		{"USD", "EUR"},
		{"GBP", "JPY"},
		{"CHF", "JPY"},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			be.Equal(t, tt.expected, nextCurrency(tt.current))
		})
	}
}

func TestFramesRunOnEveryScreen(t *testing.T) {
	m := newTestModel(t)
	m.sessionState = historyState

	_, cmd := m.Update(jarview.FrameMsg(time.Now()))
	be.Nonzero(t, cmd)
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	be.True(t, strings.Contains(m.View(), "happyjar | jar"))

	m.applyDeposit("sunny walk", 1)
	view := m.View()
	be.True(t, strings.Contains(view, "1 saved"))
	be.True(t, strings.Contains(view, "Saved"))

	m.sessionState = loading
	be.True(t, strings.Contains(m.View(), "Drawing hearts"))
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)
	m.depositForm = newDepositForm("JPY", nil)

	next, _ := m.handleWindowSize(tea.WindowSizeMsg{Width: 100, Height: 40})
	result := next.(model)

	be.Equal(t, 100, result.help.Width)
	be.Nonzero(t, result.depositForm)
}
