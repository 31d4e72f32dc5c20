package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	switch m.sessionState {
	case jarState:
		b.WriteString(m.jarView.View())
	case historyState:
		b.WriteString(m.history.View())
	case depositState:
		b.WriteString(m.depositForm.View())
	case withdrawState:
		b.WriteString(m.withdrawForm.View())
	case levelsState:
		b.WriteString(m.levels.View())
	case configView:
		b.WriteString(m.configView.View())
	case loading:
		b.WriteString(fmt.Sprintf("%s Drawing hearts...", m.loadingSpinner.View()))
	case errorState:
		b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("%s - 'q' to quit", m.errorMsg)))
		return m.styles.docStyle.Render(b.String())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	title := fmt.Sprintf("happyjar | %s", m.sessionState.String())
	if n := m.jar.Summary().Deposits; n > 0 {
		title = fmt.Sprintf("%s | %d saved", title, n)
	}
	return m.styles.titleStyle.Render(title)
}

func (m model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.errorStyle.Render(m.statusMsg)
	}
	return m.styles.successStyle.Render(m.statusMsg)
}
