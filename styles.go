package main

import (
	"github.com/Rshep3087/happyjar/history"
	"github.com/Rshep3087/happyjar/jarview"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const standardMargin = 2

type styles struct {
	docStyle     lipgloss.Style
	titleStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
}

func createStyles(theme Theme) styles {
	return styles{
		docStyle: lipgloss.NewStyle().Margin(1, standardMargin),
		titleStyle: lipgloss.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#000000", Dark: string(theme.Primary)},
		).Bold(true),
		errorStyle:   lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		successStyle: lipgloss.NewStyle().Foreground(theme.Success),
	}
}

func createHelpModel(theme Theme) help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = " + "
	helpModel.Styles = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(theme.SecondaryText),
		ShortKey:       lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		ShortDesc:      lipgloss.NewStyle().Foreground(theme.Text),
		ShortSeparator: lipgloss.NewStyle().Foreground(theme.SecondaryText),
		FullKey:        lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		FullDesc:       lipgloss.NewStyle().Foreground(theme.Text),
		FullSeparator:  lipgloss.NewStyle().Foreground(theme.SecondaryText),
	}
	return helpModel
}

func createJarStyles(theme Theme) jarview.Styles {
	return jarview.Styles{
		BalanceStyle:  lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		ActionStyle:   lipgloss.NewStyle().Foreground(theme.Text),
		DisabledStyle: lipgloss.NewStyle().Foreground(theme.Muted),
		KeyStyle:      lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		NoteStyle:     lipgloss.NewStyle().Foreground(theme.SecondaryText),
		JarStyle:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border),
	}
}

func historyColors(theme Theme) history.Colors {
	return history.Colors{
		Primary:    string(theme.Primary),
		Muted:      string(theme.Muted),
		Text:       string(theme.Text),
		Match:      string(theme.Match),
		Withdrawal: string(theme.Withdrawal),
	}
}

func createFormTheme(theme Theme) *huh.Theme {
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(theme.Primary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(theme.Primary)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(theme.Error)
	return t
}
