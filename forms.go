package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rshep3087/happyjar/level"
	"github.com/Rshep3087/happyjar/levels"
	"github.com/charmbracelet/huh"
)

var (
	errTextRequired    = errors.New("tell the jar what happened")
	errAmountRequired  = errors.New("amount is required")
	errAmountNotNumber = errors.New("amount must be a whole number")
	errAmountPositive  = errors.New("amount must be more than zero")
	errExceedsBalance  = errors.New("exceeds balance")
)

func validateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errTextRequired
	}
	return nil
}

// parseAmount parses a withdrawal amount and checks it against balance.
func parseAmount(s string, balance int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errAmountRequired
	}

	amount, err := strconv.Atoi(s)
	if err != nil {
		return 0, errAmountNotNumber
	}
	if amount <= 0 {
		return 0, errAmountPositive
	}
	if amount > balance {
		return 0, errExceedsBalance
	}

	return amount, nil
}

// tierOptions labels each tier with its name and what it adds to the balance.
func tierOptions(currency string) []huh.Option[int] {
	rows := levels.Describe(currency)
	opts := make([]huh.Option[int], len(rows))
	for i, r := range rows {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (+%s)", r.Name, r.Value), r.Tier)
	}
	return opts
}

func newDepositForm(currency string, theme *huh.Theme) *huh.Form {
	tier := level.MinTier

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What made you happy?").
				Key("text").
				Placeholder("A walk in the sun...").
				Validate(validateText),

			huh.NewSelect[int]().
				Title("How happy?").
				Description("Happier moments drop bigger hearts").
				Options(tierOptions(currency)...).
				Value(&tier).
				Key("tier"),
		),
	).WithTheme(theme).WithShowHelp(true)
}

func newWithdrawForm(balance int, theme *huh.Theme) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you giving back for?").
				Key("text").
				Placeholder("A treat for a friend...").
				Validate(validateText),

			huh.NewInput().
				Title("Amount").
				Description(fmt.Sprintf("Up to %d", balance)).
				Key("amount").
				Placeholder("10").
				Validate(func(s string) error {
					_, err := parseAmount(s, balance)
					return err
				}),
		),
	).WithTheme(theme).WithShowHelp(true)
}
