package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Rshep3087/happyjar/levels"
	"github.com/spf13/cobra"
)

// levelsCmd represents the levels command.
var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Happiness level commands",
	Long:  `Commands for inspecting the happiness levels a deposit can have.`,
}

// levelsListCmd represents the levels list command.
var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `List every level with its value, heart size and palette colours.`,
	RunE:  levelsListRun,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)

	levelsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func levelsListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rows := levels.Describe(cfg.Currency)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(rows)
	case tableOutputFormat:
		return outputLevelsTable(rows)
	default:
		return errors.New("unsupported output format")
	}
}

func outputLevelsTable(rows []levels.Row) error {
	t := createStyledTable("TIER", "NAME", "VALUE", "SIZE", "LIGHT", "DARK")

	for _, r := range rows {
		t.Row(
			strconv.Itoa(r.Tier),
			r.Name,
			r.Value,
			strconv.Itoa(r.Size),
			r.Light,
			r.Dark,
		)
	}

	fmt.Println(t)

	return nil
}
