package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/Rshep3087/happyjar/config"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile  string
	debug    bool
	darkMode bool
	currency string
	timezone string
	seed     uint64
	engine   string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "happyjar",
	Short: "A jar for the happy moments of your day",
	Long: `happyjar keeps the happy moments of your day in a jar. Each one drops
a heart into the jar and adds to your balance; give some back whenever
you want to share it.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		setupLogging(cfg.Debug)
		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		return rootAction(c.Context(), cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := config.Default()

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./happyjar.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "use the dark heart palette")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", defaults.Currency, "currency the balance is shown in")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "time zone for dates and date search (default local)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for spawn positions (0 is random)")
	rootCmd.PersistentFlags().StringVar(&engine, "engine", defaults.Physics.Engine, "physics engine: builtin or chipmunk")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("dark_mode", rootCmd.PersistentFlags().Lookup("dark"))
	_ = viper.BindPFlag("currency", rootCmd.PersistentFlags().Lookup("currency"))
	_ = viper.BindPFlag("timezone", rootCmd.PersistentFlags().Lookup("timezone"))
	_ = viper.BindPFlag("physics.seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("physics.engine", rootCmd.PersistentFlags().Lookup("engine"))

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(textureCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setDefaults(viper.GetViper(), config.Default())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in multiple locations (in order of precedence)
		viper.SetConfigName("happyjar")
		viper.SetConfigType("toml")
		for _, dir := range configSearchDirs() {
			viper.AddConfigPath(dir)
		}
	}

	// HAPPYJAR_CURRENCY, HAPPYJAR_PHYSICS_SEED, ...
	viper.SetEnvPrefix("happyjar")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())
}

// configSearchDirs lists the directories searched for happyjar.toml, highest
// precedence first.
func configSearchDirs() []string {
	dirs := []string{"."}

	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, "happyjar"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home, filepath.Join(home, ".config", "happyjar"))
	}

	// System-wide config directory (lowest precedence)
	return append(dirs, "/etc/happyjar")
}

// setDefaults registers every key of cfg so file, env and flag values can
// override them one by one.
func setDefaults(v *viper.Viper, cfg config.Config) {
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("dark_mode", cfg.DarkMode)
	v.SetDefault("currency", cfg.Currency)
	v.SetDefault("timezone", cfg.Timezone)

	v.SetDefault("physics.width", cfg.Physics.Width)
	v.SetDefault("physics.height", cfg.Physics.Height)
	v.SetDefault("physics.fps", cfg.Physics.FPS)
	v.SetDefault("physics.points_per_meter", cfg.Physics.PointsPerMeter)
	v.SetDefault("physics.gravity", cfg.Physics.Gravity)
	v.SetDefault("physics.seed", cfg.Physics.Seed)
	v.SetDefault("physics.engine", cfg.Physics.Engine)

	v.SetDefault("colors.primary", cfg.Colors.Primary)
	v.SetDefault("colors.error", cfg.Colors.Error)
	v.SetDefault("colors.success", cfg.Colors.Success)
	v.SetDefault("colors.muted", cfg.Colors.Muted)
	v.SetDefault("colors.text", cfg.Colors.Text)
	v.SetDefault("colors.secondary_text", cfg.Colors.SecondaryText)
	v.SetDefault("colors.border", cfg.Colors.Border)
}

// loadConfig merges defaults, the config file, environment and flags.
func loadConfig() (config.Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (config.Config, error) {
	cfg := config.Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if money.GetCurrency(cfg.Currency) == nil {
		return config.Config{}, fmt.Errorf("unknown currency %q", cfg.Currency)
	}

	if _, err := cfg.Location(); err != nil {
		return config.Config{}, err
	}

	cfg.Physics.Engine = strings.ToLower(strings.TrimSpace(cfg.Physics.Engine))
	switch cfg.Physics.Engine {
	case config.EngineBuiltin, config.EngineChipmunk:
	default:
		return config.Config{}, fmt.Errorf("unknown physics engine %q", cfg.Physics.Engine)
	}

	return cfg, nil
}

func setupLogging(debug bool) {
	log.SetLevel(log.InfoLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

// Utility functions for output formatting.
func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", err
	}

	switch outputFormat {
	case jsonOutputFormat, tableOutputFormat:
		return outputFormat, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be %s or %s",
			outputFormat, tableOutputFormat, jsonOutputFormat)
	}
}

func outputJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
