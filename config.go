package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Rshep3087/happyjar/config"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
	Long:  `Commands for managing the happyjar configuration file.`,
}

// configInitCmd represents the config init command.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long:  `Write a configuration file containing every setting with its default value.`,
	RunE:  configInitRun,
}

func init() {
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().String("path", "", "where to write the file (default is the user config directory)")
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
}

// getConfigFilePaths returns the list of possible configuration file paths
// in order of precedence (first found wins).
func getConfigFilePaths() []string {
	dirs := configSearchDirs()
	paths := make([]string, len(dirs))
	for i, dir := range dirs {
		paths[i] = filepath.Join(dir, "happyjar.toml")
	}
	return paths
}

// defaultConfigPath is where config init writes when no path is given.
func defaultConfigPath() string {
	paths := getConfigFilePaths()
	// skip the current directory
	if len(paths) > 1 {
		return paths[1]
	}
	return paths[0]
}

// marshalConfig renders cfg as TOML.
func marshalConfig(cfg config.Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// writeConfigFile writes the default configuration to path.
func writeConfigFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file %s: %w", path, err)
		}
	}

	data, err := marshalConfig(config.Default())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

func configInitRun(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return err
	}
	if path == "" {
		path = defaultConfigPath()
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if err := writeConfigFile(path, force); err != nil {
		return err
	}

	log.Info("wrote config", "file", path)
	return nil
}
