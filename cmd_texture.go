package main

import (
	"fmt"

	"github.com/Rshep3087/happyjar/level"
	"github.com/Rshep3087/happyjar/texture"
	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"github.com/spf13/cobra"
)

// textureCmd represents the texture command.
var textureCmd = &cobra.Command{
	Use:   "texture",
	Short: "Heart texture commands",
	Long:  `Commands for rendering the heart textures dropped into the jar.`,
}

// textureRenderCmd represents the texture render command.
var textureRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a heart to a PNG file",
	Long:  `Render the heart of one level in the light or dark palette and write it as a PNG.`,
	RunE:  textureRenderRun,
}

func init() {
	textureCmd.AddCommand(textureRenderCmd)

	textureRenderCmd.Flags().Int("tier", level.MaxTier, "level of the heart (1-5)")
	textureRenderCmd.Flags().String("out", "heart.png", "file to write the PNG to")
}

func textureRenderRun(cmd *cobra.Command, _ []string) error {
	tier, err := cmd.Flags().GetInt("tier")
	if err != nil {
		return err
	}
	if !level.Valid(tier) {
		return fmt.Errorf("tier must be between %d and %d, got %d", level.MinTier, level.MaxTier, tier)
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	img, err := texture.NewCache().Get(tier, cfg.DarkMode)
	if err != nil {
		return fmt.Errorf("failed to render heart: %w", err)
	}

	if err := gg.SavePNG(out, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	log.Info("wrote heart", "tier", tier, "dark", cfg.DarkMode, "file", out)
	return nil
}
