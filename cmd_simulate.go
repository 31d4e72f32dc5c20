package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/Rshep3087/happyjar/config"
	"github.com/Rshep3087/happyjar/jar"
	"github.com/Rshep3087/happyjar/level"
	"github.com/Rshep3087/happyjar/texture"
	"github.com/Rshep3087/happyjar/visualizer"
	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"github.com/spf13/cobra"
)

const (
	simulationStep = 1.0 / 60
	// time between two hearts dropping into the jar
	dropInterval = 0.5
)

// BodyJSON is the state of one heart after a simulation.
type BodyJSON struct {
	Tier   int     `json:"tier"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle"`
	Radius float64 `json:"radius"`
}

// SimulationJSON is the result of the simulate command.
type SimulationJSON struct {
	Summary SummaryJSON `json:"summary"`
	Bodies  []BodyJSON  `json:"bodies"`
}

// simulateCmd represents the simulate command.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drop hearts into a jar without the TUI",
	Long: `Deposit one heart per tier, half a second apart, and let the jar run for
the given number of seconds after the last drop. Prints where every heart came
to rest and can save a picture of the jar.`,
	RunE: simulateRun,
}

func init() {
	simulateCmd.Flags().IntSlice("tiers", []int{1, 3, 5}, "tiers to deposit, in order")
	simulateCmd.Flags().Float64("seconds", 5, "seconds to simulate after the last heart drops")
	simulateCmd.Flags().String("out", "", "write a PNG of the jar to this file")
	simulateCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func simulateRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	tiers, err := cmd.Flags().GetIntSlice("tiers")
	if err != nil {
		return err
	}
	seconds, err := cmd.Flags().GetFloat64("seconds")
	if err != nil {
		return err
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	textures := texture.NewCache()
	scene := newVisualizer(cfg, textures)
	j := jar.New(jar.WithScene(scene))

	if err := simulate(j, tiers, seconds); err != nil {
		return err
	}

	if out != "" {
		if err := saveSnapshot(out, scene, cfg); err != nil {
			return err
		}
		log.Info("wrote jar", "file", out, "hearts", scene.Len())
	}

	result := SimulationJSON{
		Summary: newSummaryJSON(j.Summary(), cfg.Currency),
		Bodies:  bodiesJSON(j.Bodies()),
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(result)
	case tableOutputFormat:
		return outputSimulationTable(result)
	default:
		return errors.New("unsupported output format")
	}
}

// simulate deposits tiers dropInterval apart, then runs the jar for seconds.
func simulate(j *jar.Jar, tiers []int, seconds float64) error {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return fmt.Errorf("seconds must be a finite number of at least 0, got %v", seconds)
	}

	for _, tier := range tiers {
		if !level.Valid(tier) {
			return fmt.Errorf("tier must be between %d and %d, got %d", level.MinTier, level.MaxTier, tier)
		}
	}

	dropSteps := int(math.Round(dropInterval / simulationStep))
	for i, tier := range tiers {
		if _, err := j.Deposit(fmt.Sprintf("simulated happiness #%d", i+1), tier); err != nil {
			return err
		}
		for range dropSteps {
			j.Step(simulationStep)
		}
	}

	for range int(math.Round(seconds / simulationStep)) {
		j.Step(simulationStep)
	}

	return nil
}

func bodiesJSON(sprites []visualizer.Sprite) []BodyJSON {
	bodies := make([]BodyJSON, len(sprites))
	for i, s := range sprites {
		bodies[i] = BodyJSON{
			Tier:   s.Tier,
			X:      s.Position.X,
			Y:      s.Position.Y,
			Angle:  s.Angle,
			Radius: s.Radius,
		}
	}
	return bodies
}

func saveSnapshot(path string, scene *visualizer.Visualizer, cfg config.Config) error {
	background := color.Color(color.White)
	if cfg.DarkMode {
		background = color.RGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 0xff}
	}

	width, height := scene.Size()
	img, err := visualizer.Snapshot(scene.Bodies(), width, height, background)
	if err != nil {
		return err
	}

	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func outputSimulationTable(result SimulationJSON) error {
	t := createStyledTable("#", "TIER", "X", "Y", "ANGLE", "RADIUS")

	for i, b := range result.Bodies {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(b.Tier),
			formatCoord(b.X),
			formatCoord(b.Y),
			formatCoord(b.Angle*180/math.Pi)+"°",
			formatCoord(b.Radius),
		)
	}

	fmt.Println(t)
	fmt.Printf("Balance: %s (%d hearts)\n", result.Summary.Balance, result.Summary.Deposits)

	return nil
}
