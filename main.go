package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/Rshep3087/happyjar/config"
	"github.com/Rshep3087/happyjar/history"
	"github.com/Rshep3087/happyjar/jar"
	"github.com/Rshep3087/happyjar/jarview"
	"github.com/Rshep3087/happyjar/levels"
	"github.com/Rshep3087/happyjar/physics"
	"github.com/Rshep3087/happyjar/physics/chipmunk"
	"github.com/Rshep3087/happyjar/texture"
	"github.com/Rshep3087/happyjar/visualizer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

const logFile = "happyjar.log"

type model struct {
	// loadingSpinner is shown while the heart textures are drawn
	loadingSpinner spinner.Model

	keys      keyMap
	help      help.Model
	styles    styles
	theme     Theme
	formTheme *huh.Theme
	config    config.Config

	// jar owns the ledger and the simulation
	jar      *jar.Jar
	scene    *visualizer.Visualizer
	textures *texture.Cache

	// sessionState is the current state of the session
	sessionState         sessionState
	previousSessionState sessionState
	loadingState         loadingState

	jarView    jarview.Model
	history    history.Model
	levels     levels.Model
	configView config.Model

	depositForm  *huh.Form
	withdrawForm *huh.Form

	// statusMsg is the result of the last deposit or withdrawal
	statusMsg string
	statusErr bool
	errorMsg  string
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.loadingSpinner.Tick,
		m.warmTextures(false),
		m.warmTextures(true),
		m.jarView.Init(),
	)
}

// newVisualizer builds the jar simulation described by cfg.
func newVisualizer(cfg config.Config, textures *texture.Cache) *visualizer.Visualizer {
	vcfg := visualizer.DefaultConfig()
	vcfg.Width = cfg.Physics.Width
	vcfg.Height = cfg.Physics.Height
	vcfg.PointsPerMeter = cfg.Physics.PointsPerMeter
	vcfg.Gravity = cfg.Physics.Gravity
	vcfg.Dark = cfg.DarkMode

	opts := []visualizer.Option{visualizer.WithTextures(textures)}
	if seed := cfg.Physics.Seed; seed != 0 {
		opts = append(opts, visualizer.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	if cfg.Physics.Engine == config.EngineChipmunk {
		opts = append(opts, visualizer.WithEngine(func(pc physics.Config) physics.World {
			return chipmunk.NewSpace(pc)
		}))
	}

	return visualizer.New(vcfg, opts...)
}

func newModel(cfg config.Config) (model, error) {
	loc, err := cfg.Location()
	if err != nil {
		return model{}, err
	}

	theme := newTheme(cfg.Colors)
	textures := texture.NewCache()
	scene := newVisualizer(cfg, textures)
	j := jar.New(jar.WithScene(scene), jar.WithLocation(loc))

	width, height := scene.Size()
	jarView := jarview.New(j,
		jarview.WithCurrency(cfg.Currency),
		jarview.WithFrameInterval(cfg.Physics.FrameInterval()),
		jarview.WithJarSize(width, height),
		jarview.WithStyles(createJarStyles(theme)),
	)

	configView := config.New(string(theme.Primary))
	configView.SetConfig(cfg)

	return model{
		loadingSpinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
		),
		keys:         initializeKeyMap(),
		help:         createHelpModel(theme),
		styles:       createStyles(theme),
		theme:        theme,
		formTheme:    createFormTheme(theme),
		config:       cfg,
		jar:          j,
		scene:        scene,
		textures:     textures,
		sessionState: loading,
		loadingState: newLoadingState(lightTexturesKey, darkTexturesKey),
		jarView:      jarView,
		history:      history.New(j, historyColors(theme), cfg.DarkMode),
		levels:       levels.New(levels.Colors{Primary: string(theme.Primary)}, cfg.Currency),
		configView:   configView,
	}, nil
}

// rootAction runs the TUI until the user quits.
func rootAction(ctx context.Context, cfg config.Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}

	// the alt screen owns the terminal while the program runs
	f, err := tea.LogToFileWith(logFile, "happyjar", log.Default())
	if err != nil {
		return err
	}
	defer f.Close()

	log.Debug("starting happyjar", "currency", cfg.Currency, "timezone", cfg.Timezone, "dark", cfg.DarkMode)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("happyjar ran into an error: %w", err)
	}

	return nil
}

func main() {
	Execute()
}
