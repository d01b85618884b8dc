package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/flow-banner/audio"
	"github.com/lixenwraith/flow-banner/banner"
	"github.com/lixenwraith/flow-banner/config"
	"github.com/lixenwraith/flow-banner/logger"
	"github.com/lixenwraith/flow-banner/page"
)

// rootFlags are overrides applied on top of file and environment config
type rootFlags struct {
	cfgFile       string
	reducedMotion bool
	noSound       bool
	debug         bool
	logFile       string
	logLevel      string
	fps           int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "flow-banner",
		Short: "Animated process -> data -> model -> business flow banner for the terminal",
		Long: `flow-banner draws a row of pipeline stages joined by curved links with
particles streaming downstream. Hover a stage for its description, click it
to scroll the page below to its section, click a particle to pop it.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runBanner(cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.cfgFile, "config", config.DefaultConfigPath, "config file path")
	pf.BoolVar(&flags.reducedMotion, "reduced-motion", false, "draw a static banner without animation")
	pf.BoolVar(&flags.noSound, "no-sound", false, "disable pop sounds")
	pf.BoolVar(&flags.debug, "debug", false, "show the debug counters line")
	pf.StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVar(&flags.fps, "fps", 0, "animation frames per second")

	cmd.AddCommand(newLayoutCmd(flags), newConfigCmd(flags))
	return cmd
}

// loadConfig layers changed flags over the file/env configuration and validates the result
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.cfgFile)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("reduced-motion") {
		cfg.Display.ReducedMotion = flags.reducedMotion
	}
	if changed("no-sound") {
		cfg.Sound = !flags.noSound
	}
	if changed("debug") {
		cfg.Display.Debug = flags.debug
	}
	if changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("fps") {
		cfg.Display.FPS = flags.fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runBanner(cfg *config.Config) error {
	lggr, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer lggr.Sync()

	// No drawing surface: stay silent, the banner is decoration
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		lggr.Info("stdout is not a terminal, banner not rendered")
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	flowCfg := cfg.FlowConfig()
	pager := page.NewPager(page.WithStages(page.DefaultSections(), flowCfg.Stages), cfg.Display.FPS)

	opts := []banner.Option{
		banner.WithLogger(lggr),
		banner.WithPane(pager),
		banner.WithNavigator(pager),
		banner.WithFrameRate(cfg.Display.FPS),
		banner.WithRows(cfg.Display.BannerRows),
		banner.WithCellSize(cfg.Display.CellWidth, cfg.Display.CellHeight),
		banner.WithReducedMotion(cfg.Display.ReducedMotion),
		banner.WithDebug(cfg.Display.Debug),
	}
	if cfg.Flow.Seed != 0 {
		opts = append(opts, banner.WithSeed(cfg.Flow.Seed))
	}
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, banner runs without sound
			lggr.Warn("audio initialization failed, continuing without sound", zap.Error(err))
		} else {
			opts = append(opts, banner.WithSound(sm))
		}
	}

	b, err := banner.New(screen, flowCfg, opts...)
	if err != nil {
		return err
	}
	if err := b.Mount(); err != nil {
		return err
	}
	defer b.Unmount()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-b.Done():
	case s := <-sig:
		lggr.Info("signal received", zap.String("signal", s.String()))
	}
	return nil
}
