// Package cli implements the spirograph command-line interface.
//
// Without flags the command opens a window with an animated ensemble of
// random spirographs. With --sparams it draws a single figure, either in the
// window or, together with --svg, straight to an SVG file.
//
// Keys in the window: s saves the drawing as PNG, t toggles the cursors,
// space restarts the ensemble, q or Esc quits.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/export"
	"github.com/iburimskiy/spirograph/internal/game"
	"github.com/iburimskiy/spirograph/internal/spiro"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type options struct {
	verbose bool
	config  string
	sparams []float64
	svg     string
	count   int
	seed    int64
	chime   bool
}

// Execute runs the spirograph CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "spirograph",
		Short:        "Draw animated spirographs",
		Long:         `spirograph draws hypotrochoid curves, either a single figure from --sparams or an endless animation of random curves that restart once all of them are complete.`,
		Version:      version,
		Args:         sparamsArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parseFloats(args)
			if err != nil {
				return err
			}
			opts.sparams = append(opts.sparams, extra...)
			return run(cmd, opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("spirograph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	f := root.Flags()
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	f.StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	f.Float64SliceVar(&opts.sparams, "sparams", nil, "draw a single figure with R r l (e.g. --sparams 220 65 0.8 or --sparams 220,65,0.8)")
	f.StringVar(&opts.svg, "svg", "", "with --sparams, write the figure to this SVG file instead of opening a window")
	f.IntVarP(&opts.count, "count", "n", 0, "number of animated curves (overrides config)")
	f.Int64Var(&opts.seed, "seed", 0, "random seed for reproducible animations (overrides config)")
	f.BoolVar(&opts.chime, "chime", false, "play a chime whenever the ensemble restarts")
	return root
}

func run(cmd *cobra.Command, opts options) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(cmd, opts, logger)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("sparams") {
		p, err := staticParams(opts.sparams)
		if err != nil {
			return err
		}
		if opts.svg != "" {
			return writeSVG(opts.svg, cfg, p, logger)
		}
		g, err := game.NewStatic(cfg, logger, p)
		if err != nil {
			return err
		}
		logger.Info("Generating spirograph...", "R", p.Outer, "r", p.Inner, "l", p.L)
		return game.Run(g)
	}
	if opts.svg != "" {
		return fmt.Errorf("--svg requires --sparams")
	}

	g, err := game.NewAnimated(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("Generating spirograph...", "curves", cfg.Animation.Curves)
	return game.Run(g)
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts options, logger *charmlog.Logger) (config.Config, error) {
	cfg := config.Default()
	if opts.config != "" {
		loaded, unknown, err := config.Load(opts.config)
		if err != nil {
			return cfg, err
		}
		for _, k := range unknown {
			logger.Warn("unknown config key", "key", k, "file", opts.config)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("count") {
		cfg.Animation.Curves = opts.count
	}
	if cmd.Flags().Changed("seed") {
		cfg.Animation.Seed = opts.seed
	}
	if opts.chime {
		cfg.Chime.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func writeSVG(path string, cfg config.Config, p spiro.Params, logger *charmlog.Logger) error {
	rec := export.NewRecorder()
	c, err := spiro.NewCurve(rec, p, cfg.Animation.Step)
	if err != nil {
		return err
	}
	c.DrawFull()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rec.WriteSVG(f, cfg.Window.Width, cfg.Window.Height); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("Saved drawing", "path", path, "rotations", c.Rotations())
	return nil
}
