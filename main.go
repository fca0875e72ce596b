package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"station/app"
	"station/hal"
	"station/internal/buildinfo"
	"station/internal/config"
	"station/scene/choreo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the settings shared by every presenter: environment first,
// then flags.
type options struct {
	config.Config
	section string
}

func (o *options) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.IntVar(&o.Width, "width", o.Width, "Framebuffer width in pixels.")
	f.IntVar(&o.Height, "height", o.Height, "Framebuffer height in pixels.")
	f.IntVar(&o.Scale, "scale", o.Scale, "Window scale factor.")
	f.IntVar(&o.TPS, "tps", o.TPS, "Simulation ticks per second.")
	f.IntVar(&o.Particles, "particles", o.Particles, "Number of floating particles.")
	f.Int64Var(&o.Seed, "seed", o.Seed, "Particle seed (0 = from clock).")
	f.BoolVar(&o.HUD, "hud", o.HUD, "Draw the section bar and key help.")
	f.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level: debug, info, warn, error.")
	f.StringVar(&o.section, "section", "home", "Initial section: home, projects, lost-focus, contact.")
}

func (o *options) appConfig() (app.Config, error) {
	sec, ok := choreo.ParseSection(o.section)
	if !ok {
		return app.Config{}, fmt.Errorf("unknown section %q", o.section)
	}
	return app.Config{
		Particles: o.Particles,
		Seed:      o.Seed,
		TPS:       o.TPS,
		HUD:       o.HUD,
		Section:   sec,
	}, nil
}

func (o *options) logger(w io.Writer) (*slog.Logger, error) {
	level, err := config.Level(o.LogLevel)
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	log.Debug("build", buildinfo.LogAttrs()...)
	return log, nil
}

func newRootCmd() *cobra.Command {
	var opts options
	envErr := config.ParseEnv(&opts.Config)

	root := &cobra.Command{
		Use:   "station",
		Short: "Orbiting space station scene",
		Long: `station renders a space station in a drifting particle field and flies
the camera between named sections.

Keys:
  1-4         Select home, projects, lost focus, contact
  Tab         Next section
  Drag        Orbit (projects, home, lost focus)
  Right-drag  Pan
  Wheel, +/-  Zoom
  h           Toggle HUD
  x           Toggle wireframe
  Esc, q      Quit`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return envErr
		},
		RunE: func(*cobra.Command, []string) error {
			cfg, err := opts.appConfig()
			if err != nil {
				return err
			}
			log, err := opts.logger(os.Stderr)
			if err != nil {
				return err
			}
			return hal.RunWindow(hal.WindowConfig{
				Title:  "Station (" + buildinfo.Short() + ")",
				Width:  opts.Width,
				Height: opts.Height,
				Scale:  opts.Scale,
				TPS:    opts.TPS,
				Logger: log,
			}, app.New(cfg))
		},
	}
	opts.bind(root)

	root.AddCommand(newHeadlessCmd(&opts), newTermCmd(&opts), newVersionCmd())
	return root
}

func newHeadlessCmd(opts *options) *cobra.Command {
	var (
		hz         int
		ticks      uint64
		fast       bool
		schedule   string
		snapshot   string
		tracePath  string
		traceEvery int
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run without a window",
		Long: `headless steps the scene without a display. Use --schedule to script
section changes, --snapshot to keep the last frame and --trace to dump the
camera trajectory as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.appConfig()
			if err != nil {
				return err
			}
			if cfg.Schedule, err = app.ParseSchedule(schedule); err != nil {
				return err
			}
			cfg.TracePath = tracePath
			cfg.TraceEvery = traceEvery
			log, err := opts.logger(os.Stderr)
			if err != nil {
				return err
			}
			if hz <= 0 {
				hz = opts.TPS
			}
			return hal.RunHeadless(cmd.Context(), hal.HeadlessConfig{
				Width:    opts.Width,
				Height:   opts.Height,
				Hz:       hz,
				Ticks:    ticks,
				Fast:     fast,
				Snapshot: snapshot,
				Logger:   log,
			}, app.New(cfg))
		},
	}
	f := cmd.Flags()
	f.IntVar(&hz, "hz", 0, "Tick rate (0 = --tps).")
	f.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks (0 = run until interrupted).")
	f.BoolVar(&fast, "fast", false, "Step as fast as possible instead of in real time.")
	f.StringVar(&schedule, "schedule", "", `Section cues as "frame:section,...", e.g. "120:contact,400:home".`)
	f.StringVar(&snapshot, "snapshot", "", "Write the last frame to this PNG file.")
	f.StringVar(&tracePath, "trace", "", "Write the camera trajectory to this YAML file.")
	f.IntVar(&traceEvery, "trace-every", 10, "Sample the trajectory every N frames.")
	return cmd
}

func newTermCmd(opts *options) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Render into the terminal with half-block cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.appConfig()
			if err != nil {
				return err
			}
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			log, err := opts.logger(w)
			if err != nil {
				return err
			}
			return hal.RunTerminal(cmd.Context(), hal.TerminalConfig{
				TPS:    opts.TPS,
				Logger: log,
			}, app.New(cfg))
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "Append logs to this file (the terminal is busy).")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
