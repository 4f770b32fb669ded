package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/hanoisim/internal/bridge"
	"github.com/san-kum/hanoisim/internal/config"
	"github.com/san-kum/hanoisim/internal/generator"
	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/presenter"
	"github.com/san-kum/hanoisim/internal/viz"
)

type runOptions struct {
	configFile string
	preset     string
	display    string
	disks      int
	delay      time.Duration
	handoff    string
	eventTick  time.Duration
}

func (o *runOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.configFile, "config", "", "config file path (yaml)")
	f.StringVar(&o.preset, "preset", "", "use preset configuration")
	f.StringVar(&o.display, "display", config.DefaultDisplay, "display surface: gui, tui or text")
	f.IntVar(&o.disks, "disks", config.DefaultDiskCount, "number of disks")
	f.DurationVar(&o.delay, "delay", config.DefaultMoveDelay, "pause after each move")
	f.StringVar(&o.handoff, "handoff", bridge.ModeSleep.String(), "move handoff: sleep or handshake")
	f.DurationVar(&o.eventTick, "event-tick", 0, "poll close requests on this tick (0 = once per move)")
}

// resolve applies preset, then config file, then explicitly set flags.
func (o *runOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.preset != "" {
		cfg = config.GetPreset(o.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets())
		}
	}
	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("display") {
		cfg.Display = o.display
	}
	if flags.Changed("disks") {
		cfg.DiskCount = o.disks
	}
	if flags.Changed("delay") {
		cfg.MoveDelay = o.delay
	}
	if flags.Changed("handoff") {
		cfg.Handoff = o.handoff
	}
	if flags.Changed("event-tick") {
		cfg.EventTick = o.eventTick
	}
	return cfg, cfg.Validate()
}

func runAnimation(cmd *cobra.Command, opts *runOptions) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}
	display, err := openDisplay(cfg, logger)
	if err != nil {
		return err
	}
	report, err := animate(cmd.Context(), cfg, display, logger)
	if t, ok := display.(*viz.Terminal); ok && err == nil {
		err = t.Err()
	}
	if err != nil {
		return err
	}
	if err := cmd.Context().Err(); err != nil {
		logger.Warn("interrupted", "moves", report.LastIteration(), "frames", report.Frames)
		return err
	}
	logger.Debug("display closed", "state", report.State, "frames", report.Frames)
	return nil
}

// DisplayOpener creates a display for a validated config.
type DisplayOpener func(cfg *config.Config, logger *log.Logger) (presenter.Display, error)

var displays = map[string]DisplayOpener{
	"tui": func(cfg *config.Config, logger *log.Logger) (presenter.Display, error) {
		return viz.NewTerminal(cfg.Title, cfg.TargetFPS), nil
	},
	"text": func(cfg *config.Config, logger *log.Logger) (presenter.Display, error) {
		d := presenter.NewTextDisplay(logger, cfg.TargetFPS)
		d.SetInterval(time.Second / time.Duration(max(cfg.TargetFPS, 1)))
		return d, nil
	},
}

// RegisterDisplay makes a display available to --display. The raylib window
// registers itself from main so this package builds without cgo.
func RegisterDisplay(name string, open DisplayOpener) {
	displays[name] = open
}

// openDisplay fails before any goroutine is started.
func openDisplay(cfg *config.Config, logger *log.Logger) (presenter.Display, error) {
	open, ok := displays[cfg.Display]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not available in this build", config.ErrInvalidDisplay, cfg.Display)
	}
	return open(cfg, logger)
}

// interruptible reports a close request once ctx is done, so an interrupt
// ends the presenter the same way a viewer closing the display does.
type interruptible struct {
	presenter.Display
	ctx context.Context
}

func (d interruptible) PollClose() bool {
	return d.ctx.Err() != nil || d.Display.PollClose()
}

// animate runs the generator on its own goroutine and the presenter on the
// caller's, then joins the generator.
func animate(ctx context.Context, cfg *config.Config, display presenter.Display, logger *log.Logger) (presenter.Report, error) {
	mode, err := cfg.HandoffMode()
	if err != nil {
		return presenter.Report{}, err
	}
	geo := cfg.Geometry()
	board := hanoi.NewBoard(cfg.DiskCount, geo)
	b := bridge.New(mode)

	gen := generator.New(board, b, cfg.MoveDelay)
	gen.SetLogger(logger)

	p := presenter.New(interruptible{Display: display, ctx: ctx}, b, geo)
	p.SetLogger(logger)
	p.SetEventTick(cfg.EventTick)

	initial := board.Snapshot()
	start := time.Now()
	errc := make(chan error, 1)
	go func() { errc <- gen.Run(ctx) }()

	report := p.Run(initial)
	genErr := <-errc
	elapsed(logger, start, "animation finished", "moves", b.Iteration(), "drawn", len(report.Iterations))

	if genErr != nil && !errors.Is(genErr, context.Canceled) {
		return report, genErr
	}
	return report, nil
}
