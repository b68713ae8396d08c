package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/starfield/asset"
	"github.com/lixenwraith/starfield/audio"
	"github.com/lixenwraith/starfield/config"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/engine"
	"github.com/lixenwraith/starfield/input"
	"github.com/lixenwraith/starfield/render"
)

// Headless surface size and run length when --ticks is not given
const (
	headlessRows  = 24
	headlessCols  = 80
	headlessTicks = 100
)

var errNotTerminal = errors.New("stdout is not a terminal (use --headless)")

var (
	// Global flags
	configPath     string
	tickFlag       time.Duration
	starsFlag      int
	stepFlag       float64
	seedFlag       uint64
	framesFlag     []string
	soundFlag      string
	playerFireFlag bool
	headlessFlag   bool
	ticksFlag      uint64
	debugFlag      bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		core.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfield",
	Short: "Twinkling starfield with a steerable rocket",
	Long: `Fills the terminal with blinking stars, fires a shot from the centre,
and animates a rocket steered with the arrow keys, hjkl or wasd.
Press q or Esc to quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStarfield,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE:  runConfigShow,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.DurationVar(&tickFlag, "tick", 0, "tick interval (default from config)")
	flags.IntVar(&starsFlag, "stars", 0, "number of stars")
	flags.Float64Var(&stepFlag, "step", 0, "ship cells moved per tick of held input")
	flags.Uint64Var(&seedFlag, "seed", 0, "star placement seed (0 = random)")
	flags.StringSliceVar(&framesFlag, "frames", nil, "ship frame files in animation order")
	flags.StringVar(&soundFlag, "sound", "", "fire sound: bell, tone, off")
	flags.BoolVar(&playerFireFlag, "player-fire", false, "let space fire shots from the ship")
	flags.BoolVar(&headlessFlag, "headless", false, "render into memory and print the last frame")
	flags.Uint64Var(&ticksFlag, "ticks", 0, "stop after this many ticks (0 = until quit)")
	flags.BoolVar(&debugFlag, "debug", false, "write debug logs to logs/starfield.log")

	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.Tick = tickFlag
	}
	if flags.Changed("stars") {
		cfg.Stars = starsFlag
	}
	if flags.Changed("step") {
		cfg.Step = stepFlag
	}
	if flags.Changed("seed") {
		cfg.Seed = seedFlag
	}
	if flags.Changed("frames") {
		cfg.Frames = framesFlag
	}
	if flags.Changed("sound") {
		cfg.Sound = strings.ToLower(soundFlag)
	}
	if flags.Changed("player-fire") {
		cfg.PlayerFire = playerFireFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), cfg.String())
	return nil
}

func runStarfield(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if logFile := setupLogging(debugFlag); logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	frames, err := loadFrames(cfg.Frames)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("starting", "seed", seed, "tick", cfg.Tick, "stars", cfg.Stars, "sound", cfg.Sound)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	if headlessFlag {
		return runHeadless(cmd.Context(), cmd.OutOrStdout(), cfg, frames, rng, logger)
	}
	return runTerminal(cmd.Context(), cfg, frames, rng, logger)
}

// loadFrames reads ship frames from disk, or the embedded rocket when none are given
// Paths are resolved against the filesystem root so relative and absolute paths mix freely
func loadFrames(paths []string) ([]asset.Frame, error) {
	if len(paths) == 0 {
		return asset.Defaults()
	}

	root := string(filepath.Separator)
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve frame %s: %w", path, err)
		}
		root = filepath.VolumeName(abs) + string(filepath.Separator)
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			return nil, fmt.Errorf("resolve frame %s: %w", path, err)
		}
		names = append(names, filepath.ToSlash(rel))
	}
	return asset.Load(os.DirFS(root), names...)
}

// runHeadless animates into an in-memory buffer and prints the final frame
func runHeadless(ctx context.Context, out io.Writer, cfg *config.Config, frames []asset.Frame, rng *rand.Rand, logger *slog.Logger) error {
	ticks := ticksFlag
	if ticks == 0 {
		ticks = headlessTicks
	}

	buf := render.NewBuffer(headlessRows, headlessCols)
	game, err := engine.NewGame(cfg, engine.Deps{
		Surface:  buf,
		Notifier: audio.Silent{},
		Frames:   frames,
		Rand:     rng,
		Logger:   logger,
	}, ticks)
	if err != nil {
		return err
	}

	if err := game.Run(ctx); err != nil {
		return err
	}

	for _, line := range buf.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}

// runTerminal owns the tcell screen: input pump, keyboard, and scheduler run under one errgroup
func runTerminal(ctx context.Context, cfg *config.Config, frames []asset.Frame, rng *rand.Rand, logger *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	palette, err := render.NewPalette(cfg.Color)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	restore := sync.OnceFunc(screen.Fini)
	core.RegisterTerminal(restore)
	defer restore()

	render.Decorate(screen)

	notifier, cleanup := selectNotifier(cfg.Sound, screen, logger)
	defer cleanup()

	keyboard := input.NewKeyboard(nil)
	game, err := engine.NewGame(cfg, engine.Deps{
		Surface:  render.NewScreen(screen, palette),
		Input:    keyboard,
		Notifier: notifier,
		Frames:   frames,
		Rand:     rng,
		Logger:   logger,
	}, ticksFlag)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 16)
	g.Go(core.Guard(func() error {
		screen.ChannelEvents(events, gctx.Done())
		return nil
	}))
	g.Go(core.Guard(func() error {
		return keyboard.Run(gctx, events)
	}))
	g.Go(core.Guard(func() error {
		// A tick limit ends the run without a quit key
		defer cancel()
		return game.Run(gctx)
	}))

	err = g.Wait()
	if errors.Is(err, input.ErrQuit) {
		logger.Info("quit requested", "ticks", game.Scheduler().Ticks())
		return nil
	}
	return err
}

// selectNotifier builds the fire notifier; a tone that fails to start falls back to the bell
func selectNotifier(mode string, screen tcell.Screen, logger *slog.Logger) (audio.Notifier, func()) {
	switch mode {
	case config.SoundOff:
		return audio.Silent{}, func() {}
	case config.SoundTone:
		tone := audio.NewTone()
		if err := tone.Initialize(); err != nil {
			logger.Warn("audio unavailable, falling back to bell", "error", err)
			return audio.NewBell(screen), func() {}
		}
		return tone, tone.Cleanup
	default:
		return audio.NewBell(screen), func() {}
	}
}
