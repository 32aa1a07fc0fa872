package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"arcade-snake/audio"
	"arcade-snake/game"
	"arcade-snake/metrics"
	"arcade-snake/ui"
	ebitenui "arcade-snake/ui/ebiten"
	"arcade-snake/ui/term"

	"golang.org/x/sync/errgroup"
)

const (
	frontendRaylib = "raylib"
	frontendTerm   = "term"
	frontendEbiten = "ebiten"
)

type options struct {
	speed       int
	seed        uint64
	obstacle    bool
	frontend    string
	sound       bool
	metricsAddr string
	debug       bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.IntVar(&opts.speed, "speed", game.DefaultConfig().Speed, "Game speed in ticks per second")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 = time based)")
	fs.BoolVar(&opts.obstacle, "obstacle", true, "Place an obstacle on the grid")
	fs.StringVar(&opts.frontend, "frontend", frontendRaylib, "Frontend: raylib, term, ebiten")
	fs.BoolVar(&opts.sound, "sound", false, "Play sound effects")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to logs/snake.log")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.frontend {
	case frontendRaylib, frontendTerm, frontendEbiten:
	default:
		return opts, fmt.Errorf("unknown frontend %q", opts.frontend)
	}
	return opts, nil
}

func (o options) config() game.Config {
	cfg := game.DefaultConfig()
	cfg.Speed = o.speed
	cfg.Seed = o.seed
	cfg.Obstacle = o.obstacle
	return cfg
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.NewGame(opts.config())
	if err != nil {
		return err
	}

	player := audio.New(opts.sound)
	defer player.Close()
	g.AddObserver(player)

	// The game loop stays on the main goroutine; raylib and ebiten both
	// need it. Side services run in the group.
	eg, egCtx := errgroup.WithContext(ctx)
	if opts.metricsAddr != "" {
		m := metrics.New()
		g.AddObserver(m)
		eg.Go(func() error {
			return m.ListenAndServe(egCtx, opts.metricsAddr)
		})
	}

	runErr := runFrontend(egCtx, opts.frontend, g)
	stop()
	if err := eg.Wait(); err != nil && (runErr == nil || errors.Is(runErr, context.Canceled)) {
		runErr = err
	}

	stats := g.Stats()
	log.Printf("session %s: %d ticks, %d food eaten, best length %d",
		g.UUID, stats.Ticks, stats.FoodEaten, stats.BestLength)

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

func runFrontend(ctx context.Context, name string, g *game.Game) error {
	switch name {
	case frontendTerm:
		t, err := term.New(g.Config())
		if err != nil {
			return err
		}
		defer t.Close()
		return g.Run(ctx, t)
	case frontendEbiten:
		return ebitenui.New(g).Run(ctx)
	default:
		r, err := ui.NewRenderer(g.Config())
		if err != nil {
			return err
		}
		defer r.Close()
		return g.Run(ctx, r)
	}
}
