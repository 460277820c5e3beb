package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/esimov/ascii-cloth/audio"
	cloth "github.com/esimov/ascii-cloth/cloth-solver"
	"github.com/esimov/ascii-cloth/config"
	"github.com/esimov/ascii-cloth/http"
	"github.com/esimov/ascii-cloth/input"
	"github.com/esimov/ascii-cloth/terminal"
	"github.com/esimov/ascii-cloth/websocket"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Default()
	if err := cfg.LoadEnv(".env"); err != nil {
		return err
	}
	fs := flag.NewFlagSet("ascii-cloth", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal owns the screen, so logs go to a file. Validate only lets
	// an empty log file through for headless runs, which log to stderr.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	}

	c, err := cloth.New(cfg.Grid(), cfg.Settings(), cfg.Timestep)
	if err != nil {
		return err
	}
	if cfg.Headless {
		headless(c, cfg)
		return nil
	}

	screen, err := terminal.NewScreen(cfg.Backend)
	if err != nil {
		return err
	}
	term := terminal.New(screen, c, input.DefaultToggles(cfg.Debounce), cfg.FPS)

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		defer sound.Cleanup()
		term.OnTear = sound.PlayTear
	}

	if cfg.Remote != "" {
		srv, err := http.InitServer(websocket.HttpParams{
			Address: cfg.Remote,
			Prefix:  cfg.Prefix,
			Root:    cfg.Root,
		})
		if err != nil {
			return err
		}
		defer srv.Shutdown(context.Background())
		term.SetRemote(srv.Gestures())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return term.Run(ctx)
}

// headless advances the cloth a fixed number of frames without a terminal
// and logs how much of it survived.
func headless(c *cloth.Cloth, cfg config.Config) {
	var steps int
	for i := 0; i < cfg.Frames; i++ {
		steps += c.Update(cfg.FrameTime)
	}
	s := c.Stats()
	log.Printf("%d frames, %d steps: %d/%d links torn, %d/%d quads visible",
		cfg.Frames, steps, s.DeletedLinks, s.Links, s.VisibleQuads, s.Quads)
}
