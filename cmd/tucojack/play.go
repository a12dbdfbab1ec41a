package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fadedpez/tucojack/internal/app"
	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/internal/tui"
	"github.com/fadedpez/tucojack/pkg/services/sound"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
)

const clearScreen = "\033[H\033[2J"

var errQuit = errors.New("quit")

type PlayCmd struct {
	NoBell  bool `help:"Do not ring the terminal bell"`
	NoColor bool `help:"Render without colors"`
	Plain   bool `help:"Read whole lines from stdin instead of single key presses"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	closeLog, err := g.setupLogging(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := app.Options{}
	if !c.NoBell {
		opts.Sound = sound.NewBellBackend(os.Stdout)
	}

	table, err := app.New(ctx, cfg, opts)
	if err != nil {
		return err
	}
	logging.Default.Info("[PLAY] Table open for %s (storage=%s, dealer delay=%s)", cfg.PlayerID, cfg.StorageType, cfg.DealerDelay)

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	view, err := table.View(ctx)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	keys := make(chan string, 16)

	if c.Plain {
		var screen sync.Mutex
		draw := func(view string) {
			screen.Lock()
			defer screen.Unlock()
			fmt.Fprint(os.Stdout, clearScreen+view+"\n> ")
		}
		table.OnRender(draw)
		draw(view)
		go readKeys(os.Stdin, keys)
	} else {
		program := tea.NewProgram(tui.New(view, keys), tea.WithAltScreen(), tea.WithContext(groupCtx))
		table.OnRender(func(view string) {
			program.Send(tui.ViewMsg(view))
		})
		group.Go(func() error {
			_, err := program.Run()
			if err == nil || errors.Is(err, tea.ErrProgramKilled) {
				return errQuit
			}
			return err
		})
	}

	group.Go(func() error {
		return inputLoop(groupCtx, table, keys)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		return table.Shutdown()
	})

	err = group.Wait()
	fmt.Fprintln(os.Stdout)
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func inputLoop(ctx context.Context, table *app.App, keys <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case key, ok := <-keys:
			if !ok {
				return errQuit
			}
			quit, err := table.Handle(ctx, key)
			if err != nil {
				logging.Default.Error("[PLAY] %v", err)
			}
			if quit {
				return errQuit
			}
		}
	}
}

// readKeys sends every character typed on a line as its own key
func readKeys(in io.Reader, keys chan<- string) {
	defer close(keys)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		// "bet 250" picks a wager in one go
		if app.IsBetCommand(line) {
			keys <- line
			continue
		}
		for _, r := range line {
			keys <- string(r)
		}
	}
}
