package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fadedpez/tucojack/internal/config"
	"github.com/fadedpez/tucojack/internal/logging"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command. Set flags override the environment.
type Globals struct {
	LogLevel string        `help:"Log level (debug, info, warn, error)" env:"LOG_LEVEL"`
	LogFile  string        `help:"Write logs to this file instead of stderr"`
	Player   string        `help:"Player profile id" env:"PLAYER_ID"`
	Lang     string        `help:"UI language until one is chosen in game (es, en, or a locale like en_US.UTF-8)"`
	Storage  string        `help:"Round history storage (memory, sqlite)"`
	Database string        `help:"SQLite database path"`
	Seed     int64         `help:"Shuffle seed; 0 seeds from the clock"`
	Delay    time.Duration `help:"Pause between dealer cards; negative keeps DEALER_DELAY" default:"-1ns"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play blackjack in the terminal"`
	Stats   StatsCmd         `cmd:"" help:"Show round statistics"`
	Migrate MigrateCmd       `cmd:"" help:"Manage the round history database"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tucojack"),
		kong.Description("Single player blackjack against an automated dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the environment and applies the command line overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if g.Player != "" {
		cfg.PlayerID = g.Player
	}
	if g.Lang != "" {
		cfg.Language = g.Lang
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Storage != "" {
		cfg.StorageType = g.Storage
	}
	if g.Database != "" {
		cfg.DatabasePath = g.Database
	}
	if g.Seed != 0 {
		cfg.RNGSeed = g.Seed
	}
	if g.Delay >= 0 {
		cfg.DealerDelay = g.Delay
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging replaces the default logger. When fallbackFile is set and no
// log file was given, logs go to the data directory so they stay off the table.
func (g *Globals) setupLogging(cfg *config.Config, fallbackFile bool) (func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	path := g.LogFile
	if path == "" && fallbackFile {
		path = filepath.Join(cfg.DataDir, "tucojack.log")
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logging.Default = logging.NewLoggerWithWriter(out, level)
	return closeFn, nil
}
