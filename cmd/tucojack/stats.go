package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fadedpez/tucojack/internal/app"
)

type StatsCmd struct {
	Recent int  `help:"Number of recent rounds to list" default:"10"`
	JSON   bool `help:"Print the summary as JSON"`
}

func (c *StatsCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	closeLog, err := g.setupLogging(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	table, err := app.New(ctx, cfg, app.Options{})
	if err != nil {
		return err
	}
	defer table.Shutdown()

	summary, err := table.Summary(ctx, c.Recent)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Println(table.RenderSummary(summary))
	return nil
}
