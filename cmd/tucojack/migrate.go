package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fadedpez/tucojack/internal/config"
	"github.com/fadedpez/tucojack/pkg/db/migrations"
	_ "github.com/mattn/go-sqlite3"
)

type MigrateCmd struct {
	Up     MigrateUpCmd     `cmd:"" default:"1" help:"Apply pending migrations"`
	Status MigrateStatusCmd `cmd:"" help:"List pending migrations"`
	Create MigrateCreateCmd `cmd:"" help:"Create a new migration file"`
}

type MigrateUpCmd struct {
	Dir string `help:"Read migrations from this directory instead of the built in set"`
}

func (c *MigrateUpCmd) Run(g *Globals) error {
	migrator, closeFn, err := openMigrator(g, c.Dir)
	if err != nil {
		return err
	}
	defer closeFn()

	count, err := migrator.MigrateUp(context.Background())
	if err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	fmt.Printf("Applied %d migration(s)\n", count)
	return nil
}

type MigrateStatusCmd struct {
	Dir string `help:"Read migrations from this directory instead of the built in set"`
}

func (c *MigrateStatusCmd) Run(g *Globals) error {
	migrator, closeFn, err := openMigrator(g, c.Dir)
	if err != nil {
		return err
	}
	defer closeFn()

	pending, err := migrator.Pending(context.Background())
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("Database is up to date")
		return nil
	}
	for _, migration := range pending {
		fmt.Printf("pending  %s  %s\n", migration.Version, migration.Description)
	}
	return nil
}

type MigrateCreateCmd struct {
	Description string `arg:"" help:"What the migration does"`
	Dir         string `help:"Directory to store migrations" default:"pkg/db/migrations/sql"`
}

func (c *MigrateCreateCmd) Run() error {
	path, err := migrations.CreateMigration(c.Dir, c.Description)
	if err != nil {
		return fmt.Errorf("error creating migration: %w", err)
	}
	fmt.Printf("Created migration file: %s\n", path)
	return nil
}

// openMigrator opens the configured database. The returned func closes the
// database and the log file.
func openMigrator(g *Globals, dir string) (*migrations.Migrator, func(), error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	closeLog, err := g.setupLogging(cfg, false)
	if err != nil {
		return nil, nil, err
	}

	if cfg.StorageType != config.StorageSQLite && g.Database == "" {
		fmt.Fprintf(os.Stderr, "note: STORAGE_TYPE is %s, migrating %s anyway\n", cfg.StorageType, cfg.DatabasePath)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("error opening database: %w", err)
	}

	var source fs.FS = migrations.Builtin()
	if dir != "" {
		source = os.DirFS(dir)
	}
	closeFn := func() {
		_ = db.Close()
		closeLog()
	}
	return migrations.NewMigrator(db, source), closeFn, nil
}
