package migrations

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type MigratorTestSuite struct {
	suite.Suite
	ctx context.Context
	db  *sql.DB
}

func TestMigratorSuite(t *testing.T) {
	suite.Run(t, new(MigratorTestSuite))
}

func (s *MigratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	db, err := sql.Open("sqlite3", filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.db = db
}

func (s *MigratorTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *MigratorTestSuite) TestBuiltinMigrations() {
	migrator := NewMigrator(s.db, Builtin())

	count, err := migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)

	var name string
	err = s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='round_results'").Scan(&name)
	s.Require().NoError(err)
	s.Equal("round_results", name)

	count, err = migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, count, "Second run has nothing to apply")
}

func (s *MigratorTestSuite) TestOrderAndPending() {
	source := fstest.MapFS{
		"002_add_notes.sql":     {Data: []byte("ALTER TABLE things ADD COLUMN notes TEXT;")},
		"001_create_things.sql": {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
		"README.md":             {Data: []byte("ignored")},
	}
	migrator := NewMigrator(s.db, source)

	loaded, err := migrator.LoadMigrations()
	s.Require().NoError(err)
	s.Require().Len(loaded, 2)
	s.Equal("001", loaded[0].Version)
	s.Equal("create things", loaded[0].Description)

	pending, err := migrator.Pending(s.ctx)
	s.Require().NoError(err)
	s.Len(pending, 2)

	count, err := migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)

	pending, err = migrator.Pending(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *MigratorTestSuite) TestFailedMigrationRollsBack() {
	source := fstest.MapFS{
		"001_broken.sql": {Data: []byte("CREATE TABLE oops (")},
	}
	migrator := NewMigrator(s.db, source)

	_, err := migrator.MigrateUp(s.ctx)
	s.Error(err)

	applied, err := migrator.GetAppliedMigrations(s.ctx)
	s.Require().NoError(err)
	s.Empty(applied)
}

func (s *MigratorTestSuite) TestInvalidFilename() {
	migrator := NewMigrator(s.db, fstest.MapFS{"nounderscore.sql": {Data: []byte("")}})

	_, err := migrator.LoadMigrations()
	s.Error(err)
}

func (s *MigratorTestSuite) TestCreateMigration() {
	dir := filepath.Join(s.T().TempDir(), "sql")

	first, err := CreateMigration(dir, "add players")
	s.Require().NoError(err)
	s.Equal("001_add_players.sql", filepath.Base(first))

	second, err := CreateMigration(dir, "add index")
	s.Require().NoError(err)
	s.Equal("002_add_index.sql", filepath.Base(second))

	content, err := os.ReadFile(second)
	s.Require().NoError(err)
	s.Contains(string(content), "-- Migration: add index")
}
