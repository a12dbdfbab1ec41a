package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadedpez/tucojack/pkg/db/migrations"
	"github.com/fadedpez/tucojack/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

const roundColumns = `round_id, player_id, result, bet, payout, player_score, dealer_score,
	player_cards, dealer_cards, doubled_down, balance_after, completed_at`

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dbPath and applies pending migrations
func NewSQLiteRepository(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	migrator := migrations.NewMigrator(db, migrations.Builtin())
	if _, err := migrator.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveGameResult stores a resolved round
func (r *SQLiteRepository) SaveGameResult(ctx context.Context, result *entities.GameResult) error {
	playerCards, err := json.Marshal(result.PlayerCards)
	if err != nil {
		return fmt.Errorf("error marshaling player cards: %w", err)
	}
	dealerCards, err := json.Marshal(result.DealerCards)
	if err != nil {
		return fmt.Errorf("error marshaling dealer cards: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO round_results (`+roundColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.RoundID,
		result.PlayerID,
		string(result.Result),
		result.Bet,
		result.Payout,
		result.PlayerScore,
		result.DealerScore,
		string(playerCards),
		string(dealerCards),
		result.DoubledDown,
		result.BalanceAfter,
		result.CompletedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("error saving round %s: %w", result.RoundID, err)
	}
	return nil
}

// GetPlayerResults retrieves recent rounds for a player, newest first
func (r *SQLiteRepository) GetPlayerResults(ctx context.Context, playerID string, limit int) ([]*entities.GameResult, error) {
	query := `SELECT ` + roundColumns + ` FROM round_results WHERE player_id = ? ORDER BY completed_at DESC`
	args := []interface{}{playerID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying rounds: %w", err)
	}
	defer rows.Close()

	results := make([]*entities.GameResult, 0)
	for rows.Next() {
		result, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rounds: %w", err)
	}
	return results, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRound(rows *sql.Rows) (*entities.GameResult, error) {
	var (
		result      entities.GameResult
		outcome     string
		playerCards string
		dealerCards string
	)

	err := rows.Scan(
		&result.RoundID,
		&result.PlayerID,
		&outcome,
		&result.Bet,
		&result.Payout,
		&result.PlayerScore,
		&result.DealerScore,
		&playerCards,
		&dealerCards,
		&result.DoubledDown,
		&result.BalanceAfter,
		&result.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning round: %w", err)
	}

	result.Result = entities.Result(outcome)
	if err := json.Unmarshal([]byte(playerCards), &result.PlayerCards); err != nil {
		return nil, fmt.Errorf("error unmarshaling player cards: %w", err)
	}
	if err := json.Unmarshal([]byte(dealerCards), &result.DealerCards); err != nil {
		return nil, fmt.Errorf("error unmarshaling dealer cards: %w", err)
	}
	return &result, nil
}
