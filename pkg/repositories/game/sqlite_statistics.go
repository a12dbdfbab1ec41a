package game

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fadedpez/tucojack/pkg/entities"
)

// GetPlayerStatistics aggregates a player's rounds in the database
func (r *SQLiteRepository) GetPlayerStatistics(ctx context.Context, playerID string) (*entities.PlayerStatistics, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN result IN ('win', 'blackjack') THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN result = 'lose' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN result = 'push' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN result = 'blackjack' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN player_score > 21 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN doubled_down THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(bet), 0),
		       COALESCE(SUM(payout), 0)
		FROM round_results
		WHERE player_id = ?
	`

	stats := &entities.PlayerStatistics{PlayerID: playerID}
	err := r.db.QueryRowContext(ctx, query, playerID).Scan(
		&stats.GamesPlayed, &stats.Wins, &stats.Losses, &stats.Pushes,
		&stats.Blackjacks, &stats.Busts, &stats.DoubleDowns,
		&stats.TotalBet, &stats.TotalWinnings,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get player statistics: %w", err)
	}

	// MAX() drops the column type, so read the timestamp from the newest row
	err = r.db.QueryRowContext(ctx,
		`SELECT completed_at FROM round_results WHERE player_id = ? ORDER BY completed_at DESC LIMIT 1`,
		playerID,
	).Scan(&stats.LastUpdated)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get last round time: %w", err)
	}

	return stats, nil
}
