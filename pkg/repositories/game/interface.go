package game

import (
	"context"

	"github.com/fadedpez/tucojack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_game

// Repository defines storage operations for finished rounds
type Repository interface {
	// SaveGameResult records a resolved round
	SaveGameResult(ctx context.Context, result *entities.GameResult) error

	// GetPlayerResults returns up to limit rounds of a player, newest first.
	// A limit of zero or less returns every round.
	GetPlayerResults(ctx context.Context, playerID string, limit int) ([]*entities.GameResult, error)

	// GetPlayerStatistics aggregates every recorded round of a player
	GetPlayerStatistics(ctx context.Context, playerID string) (*entities.PlayerStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
