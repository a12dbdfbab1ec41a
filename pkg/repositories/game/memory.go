package game

import (
	"context"
	"sync"

	"github.com/fadedpez/tucojack/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of playerID to rounds, oldest first
	playerResults map[string][]*entities.GameResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		playerResults: make(map[string][]*entities.GameResult),
	}
}

// SaveGameResult stores a copy of the round in the player's history
func (r *MemoryRepository) SaveGameResult(ctx context.Context, result *entities.GameResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *result
	r.playerResults[result.PlayerID] = append(r.playerResults[result.PlayerID], &stored)
	return nil
}

// GetPlayerResults retrieves recent rounds for a player, newest first
func (r *MemoryRepository) GetPlayerResults(ctx context.Context, playerID string, limit int) ([]*entities.GameResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.playerResults[playerID]
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}

	results := make([]*entities.GameResult, 0, limit)
	for i := len(history) - 1; i >= 0 && len(results) < limit; i-- {
		result := *history[i]
		results = append(results, &result)
	}
	return results, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
