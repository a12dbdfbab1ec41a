package game

import (
	"context"

	"github.com/fadedpez/tucojack/pkg/entities"
)

// GetPlayerStatistics folds every stored round of a player into statistics
func (r *MemoryRepository) GetPlayerStatistics(ctx context.Context, playerID string) (*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entities.PlayerStatistics{PlayerID: playerID}
	for _, result := range r.playerResults[playerID] {
		stats.Add(result)
	}
	return stats, nil
}
