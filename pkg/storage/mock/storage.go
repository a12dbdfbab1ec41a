package mock

import (
	"context"

	"github.com/fadedpez/tucojack/pkg/storage"
	"github.com/stretchr/testify/mock"
)

// Storage is a mock implementation of storage.Storage
type Storage struct {
	mock.Mock
}

func New() *Storage {
	return &Storage{}
}

func (s *Storage) LoadPreferences(ctx context.Context, profileID string) (*storage.Preferences, error) {
	args := s.Called(ctx, profileID)
	if prefs, ok := args.Get(0).(*storage.Preferences); ok {
		return prefs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (s *Storage) SavePreferences(ctx context.Context, profileID string, prefs *storage.Preferences) error {
	args := s.Called(ctx, profileID, prefs)
	return args.Error(0)
}

func (s *Storage) DeletePreferences(ctx context.Context, profileID string) error {
	args := s.Called(ctx, profileID)
	return args.Error(0)
}
