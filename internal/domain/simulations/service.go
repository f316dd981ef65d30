package simulations

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Save(ctx context.Context, userID, calculator string, input, result json.RawMessage) (Simulation, error) {
	if !ValidCalculator(calculator) {
		return Simulation{}, ErrUnknownCalculator
	}
	sim := Simulation{
		ID:         uuid.NewString(),
		UserID:     userID,
		Calculator: calculator,
		Input:      input,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, sim); err != nil {
		return Simulation{}, err
	}
	return sim, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Simulation, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (Simulation, error) {
	return s.store.FindByID(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.store.Delete(ctx, userID, id)
}
