package simulations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Insert(ctx context.Context, sim Simulation) error {
	_, err := s.pool.Exec(ctx, `
    INSERT INTO simulations (id, user_id, calculator, input, result, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
  `, sim.ID, sim.UserID, sim.Calculator, sim.Input, sim.Result, sim.CreatedAt)
	return err
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]Simulation, error) {
	rows, err := s.pool.Query(ctx, `
    SELECT id, calculator, input, result, created_at
    FROM simulations
    WHERE user_id = $1
    ORDER BY created_at DESC
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sims []Simulation
	for rows.Next() {
		sim := Simulation{UserID: userID}
		if err := rows.Scan(&sim.ID, &sim.Calculator, &sim.Input, &sim.Result, &sim.CreatedAt); err != nil {
			return nil, err
		}
		sims = append(sims, sim)
	}
	return sims, rows.Err()
}

func (s *Store) FindByID(ctx context.Context, userID, id string) (Simulation, error) {
	sim := Simulation{UserID: userID}
	err := s.pool.QueryRow(ctx, `
    SELECT id, calculator, input, result, created_at
    FROM simulations
    WHERE user_id = $1 AND id = $2
  `, userID, id).Scan(&sim.ID, &sim.Calculator, &sim.Input, &sim.Result, &sim.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Simulation{}, ErrNotFound
	}
	if err != nil {
		return Simulation{}, err
	}
	return sim, nil
}

func (s *Store) Delete(ctx context.Context, userID, id string) error {
	tag, err := s.pool.Exec(ctx, `
    DELETE FROM simulations
    WHERE user_id = $1 AND id = $2
  `, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
