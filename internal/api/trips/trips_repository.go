package trips

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

var _ Repository = (*PostgresTripsRepo)(nil)

// DB is the subset of pgxpool.Pool the repository needs. Tests swap in a
// pgxmock pool through it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository interface {
	SaveDestination(ctx context.Context, dest *types.SavedDestination) (uuid.UUID, error)
	GetSavedDestinations(ctx context.Context, userID uuid.UUID) ([]types.SavedDestination, error)
	DeleteSavedDestination(ctx context.Context, userID, destinationID uuid.UUID) error
	AddTravelHistory(ctx context.Context, entry *types.TravelHistoryEntry) (uuid.UUID, error)
	GetTravelHistory(ctx context.Context, userID uuid.UUID) ([]types.TravelHistoryEntry, error)
}

type PostgresTripsRepo struct {
	logger *slog.Logger
	pgpool DB
}

func NewPostgresTripsRepo(pgpool DB, logger *slog.Logger) *PostgresTripsRepo {
	return &PostgresTripsRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresTripsRepo) SaveDestination(ctx context.Context, dest *types.SavedDestination) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pgpool.QueryRow(ctx,
		`INSERT INTO saved_destinations (user_id, city, country, score, travel_type, description, ideal_time)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
         RETURNING id`,
		dest.UserID, dest.City, dest.Country, dest.Score, dest.TravelType, dest.Description, dest.IdealTime).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("save destination: db insert failed: %w", err)
	}
	return id, nil
}

func (r *PostgresTripsRepo) GetSavedDestinations(ctx context.Context, userID uuid.UUID) ([]types.SavedDestination, error) {
	rows, err := r.pgpool.Query(ctx,
		`SELECT id, user_id, city, country, score, travel_type, description, ideal_time, created_at
         FROM saved_destinations
         WHERE user_id = $1
         ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("get saved destinations: query failed: %w", err)
	}
	defer rows.Close()

	var out []types.SavedDestination
	for rows.Next() {
		var d types.SavedDestination
		if err := rows.Scan(&d.ID, &d.UserID, &d.City, &d.Country, &d.Score,
			&d.TravelType, &d.Description, &d.IdealTime, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("get saved destinations: scan failed: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get saved destinations: rows iteration failed: %w", err)
	}
	return out, nil
}

func (r *PostgresTripsRepo) DeleteSavedDestination(ctx context.Context, userID, destinationID uuid.UUID) error {
	tag, err := r.pgpool.Exec(ctx,
		`DELETE FROM saved_destinations WHERE id = $1 AND user_id = $2`,
		destinationID, userID)
	if err != nil {
		return fmt.Errorf("delete saved destination: db delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("saved destination not found: %w", types.ErrNotFound)
	}
	return nil
}

func (r *PostgresTripsRepo) AddTravelHistory(ctx context.Context, entry *types.TravelHistoryEntry) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pgpool.QueryRow(ctx,
		`INSERT INTO travel_history (user_id, destination, travel_type, budget, start_date, end_date)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING id`,
		entry.UserID, entry.Destination, entry.TravelType, entry.Budget, entry.StartDate, entry.EndDate).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("add travel history: db insert failed: %w", err)
	}
	return id, nil
}

func (r *PostgresTripsRepo) GetTravelHistory(ctx context.Context, userID uuid.UUID) ([]types.TravelHistoryEntry, error) {
	rows, err := r.pgpool.Query(ctx,
		`SELECT id, user_id, destination, travel_type, budget, start_date, end_date, created_at
         FROM travel_history
         WHERE user_id = $1
         ORDER BY created_at DESC`,
		userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get travel history: query failed: %w", err)
	}
	defer rows.Close()

	var out []types.TravelHistoryEntry
	for rows.Next() {
		var e types.TravelHistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Destination, &e.TravelType,
			&e.Budget, &e.StartDate, &e.EndDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("get travel history: scan failed: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get travel history: rows iteration failed: %w", err)
	}
	return out, nil
}
