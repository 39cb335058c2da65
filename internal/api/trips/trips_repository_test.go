package trips

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

func newMockRepo(t *testing.T) (*PostgresTripsRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return NewPostgresTripsRepo(mockPool, slog.Default()), mockPool
}

func TestSaveDestination(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	userID := uuid.New()
	newID := uuid.New()
	mockPool.ExpectQuery("INSERT INTO saved_destinations").
		WithArgs(userID, "Lisbon", "Portugal", 0.87, "beaches", "Sunny capital", "Best time: May to September").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(newID))

	id, err := repo.SaveDestination(context.Background(), &types.SavedDestination{
		UserID:      userID,
		City:        "Lisbon",
		Country:     "Portugal",
		Score:       0.87,
		TravelType:  "beaches",
		Description: "Sunny capital",
		IdealTime:   "Best time: May to September",
	})

	require.NoError(t, err)
	assert.Equal(t, newID, id)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestGetSavedDestinations(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	userID := uuid.New()
	destID := uuid.New()
	createdAt := time.Now()
	mockPool.ExpectQuery("SELECT (.+) FROM saved_destinations").
		WithArgs(userID).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "user_id", "city", "country", "score", "travel_type", "description", "ideal_time", "created_at"}).
			AddRow(destID, userID, "Lisbon", "Portugal", 0.87, "beaches", "Sunny capital", "Best time: May to September", createdAt))

	dests, err := repo.GetSavedDestinations(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, dests, 1)
	assert.Equal(t, "Lisbon", dests[0].City)
	assert.Equal(t, destID, dests[0].ID)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestDeleteSavedDestination(t *testing.T) {
	repo, mockPool := newMockRepo(t)
	userID := uuid.New()
	destID := uuid.New()

	t.Run("Deletes", func(t *testing.T) {
		mockPool.ExpectExec("DELETE FROM saved_destinations").
			WithArgs(destID, userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteSavedDestination(context.Background(), userID, destID))
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPool.ExpectExec("DELETE FROM saved_destinations").
			WithArgs(destID, userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteSavedDestination(context.Background(), userID, destID)
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestAddTravelHistory(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	userID := uuid.New()
	newID := uuid.New()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery("INSERT INTO travel_history").
		WithArgs(userID, "Lisbon", "beaches", "low", start, end).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(newID))

	id, err := repo.AddTravelHistory(context.Background(), &types.TravelHistoryEntry{
		UserID:      userID,
		Destination: "Lisbon",
		TravelType:  "beaches",
		Budget:      "low",
		StartDate:   start,
		EndDate:     end,
	})

	require.NoError(t, err)
	assert.Equal(t, newID, id)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestGetTravelHistoryEmpty(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	userID := uuid.New()
	mockPool.ExpectQuery("SELECT (.+) FROM travel_history").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "destination", "travel_type", "budget", "start_date", "end_date", "created_at"}))

	entries, err := repo.GetTravelHistory(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
