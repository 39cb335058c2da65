package trips

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	SaveDestination(ctx context.Context, dest *types.SavedDestination) (uuid.UUID, error)
	GetSavedDestinations(ctx context.Context, userID uuid.UUID) ([]types.SavedDestination, error)
	DeleteSavedDestination(ctx context.Context, userID, destinationID uuid.UUID) error
	AddTravelHistory(ctx context.Context, entry *types.TravelHistoryEntry) (uuid.UUID, error)
	GetTravelHistory(ctx context.Context, userID uuid.UUID) ([]types.TravelHistoryEntry, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) SaveDestination(ctx context.Context, dest *types.SavedDestination) (uuid.UUID, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "SaveDestination")
	defer span.End()

	l := s.logger.With(slog.String("method", "SaveDestination"), slog.String("userID", dest.UserID.String()))

	if dest.City == "" {
		return uuid.Nil, types.NewValidationError("city", "city is required")
	}

	id, err := s.repo.SaveDestination(ctx, dest)
	if err != nil {
		l.ErrorContext(ctx, "Failed to save destination", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to save destination")
		return uuid.Nil, err
	}

	l.InfoContext(ctx, "Destination saved", slog.String("city", dest.City))
	span.SetStatus(codes.Ok, "Destination saved")
	return id, nil
}

func (s *ServiceImpl) GetSavedDestinations(ctx context.Context, userID uuid.UUID) ([]types.SavedDestination, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "GetSavedDestinations")
	defer span.End()

	dests, err := s.repo.GetSavedDestinations(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch saved destinations")
		return nil, err
	}
	span.SetStatus(codes.Ok, "Saved destinations fetched")
	return dests, nil
}

func (s *ServiceImpl) DeleteSavedDestination(ctx context.Context, userID, destinationID uuid.UUID) error {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "DeleteSavedDestination")
	defer span.End()

	if err := s.repo.DeleteSavedDestination(ctx, userID, destinationID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete saved destination")
		return err
	}
	span.SetStatus(codes.Ok, "Saved destination deleted")
	return nil
}

func (s *ServiceImpl) AddTravelHistory(ctx context.Context, entry *types.TravelHistoryEntry) (uuid.UUID, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "AddTravelHistory")
	defer span.End()

	l := s.logger.With(slog.String("method", "AddTravelHistory"), slog.String("userID", entry.UserID.String()))

	if entry.Destination == "" {
		return uuid.Nil, types.NewValidationError("destination", "destination is required")
	}
	if entry.EndDate.Before(entry.StartDate) {
		return uuid.Nil, types.NewValidationError("end_date", "end_date must not be before start_date")
	}

	id, err := s.repo.AddTravelHistory(ctx, entry)
	if err != nil {
		l.ErrorContext(ctx, "Failed to add travel history", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to add travel history")
		return uuid.Nil, err
	}

	l.InfoContext(ctx, "Travel history recorded", slog.String("destination", entry.Destination))
	span.SetStatus(codes.Ok, "Travel history recorded")
	return id, nil
}

func (s *ServiceImpl) GetTravelHistory(ctx context.Context, userID uuid.UUID) ([]types.TravelHistoryEntry, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "GetTravelHistory")
	defer span.End()

	entries, err := s.repo.GetTravelHistory(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch travel history")
		return nil, err
	}
	span.SetStatus(codes.Ok, "Travel history fetched")
	return entries, nil
}
