package service

import (
	"context"

	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/internal/store"
	"github.com/thingfulapp/thingful-server/models"
)

// thingService is a thin read-only facade over the ThingRepository.
type thingService struct {
	thingRepository store.ThingRepository
	logger          *logger.Logger
}

func NewThingService(thingRepository store.ThingRepository, logger *logger.Logger) ThingService {
	return &thingService{
		thingRepository: thingRepository,
		logger:          logger,
	}
}

func (s *thingService) ListThings(ctx context.Context) ([]models.Thing, error) {
	return s.thingRepository.ListThings(ctx)
}

func (s *thingService) GetThing(ctx context.Context, thingID int64) (models.Thing, error) {
	return s.thingRepository.FindThingByID(ctx, thingID)
}

func (s *thingService) ListThingReviews(ctx context.Context, thingID int64) ([]models.Review, error) {
	// listing reviews of a missing thing is a not-found, not an empty list
	if _, err := s.thingRepository.FindThingByID(ctx, thingID); err != nil {
		return nil, err
	}

	return s.thingRepository.ListThingReviews(ctx, thingID)
}
