package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/models"
)

// thingRepository is the PostgreSQL-backed implementation of
// [ThingRepository]. Things and reviews are read-only in this service.
type thingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewThingRepository constructs a [ThingRepository] backed by the provided
// database connection and logger.
func NewThingRepository(db *DB, logger *logger.Logger) ThingRepository {
	logger.Debug().Msg("creating thing repository")
	return &thingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *thingRepository) ListThings(ctx context.Context) ([]models.Thing, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectThingsQuery()
	if err != nil {
		log.Err(err).Str("func", "*thingRepository.ListThings").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*thingRepository.ListThings").Msg("error: querying things")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	things := make([]models.Thing, 0)
	for rows.Next() {
		var thing models.Thing
		if err = rows.Scan(&thing.ID, &thing.Title, &thing.Image, &thing.Content, &thing.DateCreated, &thing.AverageReviewRating); err != nil {
			log.Err(err).Str("func", "*thingRepository.ListThings").Msg("error: scanning thing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		things = append(things, thing)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return things, nil
}

// FindThingByID retrieves one thing with its average review rating.
// Returns [ErrThingNotFound] when no row matches.
func (r *thingRepository) FindThingByID(ctx context.Context, thingID int64) (models.Thing, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectThingByIDQuery(thingID)
	if err != nil {
		log.Err(err).Str("func", "*thingRepository.FindThingByID").Msg("error: building select query")
		return models.Thing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var thing models.Thing
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&thing.ID, &thing.Title, &thing.Image, &thing.Content, &thing.DateCreated, &thing.AverageReviewRating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Thing{}, ErrThingNotFound
		}

		log.Err(err).Str("func", "*thingRepository.FindThingByID").Msg("error: querying thing")
		return models.Thing{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return thing, nil
}

func (r *thingRepository) ListThingReviews(ctx context.Context, thingID int64) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectThingReviewsQuery(thingID)
	if err != nil {
		log.Err(err).Str("func", "*thingRepository.ListThingReviews").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*thingRepository.ListThingReviews").Msg("error: querying reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var review models.Review
		if err = rows.Scan(&review.ID, &review.Rating, &review.Text, &review.ThingID, &review.UserName, &review.DateCreated); err != nil {
			log.Err(err).Str("func", "*thingRepository.ListThingReviews").Msg("error: scanning review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reviews = append(reviews, review)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}
