package repository

//go:generate go run go.uber.org/mock/mockgen -source=./booking.go -destination=../mocks/booking_mock.go -package=mocks

import (
	"context"
	"time"

	"staysync/infras/otel"
	"staysync/infras/postgres"
	"staysync/internal/domains/mirror/model"
	"staysync/shared/constant"
	gDto "staysync/shared/dto"
	"staysync/shared/failure"
	gRepo "staysync/shared/repository"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.UnifiedBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.UnifiedBooking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpsertBulk(ctx context.Context, models []model.UnifiedBooking) error
	GetOverlapping(ctx context.Context, from, to time.Time) ([]model.UnifiedBooking, error)
	DistinctListings(ctx context.Context) ([]model.ListingRef, error)
}

type bookingImpl struct {
	gRepo.Repository[model.UnifiedBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBooking(db *postgres.Connection, otl otel.Otel) Booking {
	return &bookingImpl{
		Repository: gRepo.NewRepository[model.UnifiedBooking](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

// GetOverlapping returns every booking whose stay interval touches
// [from, to], ordered by check-in. The interval test runs against the
// composite (check_out, check_in) index.
func (repo *bookingImpl) GetOverlapping(ctx context.Context, from, to time.Time) (bookings []model.UnifiedBooking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetOverlapping")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT * FROM ` + model.TableName + `
		WHERE check_out >= $1 AND check_in <= $2
		ORDER BY check_in ASC, id ASC`

	err = repo.db.Read.SelectContext(ctx, &bookings, query, from, to)
	if err != nil {
		log.Error().Err(err).Msg("[GetOverlapping] failed to query bookings")
		return nil, failure.InternalError(err)
	}

	return bookings, nil
}

// DistinctListings scans the mirror for the unique listing identities carried
// on bookings. This is the unit universe occupancy math divides by.
func (repo *bookingImpl) DistinctListings(ctx context.Context) (listings []model.ListingRef, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DistinctListings")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT DISTINCT ON (listing_id) listing_id, apartment_code, listing_name
		FROM ` + model.TableName + `
		WHERE listing_id <> ''
		ORDER BY listing_id ASC, updated_at DESC`

	err = repo.db.Read.SelectContext(ctx, &listings, query)
	if err != nil {
		log.Error().Err(err).Msg("[DistinctListings] failed to query listing refs")
		return nil, failure.InternalError(err)
	}

	return listings, nil
}
