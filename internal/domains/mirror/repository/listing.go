package repository

//go:generate go run go.uber.org/mock/mockgen -source=./listing.go -destination=../mocks/listing_mock.go -package=mocks

import (
	"context"

	"staysync/infras/otel"
	"staysync/infras/postgres"
	"staysync/internal/domains/mirror/model"
	gDto "staysync/shared/dto"
	gRepo "staysync/shared/repository"
)

type Listing interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Listing, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Listing, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpsertBulk(ctx context.Context, models []model.Listing) error
}

type listingImpl struct {
	gRepo.Repository[model.Listing]
	db   *postgres.Connection
	otel otel.Otel
}

func NewListing(db *postgres.Connection, otl otel.Otel) Listing {
	return &listingImpl{
		Repository: gRepo.NewRepository[model.Listing](model.ListingEntityName, model.ListingTableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}
