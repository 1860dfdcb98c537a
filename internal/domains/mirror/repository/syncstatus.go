package repository

//go:generate go run go.uber.org/mock/mockgen -source=./syncstatus.go -destination=../mocks/syncstatus_mock.go -package=mocks

import (
	"context"

	"staysync/infras/otel"
	"staysync/infras/postgres"
	"staysync/internal/domains/mirror/model"
	gDto "staysync/shared/dto"
	gRepo "staysync/shared/repository"
)

type SyncStatus interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SyncStatus, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SyncStatus, error)
	Upsert(ctx context.Context, model model.SyncStatus) error
}

type syncStatusImpl struct {
	gRepo.Repository[model.SyncStatus]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSyncStatus(db *postgres.Connection, otl otel.Otel) SyncStatus {
	return &syncStatusImpl{
		Repository: gRepo.NewRepository[model.SyncStatus](model.SyncStatusEntityName, model.SyncStatusTableName, model.FieldSyncID, db, otl),
		db:         db,
		otel:       otl,
	}
}
