package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotels/infras/otel"
	"ehotels/infras/postgres"
	"ehotels/internal/domains/hotel/model"
	gDto "ehotels/shared/dto"
	gRepo "ehotels/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Hotel interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Hotel) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](
			model.EntityName, model.TableName, model.FieldID, db, otel,
			gRepo.WithOrderBy(model.TableName+"."+model.FieldHotelName+" ASC, "+model.TableName+"."+model.FieldID+" ASC"),
		),
	}
}
