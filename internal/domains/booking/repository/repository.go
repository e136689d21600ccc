package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotels/infras/otel"
	"ehotels/infras/postgres"
	"ehotels/internal/domains/booking/model"
	gDto "ehotels/shared/dto"
	gRepo "ehotels/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	ExistTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
}

// BookingDetail reads bookings joined with their hotel and customer.
type BookingDetail interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type detailRepositoryImpl struct {
	gRepo.Repository[model.BookingDetail]
}

func NewDetail(db *postgres.Connection, otel otel.Otel) BookingDetail {
	return &detailRepositoryImpl{
		Repository: gRepo.NewRepository[model.BookingDetail](
			model.EntityName, model.TableName, model.FieldID, db, otel,
			gRepo.WithOrderBy(model.TableName+"."+model.FieldCheckInDate+" ASC, "+model.TableName+"."+model.FieldID+" ASC"),
		),
	}
}
