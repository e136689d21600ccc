package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotels/infras/otel"
	"ehotels/infras/postgres"
	"ehotels/internal/domains/customer/model"
	gDto "ehotels/shared/dto"
	gRepo "ehotels/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Customer interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Customer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](
			model.EntityName, model.TableName, model.FieldID, db, otel,
			gRepo.WithOrderBy(model.TableName+"."+model.FieldFullName+" ASC, "+model.TableName+"."+model.FieldID+" ASC"),
		),
	}
}
