package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotels/infras/otel"
	"ehotels/infras/postgres"
	"ehotels/internal/domains/rental/model"
	gRepo "ehotels/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Rental interface {
	InsertReturningIDTx(ctx context.Context, tx *sqlx.Tx, model model.Rental) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rental]
}

func New(db *postgres.Connection, otel otel.Otel) Rental {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rental](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
