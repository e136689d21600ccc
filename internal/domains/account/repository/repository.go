package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotels/infras/otel"
	"ehotels/infras/postgres"
	"ehotels/internal/domains/account/model"
	gDto "ehotels/shared/dto"
	gRepo "ehotels/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Account interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Account) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Account, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Account]
}

func New(db *postgres.Connection, otel otel.Otel) Account {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Account](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
