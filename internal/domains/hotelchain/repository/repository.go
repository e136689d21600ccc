package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotels/infras/otel"
	"ehotels/infras/postgres"
	"ehotels/internal/domains/hotelchain/model"
	gDto "ehotels/shared/dto"
	gRepo "ehotels/shared/repository"
)

type HotelChain interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HotelChain, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.HotelChain]
}

func New(db *postgres.Connection, otel otel.Otel) HotelChain {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HotelChain](
			model.EntityName, model.TableName, model.FieldID, db, otel,
			gRepo.WithOrderBy(model.TableName+"."+model.FieldChainName+" ASC"),
		),
	}
}
