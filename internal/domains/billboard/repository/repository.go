package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"adboard/infras/otel"
	"adboard/infras/postgres"
	"adboard/internal/domains/billboard/model"
	gDto "adboard/shared/dto"
	gRepo "adboard/shared/repository"
)

type Billboard interface {
	Insert(ctx context.Context, model model.Billboard) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Billboard, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Billboard, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Billboard]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Billboard {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Billboard](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
