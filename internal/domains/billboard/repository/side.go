package repository

//go:generate go run go.uber.org/mock/mockgen -source=./side.go -destination=../mocks/side_repository_mock.go -package=mocks

import (
	"context"

	"adboard/infras/otel"
	"adboard/infras/postgres"
	"adboard/internal/domains/billboard/model"
	gDto "adboard/shared/dto"
	gRepo "adboard/shared/repository"
)

type Side interface {
	Insert(ctx context.Context, model model.Side) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Side, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type sideRepositoryImpl struct {
	gRepo.Repository[model.Side]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSide(db *postgres.Connection, otel otel.Otel) Side {
	return &sideRepositoryImpl{
		Repository: gRepo.NewRepository[model.Side](model.SideEntityName, model.SideTableName, model.FieldSideID, db, otel),
		db:         db,
		otel:       otel,
	}
}
