package repository

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=../mocks/session_repository_mock.go -package=mocks

import (
	"context"

	"adboard/infras/otel"
	"adboard/infras/postgres"
	"adboard/internal/domains/cart/model"
	gDto "adboard/shared/dto"
	gRepo "adboard/shared/repository"
)

type Session interface {
	Insert(ctx context.Context, model model.Session) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Session, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type sessionRepositoryImpl struct {
	gRepo.Repository[model.Session]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSession(db *postgres.Connection, otel otel.Otel) Session {
	return &sessionRepositoryImpl{
		Repository: gRepo.NewRepository[model.Session](model.SessionEntityName, model.SessionTableName, model.FieldSessionID, db, otel),
		db:         db,
		otel:       otel,
	}
}
