package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Billboard=MockBillboardService

import (
	"context"
	"fmt"
	"mime/multipart"

	"adboard/config"
	"adboard/infras/otel"
	"adboard/infras/s3"
	"adboard/internal/domains/billboard/model"
	"adboard/internal/domains/billboard/model/dto"
	"adboard/internal/domains/billboard/repository"
	"adboard/shared"
	"adboard/shared/cache"
	"adboard/shared/constant"
	gDto "adboard/shared/dto"
	"adboard/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBillboard    = "billboard:get"
	cacheGetAllBillboard = "billboard:gets"
	cacheCountBillboard  = "billboard:count"

	imageDirectory = "billboards"
)

type Billboard interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBillboardsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BillboardResponse, error)
	Sides(ctx context.Context, billboardID string) ([]model.Side, error)
	UploadImage(ctx context.Context, billboardID string, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadImageResponse, error)
	InvalidateCached(ctx context.Context, billboardID string)
}

type serviceImpl struct {
	repo     repository.Billboard
	sideRepo repository.Side
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Billboard, sideRepo repository.Side, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Billboard {
	return &serviceImpl{
		repo:     repo,
		sideRepo: sideRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBillboardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBillboard, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for billboards")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count billboards")

		return res, fmt.Errorf("failed to count billboards: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get billboards")

		return res, fmt.Errorf("failed to get billboards: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save billboards to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBillboard, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count billboards")

		return res, fmt.Errorf("failed to count billboards: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save billboard count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BillboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBillboard, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for billboard")

		return res, nil
	}

	billboard, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get billboard")

		return res, fmt.Errorf("failed to get billboard: %w", err)
	}

	if billboard.ID == constant.Empty {
		return res, failure.NotFound("billboard not found") // nolint:wrapcheck
	}

	sides, err := s.Sides(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get billboard sides")

		return res, fmt.Errorf("failed to get billboard sides: %w", err)
	}

	res.FromModel(billboard, sides)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save billboard to cache")
		}
	}()

	return res, nil
}

// Sides lists the defined side rows of a billboard. An empty result means a
// one-sided billboard; availability callers substitute the implicit SINGLE side.
func (s *serviceImpl) Sides(ctx context.Context, billboardID string) (res []model.Side, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Sides")
	defer scope.End()
	defer scope.TraceIfError(err)

	sides, err := s.sideRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(billboardID, model.FieldSideBillboardID, model.SideTableName))
	if err != nil {
		return nil, fmt.Errorf("failed to get billboard sides: %w", err)
	}

	return sides, nil
}

// InvalidateCached drops every cached read touching the billboard. Called by
// the booking events consumer when downstream state changes outside a request.
func (s *serviceImpl) InvalidateCached(ctx context.Context, billboardID string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".InvalidateCached")
	defer scope.End()

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBillboard, billboardID)); err != nil {
		log.Error().Err(err).Str("billboardID", billboardID).Msg("failed to delete billboard from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBillboard)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBillboard)
}

func (s *serviceImpl) UploadImage(ctx context.Context, billboardID string, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(billboardID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if billboard exists")

		return res, fmt.Errorf("failed to check if billboard exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("billboard not found") // nolint:wrapcheck
	}

	fileName := uuid.NewString()

	url, err := s.s3.UploadFile(ctx, constant.Empty, imageDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload billboard image")

		return res, fmt.Errorf("failed to upload billboard image: %w", err)
	}

	if err = s.repo.Update(ctx, map[string]any{
		model.FieldImage:         url,
		constant.FieldModifiedBy: user,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to update billboard image")

		return res, fmt.Errorf("failed to update billboard image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBillboard, billboardID)); err != nil {
			log.Error().Err(err).Msg("failed to delete billboard from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBillboard)
	}()

	return dto.UploadImageResponse{URL: url}, nil
}
