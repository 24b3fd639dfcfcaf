package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/infras/otel"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	roomTypeRepo "stayhub/internal/domains/roomtype/repository"
	"stayhub/internal/domains/unit/model"
	"stayhub/internal/domains/unit/model/dto"
	"stayhub/internal/domains/unit/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
)

const (
	cacheGetUnit    = "unit:get"
	cacheGetAllUnit = "unit:gets"
	cacheCountUnit  = "unit:count"
)

type Unit interface {
	Create(ctx context.Context, req dto.CreateUnitRequest) (dto.UnitResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUnitsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UnitResponse, error)
	Update(ctx context.Context, req dto.UpdateUnitRequest, id string) error
	SetHousekeepingStatus(ctx context.Context, id, status string) error
}

type serviceImpl struct {
	repo         repository.Unit
	roomTypeRepo roomTypeRepo.RoomType
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Unit, roomTypeRepo roomTypeRepo.RoomType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Unit {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUnitRequest) (res dto.UnitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomType, err := s.roomTypeRepo.Get(ctx,
		shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.BadRequestFromString("room type does not exist") // nolint:wrapcheck
	}

	unit := req.ToModel(user, roomType.HousekeepingDefault)
	if err = s.repo.Insert(ctx, unit); err != nil {
		log.Error().Err(err).Msg("failed to create unit")

		return res, fmt.Errorf("failed to create unit: %w", err)
	}

	res.FromModel(unit)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllUnit)
		shared.InvalidateCaches(c, s.cache, cacheCountUnit)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUnitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUnit, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count units")

		return res, fmt.Errorf("failed to count units: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get units")

		return res, fmt.Errorf("failed to get units: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save units to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountUnit, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count units")

		return res, fmt.Errorf("failed to count units: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save unit count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UnitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUnit, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	unit, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get unit")

		return res, fmt.Errorf("failed to get unit: %w", err)
	}

	if unit.ID == constant.Empty {
		return res, failure.NotFound("unit not found") // nolint:wrapcheck
	}

	res.FromModel(unit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save unit to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUnitRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateUnitRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if unit exists")

		return fmt.Errorf("failed to check if unit exists: %w", err)
	}

	if !exist {
		return failure.NotFound("unit not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update unit")

		return fmt.Errorf("failed to update unit: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// SetHousekeepingStatus is the cleaning-staff entry point. It can race
// with booking-driven assignment; the booking side re-reads the status
// inside its transaction before committing.
func (s *serviceImpl) SetHousekeepingStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetHousekeepingStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidStatus(status) {
		return failure.BadRequestFromString(fmt.Sprintf("unknown housekeeping status %q", status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if unit exists")

		return fmt.Errorf("failed to check if unit exists: %w", err)
	}

	if !exist {
		return failure.NotFound("unit not found") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldHousekeepingStatus: status,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update unit housekeeping status")

		return fmt.Errorf("failed to update unit housekeeping status: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUnit, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete unit from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllUnit)
		shared.InvalidateCaches(c, s.cache, cacheCountUnit)
	}()
}
