package catalog

import (
	"context"
	"encoding/json"

	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour               = 60 * 60
	catalogCacheExpire    = oneHour * 12 // catalog entries almost never change
	catalogCacheSizeBytes = 10 * 1024 * 1024
)

//go:generate mockgen -source=service.go -destination=service_mocks_test.go -package=catalog_test

type exercisesRepo interface {
	Get(ctx context.Context, id string) (*Exercise, error)
	ListAll(ctx context.Context) ([]Exercise, error)
}

// Service is the read-through cached catalog lookup used by the
// progression engine's recovery factor. Lookups hit the DB once per
// exercise per cache window.
type Service struct {
	repo  exercisesRepo
	cache *freecache.Cache
}

func NewService(repo exercisesRepo) *Service {
	return &Service{
		repo:  repo,
		cache: freecache.NewCache(catalogCacheSizeBytes),
	}
}

func (s *Service) Exercise(ctx context.Context, exerciseID string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.service.exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := []byte(exerciseID)
	if cachedBytes, cacheErr := s.cache.Get(cacheKey); cacheErr == nil {
		exercise := &Exercise{}
		if unmarshalErr := json.Unmarshal(cachedBytes, exercise); unmarshalErr == nil {
			return exercise, nil
		} else {
			log.Errorf("unmarshal cached exercise type [%s]: %s", exerciseID, unmarshalErr)
		}
	}

	exercise, err := s.repo.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	if exerciseBytes, err := json.Marshal(exercise); err == nil {
		if err := s.cache.Set(cacheKey, exerciseBytes, catalogCacheExpire); err != nil {
			log.Warnf("cache exercise type [%s]: %s", exerciseID, err)
		}
	}

	return exercise, nil
}

func (s *Service) List(ctx context.Context) ([]Exercise, error) {
	return s.repo.ListAll(ctx)
}
