package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-planner/internal/domain"
	"itinerary-planner/internal/platform/obs"
	"itinerary-planner/internal/ports"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cityKeyPrefix = "city:"
	categoriesKey = "categories"
)

// RedisCitySource is a read-through cache in front of another CitySource.
// Redis failures never fail a request: they are logged and the wrapped
// source is used instead.
type RedisCitySource struct {
	client *redis.Client
	next   ports.CitySource
	ttl    time.Duration
	logger *zap.Logger
}

var _ ports.CategoryLister = (*RedisCitySource)(nil)

func NewRedisCitySource(client *redis.Client, next ports.CitySource, ttl time.Duration, logger *zap.Logger) (*RedisCitySource, error) {
	if client == nil {
		return nil, errors.New("redis city source: client is nil")
	}
	if next == nil {
		return nil, errors.New("redis city source: next source is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RedisCitySource{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func cityKey(cityID int) string {
	return cityKeyPrefix + strconv.Itoa(cityID)
}

func (s *RedisCitySource) GetCity(ctx context.Context, cityID int) (_ *domain.City, err error) {
	defer obs.Time(ctx, "cache.GetCity")(&err)

	key := cityKey(cityID)

	raw, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var entry cityEntry
		jerr := json.Unmarshal(raw, &entry)
		if jerr == nil {
			s.logger.Debug("city cache hit", zap.Int("city_id", cityID))
			return entry.toDomain(), nil
		}
		s.logger.Warn("city cache entry corrupt", zap.String("key", key), zap.Error(jerr))
	case errors.Is(err, redis.Nil):
		s.logger.Debug("city cache miss", zap.Int("city_id", cityID))
	default:
		s.logger.Warn("city cache read failed", zap.String("key", key), zap.Error(err))
	}

	city, err := s.next.GetCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("redis city source: %w", err)
	}

	payload, merr := json.Marshal(newCityEntry(city))
	if merr != nil {
		s.logger.Warn("city cache encode failed", zap.Int("city_id", cityID), zap.Error(merr))
		return city, nil
	}
	if werr := s.client.Set(ctx, key, payload, s.ttl).Err(); werr != nil {
		s.logger.Warn("city cache write failed", zap.String("key", key), zap.Error(werr))
	}

	return city, nil
}

// ListCategories caches the wrapped source's categories. Returns an empty
// list when the wrapped source cannot list categories.
func (s *RedisCitySource) ListCategories(ctx context.Context) ([]string, error) {
	lister, ok := s.next.(ports.CategoryLister)
	if !ok {
		return []string{}, nil
	}

	raw, err := s.client.Get(ctx, categoriesKey).Bytes()
	if err == nil {
		var categories []string
		if jerr := json.Unmarshal(raw, &categories); jerr == nil {
			return categories, nil
		}
		s.logger.Warn("categories cache entry corrupt", zap.String("key", categoriesKey))
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("categories cache read failed", zap.Error(err))
	}

	categories, err := lister.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("redis city source: list categories: %w", err)
	}

	if payload, merr := json.Marshal(categories); merr == nil {
		if werr := s.client.Set(ctx, categoriesKey, payload, s.ttl).Err(); werr != nil {
			s.logger.Warn("categories cache write failed", zap.Error(werr))
		}
	}

	return categories, nil
}
