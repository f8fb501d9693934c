package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "docportal/database/repository/booking"
	catalogRepo "docportal/database/repository/catalog"
	"docportal/models"
	"docportal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultService is the production availability resolver.
type DefaultService struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	// Cache is optional; nil disables response caching. Cached entries only
	// shortcut repeat reads and never change results.
	Cache    *redis.Client
	CacheTTL time.Duration
}

func cacheKey(strategy, date string) string {
	return fmt.Sprintf("availability:%s:%s", strategy, date)
}

// InvalidateDate drops cached availability for the given date. Called by the
// admission controller after an accepted booking.
func InvalidateDate(client *redis.Client, date string) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, cacheKey("v1", date), cacheKey("v2", date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("date", date), zap.Error(err))
	}
}

// Resolve computes availability with a client-side join: it fetches the full
// catalog and the date's bookings, then removes each treatment's booked slots
// while preserving the original slot order. An empty date matches no bookings,
// so the full catalog comes back untouched.
func (s *DefaultService) Resolve(date string) ([]models.AvailableOption, error) {
	if cached, ok := s.fromCache("v1", date); ok {
		return cached, nil
	}

	options, err := s.Catalog.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment options: %w", err)
	}

	booked, err := s.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for date %q: %w", date, err)
	}

	available := make([]models.AvailableOption, 0, len(options))
	for _, option := range options {
		taken := make(map[string]bool)
		for _, b := range booked {
			if b.Treatment == option.Name {
				taken[b.Slot] = true
			}
		}

		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if !taken[slot] {
				remaining = append(remaining, slot)
			}
		}

		available = append(available, models.AvailableOption{
			Name:  option.Name,
			Price: option.Price,
			Slots: remaining,
		})
	}

	s.toCache("v1", date, available)
	return available, nil
}

// ResolveAggregated computes availability with the repository's store-side
// aggregation. Results match Resolve for identical inputs.
func (s *DefaultService) ResolveAggregated(date string) ([]models.AvailableOption, error) {
	if cached, ok := s.fromCache("v2", date); ok {
		return cached, nil
	}

	available, err := s.Catalog.GetAvailable(date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve availability for date %q: %w", date, err)
	}

	s.toCache("v2", date, available)
	return available, nil
}

// Specialties lists the distinct treatment names.
func (s *DefaultService) Specialties() ([]string, error) {
	names, err := s.Catalog.DistinctNames()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch treatment names: %w", err)
	}
	return names, nil
}

func (s *DefaultService) fromCache(strategy, date string) ([]models.AvailableOption, bool) {
	if s.Cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	payload, err := s.Cache.Get(ctx, cacheKey(strategy, date)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("availability cache read failed, falling back to store",
				zap.String("date", date), zap.Error(err))
		}
		return nil, false
	}

	var available []models.AvailableOption
	if err := json.Unmarshal([]byte(payload), &available); err != nil {
		return nil, false
	}
	return available, true
}

func (s *DefaultService) toCache(strategy, date string, available []models.AvailableOption) {
	if s.Cache == nil {
		return
	}
	payload, err := json.Marshal(available)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if err := s.Cache.Set(ctx, cacheKey(strategy, date), payload, ttl).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed",
			zap.String("date", date), zap.Error(err))
	}
}
