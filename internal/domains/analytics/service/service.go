package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"staysync/config"
	"staysync/infras/otel"
	"staysync/internal/domains/analytics/model/dto"
	mirrorModel "staysync/internal/domains/mirror/model"
	mirrorRepo "staysync/internal/domains/mirror/repository"
	"staysync/shared"
	"staysync/shared/cache"
	"staysync/shared/constant"
	"staysync/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheDashboard  = "analytics:dashboard"
	cacheCalendar   = "analytics:calendar"
	cacheFinancial  = "analytics:financial"
	cacheOccupancy  = "analytics:occupancy"
	cacheStatistics = "analytics:statistics"
)

// Analytics serves the aggregated read views. Every view reads the mirror
// with a single interval-overlap query and folds in memory; results are
// cached until the next successful sync invalidates them.
type Analytics interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	Calendar(ctx context.Context, from, to time.Time) (dto.CalendarResponse, error)
	FinancialSummary(ctx context.Context, from, to time.Time) (dto.FinancialSummaryResponse, error)
	Occupancy(ctx context.Context, from, to time.Time) (dto.OccupancyResponse, error)
	Statistics(ctx context.Context, from, to time.Time) (dto.StatisticsResponse, error)
}

type serviceImpl struct {
	repo  mirrorRepo.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	now   func() time.Time
}

func New(repo mirrorRepo.Booking, cfg *config.Config, cache cache.RedisCache, otl otel.Otel) Analytics {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otl,
		now:   time.Now,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := dateOnly(s.now())
	cacheKey := shared.BuildCacheKey(cacheDashboard, today.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	bookings, listings, err := s.windowData(ctx, monthStart, monthEnd)
	if err != nil {
		return res, err
	}

	res = BuildDashboard(bookings, len(listings), today)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Calendar(ctx context.Context, from, to time.Time) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to = dateOnly(from), dateOnly(to)
	if err = validateWindow(from, to); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCalendar, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	bookings, err := s.repo.GetOverlapping(ctx, from, to)
	if err != nil {
		return res, fmt.Errorf("loading calendar window: %w", err)
	}

	res = dto.CalendarResponse{
		From: from.Format(constant.DateOnlyFormat),
		To:   to.Format(constant.DateOnlyFormat),
		Days: BuildCalendar(bookings, from, to),
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) FinancialSummary(ctx context.Context, from, to time.Time) (res dto.FinancialSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FinancialSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to = dateOnly(from), dateOnly(to)
	if err = validateWindow(from, to); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheFinancial, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	bookings, listings, err := s.windowData(ctx, from, to)
	if err != nil {
		return res, err
	}

	res = BuildFinancialSummary(bookings, len(listings), from, to)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Occupancy(ctx context.Context, from, to time.Time) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to = dateOnly(from), dateOnly(to)
	if err = validateWindow(from, to); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheOccupancy, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	bookings, listings, err := s.windowData(ctx, from, to)
	if err != nil {
		return res, err
	}

	res = dto.OccupancyResponse{
		From:          from.Format(constant.DateOnlyFormat),
		To:            to.Format(constant.DateOnlyFormat),
		TotalListings: len(listings),
		Days:          BuildOccupancy(bookings, len(listings), from, to),
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Statistics(ctx context.Context, from, to time.Time) (res dto.StatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Statistics")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to = dateOnly(from), dateOnly(to)
	if err = validateWindow(from, to); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheStatistics, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	bookings, err := s.repo.GetOverlapping(ctx, from, to)
	if err != nil {
		return res, fmt.Errorf("loading statistics window: %w", err)
	}

	res = BuildStatistics(bookings, from, to)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

// windowData loads the overlapping bookings plus the unit universe the
// occupancy denominators divide by.
func (s *serviceImpl) windowData(ctx context.Context, from, to time.Time) ([]mirrorModel.UnifiedBooking, []mirrorModel.ListingRef, error) {
	bookings, err := s.repo.GetOverlapping(ctx, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("loading booking window: %w", err)
	}

	listings, err := s.repo.DistinctListings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading listing universe: %w", err)
	}

	return bookings, listings, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save analytics view to cache")
		}
	}()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validateWindow(from, to time.Time) error {
	if to.Before(from) {
		return failure.BadRequestFromString(fmt.Sprintf( // nolint:wrapcheck
			"invalid window: %s is after %s",
			from.Format(constant.DateOnlyFormat),
			to.Format(constant.DateOnlyFormat),
		))
	}

	return nil
}
