package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"staysync/config"
	"staysync/infras/hostaway"
	"staysync/infras/otel"
	"staysync/internal/domains/mirror/model"
	"staysync/internal/domains/mirror/model/dto"
	"staysync/internal/domains/mirror/repository"
	"staysync/internal/domains/sync/queue"
	"staysync/internal/domains/sync/resolver"
	"staysync/shared"
	"staysync/shared/cache"
	"staysync/shared/constant"
	"staysync/shared/timezone"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// upsertChunkSize bounds the parameter count of a single bulk statement.
const upsertChunkSize = 200

type Sync interface {
	Trigger(ctx context.Context) error
	RunAll(ctx context.Context)
	RunBookings(ctx context.Context) error
	RunProperties(ctx context.Context) error
	Status(ctx context.Context) ([]dto.SyncStatusResponse, error)
}

type serviceImpl struct {
	client      hostaway.Hostaway
	repo        repository.Booking
	listingRepo repository.Listing
	tracker     *Tracker
	queue       *queue.Queue
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	client hostaway.Hostaway,
	repo repository.Booking,
	listingRepo repository.Listing,
	tracker *Tracker,
	cfg *config.Config,
	cache cache.RedisCache,
	otl otel.Otel,
) Sync {
	return &serviceImpl{
		client:      client,
		repo:        repo,
		listingRepo: listingRepo,
		tracker:     tracker,
		queue:       queue.New(cfg.Sync.QueueConcurrency, time.Duration(cfg.Sync.BatchDelayMs)*time.Millisecond),
		cfg:         cfg,
		cache:       cache,
		otel:        otl,
	}
}

// Status reports the sync ledger for every synced domain.
func (s *serviceImpl) Status(ctx context.Context) (res []dto.SyncStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	domains := []string{constant.SyncDomainBookings, constant.SyncDomainProperties}

	res = make([]dto.SyncStatusResponse, 0, len(domains))
	for _, domain := range domains {
		record, err := s.tracker.Status(ctx, domain)
		if err != nil {
			return nil, errors.Wrapf(err, "reading sync status for %s", domain)
		}

		var item dto.SyncStatusResponse
		item.FromModel(record)
		res = append(res, item)
	}

	return res, nil
}

// Trigger claims the bookings domain and starts a full sync in the
// background. The claim happens synchronously so a concurrent run surfaces
// as a conflict to the caller; the heavy lifting does not block the request.
func (s *serviceImpl) Trigger(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Trigger")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.tracker.Begin(ctx, constant.SyncDomainBookings); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if propErr := s.RunProperties(c); propErr != nil {
			log.Warn().Err(propErr).Msg("[sync] property sync skipped or failed")
		}

		s.runBookingsClaimed(c)
	}()

	return nil
}

// RunAll is the scheduler entrypoint. Properties run before bookings so the
// inventory the mirror denormalizes from is as fresh as possible; a conflict
// on either domain is a skip, not an error.
func (s *serviceImpl) RunAll(ctx context.Context) {
	if err := s.RunProperties(ctx); err != nil {
		log.Warn().Err(err).Msg("[sync] property sync skipped or failed")
	}

	if err := s.RunBookings(ctx); err != nil {
		log.Warn().Err(err).Msg("[sync] booking sync skipped or failed")
	}
}

func (s *serviceImpl) RunBookings(ctx context.Context) (err error) {
	if err = s.tracker.Begin(ctx, constant.SyncDomainBookings); err != nil {
		return err
	}

	s.runBookingsClaimed(ctx)

	return nil
}

// runBookingsClaimed executes the booking pipeline. The caller must already
// hold the bookings claim; every exit path releases it through the tracker.
func (s *serviceImpl) runBookingsClaimed(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RunBookings")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Sync.RunBudgetMinutes)*time.Minute)
	defer cancel()

	runID := uuid.NewString()
	started := timezone.Now()
	runLog := log.With().Str("runId", runID).Str("domain", constant.SyncDomainBookings).Logger()
	runLog.Info().Msg("[sync] booking sync started")

	summaries, err := s.fetchBookingPages(ctx)
	if err != nil {
		runLog.Error().Err(err).Msg("[sync] aborting, could not list reservations")
		s.tracker.Fail(ctx, constant.SyncDomainBookings, err, RunResult{Duration: timezone.Now().Sub(started)})

		return
	}

	listings, listingFailures := s.fetchListingIndex(ctx, summaries)

	details, degraded := s.fetchBookingDetails(ctx, summaries)

	bookings := make([]model.UnifiedBooking, 0, len(details))
	skipped := 0
	for _, remote := range details {
		booking, buildErr := s.buildBooking(remote, listings)
		if buildErr != nil {
			runLog.Warn().Err(buildErr).Int64("remoteId", remote.ID).Msg("[sync] skipping malformed reservation")
			skipped++

			continue
		}

		bookings = append(bookings, booking)
	}

	result := RunResult{
		Bookings: len(bookings),
		Listings: len(listings),
		Failed:   listingFailures + degraded + skipped,
	}

	if err := s.upsertBookings(ctx, bookings); err != nil {
		result.Duration = timezone.Now().Sub(started)
		runLog.Error().Err(err).Msg("[sync] aborting, could not persist bookings")
		s.tracker.Fail(ctx, constant.SyncDomainBookings, err, result)

		return
	}

	s.invalidateReadCaches(ctx)

	result.Duration = timezone.Now().Sub(started)
	s.tracker.Complete(ctx, constant.SyncDomainBookings, result)
	runLog.Info().
		Int("bookings", result.Bookings).
		Int("failed", result.Failed).
		Dur("duration", result.Duration).
		Msg("[sync] booking sync finished")
}

// fetchBookingPages walks the reservation list endpoint until a short page
// or the safety ceiling. A failing page aborts the run; partial windows must
// not masquerade as a full mirror.
func (s *serviceImpl) fetchBookingPages(ctx context.Context) ([]hostaway.RemoteBooking, error) {
	from := timezone.Now().AddDate(0, 0, -s.cfg.Sync.LookbackDays)
	to := timezone.Now().AddDate(0, 0, s.cfg.Sync.HorizonDays)

	var all []hostaway.RemoteBooking
	for offset := 0; ; offset += s.client.PageSize() {
		page, err := s.client.ListReservations(ctx, from, to, hostaway.DateTypeArrival, offset)
		if err != nil {
			return nil, errors.Wrap(err, "listing reservations")
		}

		all = append(all, page...)

		if len(page) < s.client.PageSize() {
			break
		}

		if len(all) >= s.cfg.Sync.MaxBookings {
			log.Warn().
				Int("fetched", len(all)).
				Int("ceiling", s.cfg.Sync.MaxBookings).
				Msg("[sync] reservation ceiling reached, window likely too wide")

			break
		}
	}

	return all, nil
}

// fetchListingIndex resolves the unique listings referenced by the summaries
// so bookings can be denormalized without per-booking lookups. A failing
// listing is left out; its bookings fall back to empty listing fields.
func (s *serviceImpl) fetchListingIndex(ctx context.Context, summaries []hostaway.RemoteBooking) (map[int64]hostaway.RemoteListing, int) {
	unique := make(map[int64]struct{})
	for _, b := range summaries {
		if b.ListingID != 0 {
			unique[b.ListingID] = struct{}{}
		}
	}

	ids := make([]int64, 0, len(unique))
	for id := range unique {
		ids = append(ids, id)
	}

	var mu sync.Mutex
	index := make(map[int64]hostaway.RemoteListing, len(ids))

	tasks := make([]queue.Task, len(ids))
	for i, id := range ids {
		id := id
		tasks[i] = func(ctx context.Context) error {
			listing, err := s.client.GetListing(ctx, id)
			if err != nil {
				return err
			}

			mu.Lock()
			index[id] = listing
			mu.Unlock()

			return nil
		}
	}

	failures := 0
	for _, err := range s.queue.Run(ctx, tasks) {
		if err != nil {
			failures++
		}
	}

	return index, failures
}

// fetchBookingDetails fans out detail requests through the queue. A failed
// detail fetch degrades that booking to its list summary instead of dropping
// it.
func (s *serviceImpl) fetchBookingDetails(ctx context.Context, summaries []hostaway.RemoteBooking) ([]hostaway.RemoteBooking, int) {
	details := make([]hostaway.RemoteBooking, len(summaries))

	tasks := make([]queue.Task, len(summaries))
	for i, summary := range summaries {
		i, summary := i, summary
		tasks[i] = func(ctx context.Context) error {
			detail, err := s.client.GetReservation(ctx, summary.ID)
			if err != nil {
				details[i] = summary

				return err
			}

			details[i] = detail

			return nil
		}
	}

	degraded := 0
	for i, err := range s.queue.Run(ctx, tasks) {
		if err != nil {
			log.Warn().Err(err).Int64("remoteId", summaries[i].ID).Msg("[sync] detail fetch failed, keeping summary")
			degraded++
		}
	}

	return details, degraded
}

// buildBooking denormalizes one remote reservation into the mirror shape.
func (s *serviceImpl) buildBooking(remote hostaway.RemoteBooking, listings map[int64]hostaway.RemoteListing) (model.UnifiedBooking, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, remote.CheckIn)
	if err != nil {
		return model.UnifiedBooking{}, errors.Wrap(err, "parsing arrival date")
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, remote.CheckOut)
	if err != nil {
		return model.UnifiedBooking{}, errors.Wrap(err, "parsing departure date")
	}

	now := timezone.Now()
	booking := model.UnifiedBooking{
		ID:            strconv.FormatInt(remote.ID, 10),
		Code:          remote.Code,
		Type:          resolver.ResolveType(remote.Status),
		Status:        remote.Status,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		CheckInTime:   remote.CheckInTime,
		CheckOutTime:  remote.CheckOutTime,
		Nights:        resolver.ResolveNights(remote),
		GuestName:     resolver.ResolveGuestName(remote),
		Adults:        derefInt(remote.Adults),
		Children:      derefInt(remote.Children),
		Infants:       derefInt(remote.Infants),
		Platform:      remote.Channel,
		PlatformImage: resolver.ResolvePlatformImage(remote.Channel),
		Price:         resolver.ResolvePrice(remote),
		Currency:      remote.Currency,
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.SyncedAt = now

	if remote.ClientID != nil {
		clientID := strconv.FormatInt(*remote.ClientID, 10)
		booking.ClientID = &clientID
	}

	if remote.RemoteCreated != "" {
		if created, parseErr := time.Parse(time.RFC3339, remote.RemoteCreated); parseErr == nil {
			booking.RemoteCreatedAt = &created
		}
	}

	if remote.ListingID != 0 {
		booking.ListingID = strconv.FormatInt(remote.ListingID, 10)

		if listing, ok := listings[remote.ListingID]; ok {
			booking.ApartmentCode = listing.InternalCode
			booking.ListingName = listing.Name
			booking.ListingAddress = listing.Address
		}
	}

	return booking, nil
}

func (s *serviceImpl) upsertBookings(ctx context.Context, bookings []model.UnifiedBooking) error {
	for start := 0; start < len(bookings); start += upsertChunkSize {
		end := min(start+upsertChunkSize, len(bookings))

		if err := s.repo.UpsertBulk(ctx, bookings[start:end]); err != nil {
			return errors.Wrap(err, "upserting bookings")
		}
	}

	return nil
}

func (s *serviceImpl) RunProperties(ctx context.Context) (err error) {
	if err = s.tracker.Begin(ctx, constant.SyncDomainProperties); err != nil {
		return err
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RunProperties")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Sync.RunBudgetMinutes)*time.Minute)
	defer cancel()

	started := timezone.Now()

	var summaries []hostaway.RemoteListing
	for offset := 0; ; offset += s.client.PageSize() {
		page, listErr := s.client.ListListings(ctx, offset)
		if listErr != nil {
			err = errors.Wrap(listErr, "listing properties")
			s.tracker.Fail(ctx, constant.SyncDomainProperties, err, RunResult{Duration: timezone.Now().Sub(started)})

			return err
		}

		summaries = append(summaries, page...)

		if len(page) < s.client.PageSize() {
			break
		}

		if len(summaries) >= s.cfg.Sync.MaxListings {
			log.Warn().
				Int("fetched", len(summaries)).
				Int("ceiling", s.cfg.Sync.MaxListings).
				Msg("[sync] listing ceiling reached, inventory larger than expected")

			break
		}
	}

	details := make([]hostaway.RemoteListing, len(summaries))
	tasks := make([]queue.Task, len(summaries))
	for i, summary := range summaries {
		i, summary := i, summary
		tasks[i] = func(ctx context.Context) error {
			detail, detailErr := s.client.GetListing(ctx, summary.ID)
			if detailErr != nil {
				details[i] = summary

				return detailErr
			}

			details[i] = detail

			return nil
		}
	}

	failed := 0
	for _, taskErr := range s.queue.Run(ctx, tasks) {
		if taskErr != nil {
			failed++
		}
	}

	listings := make([]model.Listing, 0, len(details))
	now := timezone.Now()
	for _, remote := range details {
		listings = append(listings, buildListing(remote, now))
	}

	result := RunResult{
		Listings: len(listings),
		Failed:   failed,
	}

	if len(listings) > 0 {
		if upsertErr := s.listingRepo.UpsertBulk(ctx, listings); upsertErr != nil {
			err = errors.Wrap(upsertErr, "upserting listings")
			result.Duration = timezone.Now().Sub(started)
			s.tracker.Fail(ctx, constant.SyncDomainProperties, err, result)

			return err
		}
	}

	shared.InvalidateCaches(ctx, s.cache, "listing")

	result.Duration = timezone.Now().Sub(started)
	s.tracker.Complete(ctx, constant.SyncDomainProperties, result)

	return nil
}

func buildListing(remote hostaway.RemoteListing, now time.Time) model.Listing {
	listing := model.Listing{
		ID:          strconv.FormatInt(remote.ID, 10),
		Code:        remote.InternalCode,
		Name:        remote.Name,
		Address:     remote.Address,
		City:        remote.City,
		CountryCode: remote.CountryCode,
		Bedrooms:    remote.Bedrooms,
		Beds:        remote.Beds,
		Bathrooms:   remote.Bathrooms,
		Lat:         remote.Lat,
		Lng:         remote.Lng,
		Amenities:   remote.Amenities,
	}
	listing.CreatedAt = now
	listing.UpdatedAt = now
	listing.SyncedAt = now

	if len(remote.Images) > 0 {
		listing.ImageURL = &remote.Images[0].URL
	}

	return listing
}

func (s *serviceImpl) invalidateReadCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, "booking")
	shared.InvalidateCaches(ctx, s.cache, "analytics")
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}
