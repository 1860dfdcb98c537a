package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"staysync/config"
	"staysync/infras/hostaway"
	hostawayMocks "staysync/infras/hostaway/mocks"
	"staysync/infras/otel/mocks"
	mirrorMocks "staysync/internal/domains/mirror/mocks"
	"staysync/internal/domains/mirror/model"
	"staysync/internal/domains/sync/service"
	cacheMocks "staysync/shared/cache/mocks"
	"staysync/shared/failure"
)

func syncConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Sync.RunBudgetMinutes = 10
	cfg.Sync.QueueConcurrency = 4
	cfg.Sync.BatchDelayMs = 1
	cfg.Sync.PageSize = 20
	cfg.Sync.MaxBookings = 1000
	cfg.Sync.MaxListings = 500
	cfg.Sync.LookbackDays = 180
	cfg.Sync.HorizonDays = 365
	cfg.Cache.TTL = 3600

	return cfg
}

type syncFixture struct {
	client      *hostawayMocks.MockHostaway
	repo        *mirrorMocks.MockBooking
	listingRepo *mirrorMocks.MockListing
	statusRepo  *mirrorMocks.MockSyncStatus
	cache       *cacheMocks.MockRedisCache
	svc         service.Sync
}

func newSyncFixture(t *testing.T) *syncFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := syncConfig()

	f := &syncFixture{
		client:      hostawayMocks.NewMockHostaway(ctrl),
		repo:        mirrorMocks.NewMockBooking(ctrl),
		listingRepo: mirrorMocks.NewMockListing(ctrl),
		statusRepo:  mirrorMocks.NewMockSyncStatus(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	tracker := service.NewTracker(f.statusRepo, cfg)
	f.svc = service.New(f.client, f.repo, f.listingRepo, tracker, cfg, f.cache, mocks.NewOtel())

	return f
}

func (f *syncFixture) expectClaim() {
	f.statusRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SyncStatus{}, nil)
	f.statusRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)
}

func TestSync_RunBookings(t *testing.T) {
	f := newSyncFixture(t)

	remoteSummaries := []hostaway.RemoteBooking{
		{ID: 1, ListingID: 10, CheckIn: "2024-06-01", CheckOut: "2024-06-04", Status: "new", Channel: "airbnb", GuestName: "adult_1"},
		{ID: 2, ListingID: 10, CheckIn: "2024-06-10", CheckOut: "2024-06-12", Status: "new", GuestName: "Ana Costa", TotalPrice: func() *float64 { v := 400.0; return &v }()},
	}

	f.expectClaim()

	f.client.EXPECT().PageSize().Return(20).AnyTimes()
	f.client.EXPECT().
		ListReservations(gomock.Any(), gomock.Any(), gomock.Any(), hostaway.DateTypeArrival, 0).
		Return(remoteSummaries, nil)

	f.client.EXPECT().
		GetListing(gomock.Any(), int64(10)).
		Return(hostaway.RemoteListing{ID: 10, InternalCode: "AP-10", Name: "Sea View", Address: "Av. Atlântica 100"}, nil)

	detail := remoteSummaries[0]
	detail.GuestDetails = &hostaway.RemoteGuestDetails{PrimaryName: "Maria Silva"}
	detail.Pricing = &hostaway.RemotePricing{TotalWithFees: func() *float64 { v := 950.0; return &v }()}

	f.client.EXPECT().
		GetReservation(gomock.Any(), int64(1)).
		Return(detail, nil)
	f.client.EXPECT().
		GetReservation(gomock.Any(), int64(2)).
		Return(hostaway.RemoteBooking{}, errors.New("remote timed out"))

	f.repo.EXPECT().
		UpsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bookings []model.UnifiedBooking) error {
			assert.Len(t, bookings, 2)

			byID := map[string]model.UnifiedBooking{}
			for _, b := range bookings {
				byID[b.ID] = b
			}

			enriched := byID["1"]
			assert.Equal(t, "Maria Silva", enriched.GuestName)
			assert.NotNil(t, enriched.Price)
			assert.InDelta(t, 950.0, *enriched.Price, 0.001)
			assert.Equal(t, "AP-10", enriched.ApartmentCode)
			assert.Equal(t, "Sea View", enriched.ListingName)
			assert.Equal(t, 3, enriched.Nights)

			degraded := byID["2"]
			assert.Equal(t, "Ana Costa", degraded.GuestName, "failed detail fetch keeps the list summary")
			assert.NotNil(t, degraded.Price)
			assert.InDelta(t, 400.0, *degraded.Price, 0.001)

			return nil
		})

	f.cache.EXPECT().Clear(gomock.Any(), "booking*").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "analytics*").Return(nil)

	// Terminal transition.
	f.statusRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.SyncStatus) error {
			assert.Equal(t, model.SyncStateSuccess, record.Status)
			assert.Equal(t, 2, record.BookingsCount)
			assert.Equal(t, 1, record.FailedCount, "the degraded detail fetch is reported")

			return nil
		})

	err := f.svc.RunBookings(context.Background())
	assert.NoError(t, err)
}

func TestSync_RunBookingsRejectsConcurrentRun(t *testing.T) {
	f := newSyncFixture(t)

	started := time.Now().Add(-time.Minute)
	f.statusRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SyncStatus{
			ID:        "bookings",
			Status:    model.SyncStateRunning,
			StartedAt: &started,
		}, nil)

	err := f.svc.RunBookings(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestSync_RunBookingsAbortsWhenListingFails(t *testing.T) {
	f := newSyncFixture(t)

	f.expectClaim()

	f.client.EXPECT().PageSize().Return(20).AnyTimes()
	f.client.EXPECT().
		ListReservations(gomock.Any(), gomock.Any(), gomock.Any(), hostaway.DateTypeArrival, 0).
		Return(nil, errors.New("remote down"))

	// The run fails without ever touching the mirror.
	f.statusRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.SyncStatus) error {
			assert.Equal(t, model.SyncStateError, record.Status)
			assert.NotNil(t, record.LastError)

			return nil
		})

	err := f.svc.RunBookings(context.Background())
	assert.NoError(t, err, "the claim succeeded; the failure lands in the ledger")
}

func TestSync_RunBookingsSkipsMalformedRecords(t *testing.T) {
	f := newSyncFixture(t)

	remoteSummaries := []hostaway.RemoteBooking{
		{ID: 1, CheckIn: "not-a-date", CheckOut: "2024-06-04", Status: "new"},
		{ID: 2, CheckIn: "2024-06-10", CheckOut: "2024-06-12", Status: "new", GuestName: "Ana Costa"},
	}

	f.expectClaim()

	f.client.EXPECT().PageSize().Return(20).AnyTimes()
	f.client.EXPECT().
		ListReservations(gomock.Any(), gomock.Any(), gomock.Any(), hostaway.DateTypeArrival, 0).
		Return(remoteSummaries, nil)

	f.client.EXPECT().
		GetReservation(gomock.Any(), int64(1)).
		Return(remoteSummaries[0], nil)
	f.client.EXPECT().
		GetReservation(gomock.Any(), int64(2)).
		Return(remoteSummaries[1], nil)

	f.repo.EXPECT().
		UpsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bookings []model.UnifiedBooking) error {
			assert.Len(t, bookings, 1)
			assert.Equal(t, "2", bookings[0].ID)

			return nil
		})

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	f.statusRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.SyncStatus) error {
			assert.Equal(t, model.SyncStateSuccess, record.Status)
			assert.Equal(t, 1, record.BookingsCount)
			assert.Equal(t, 1, record.FailedCount)

			return nil
		})

	err := f.svc.RunBookings(context.Background())
	assert.NoError(t, err)
}

func TestSync_RunProperties(t *testing.T) {
	f := newSyncFixture(t)

	f.expectClaim()

	f.client.EXPECT().PageSize().Return(20).AnyTimes()
	f.client.EXPECT().
		ListListings(gomock.Any(), 0).
		Return([]hostaway.RemoteListing{
			{ID: 10, Name: "Sea View"},
			{ID: 20, Name: "Garden Flat"},
		}, nil)

	f.client.EXPECT().
		GetListing(gomock.Any(), int64(10)).
		Return(hostaway.RemoteListing{
			ID:           10,
			InternalCode: "AP-10",
			Name:         "Sea View",
			Images:       []hostaway.RemoteListingImage{{URL: "https://img/10.jpg"}},
		}, nil)
	f.client.EXPECT().
		GetListing(gomock.Any(), int64(20)).
		Return(hostaway.RemoteListing{}, errors.New("remote timed out"))

	f.listingRepo.EXPECT().
		UpsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, listings []model.Listing) error {
			assert.Len(t, listings, 2)

			byID := map[string]model.Listing{}
			for _, l := range listings {
				byID[l.ID] = l
			}

			assert.Equal(t, "AP-10", byID["10"].Code)
			assert.NotNil(t, byID["10"].ImageURL)
			assert.Equal(t, "Garden Flat", byID["20"].Name, "failed detail keeps the summary")

			return nil
		})

	f.cache.EXPECT().Clear(gomock.Any(), "listing*").Return(nil)

	f.statusRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.SyncStatus) error {
			assert.Equal(t, model.SyncStateSuccess, record.Status)
			assert.Equal(t, 2, record.ListingsCount)
			assert.Equal(t, 1, record.FailedCount)

			return nil
		})

	err := f.svc.RunProperties(context.Background())
	assert.NoError(t, err)
}

func TestSync_StatusListsAllDomains(t *testing.T) {
	f := newSyncFixture(t)

	last := time.Now().Add(-time.Hour)
	f.statusRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SyncStatus{
			ID:         "bookings",
			Status:     model.SyncStateSuccess,
			LastSyncAt: &last,
			UpdatedAt:  last,
		}, nil)
	f.statusRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SyncStatus{}, nil)

	res, err := f.svc.Status(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, model.SyncStateSuccess, res[0].Status)
	assert.Equal(t, model.SyncStateNever, res[1].Status)
}
