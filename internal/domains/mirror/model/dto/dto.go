package dto

import (
	"staysync/internal/domains/mirror/model"
	"staysync/shared"
	"staysync/shared/constant"
	gDto "staysync/shared/dto"
	"staysync/shared/timezone"
)

type GetBookingsRequest struct {
	ListingID string `json:"listing_id" validate:"omitempty,max=64"`
	Type      string `json:"type"       validate:"omitempty,oneof=normal provisional blocked"`
	Status    string `json:"status"     validate:"omitempty,max=64"`
	From      string `json:"from"       validate:"omitempty,datetime=2006-01-02"`
	To        string `json:"to"         validate:"omitempty,datetime=2006-01-02"`
}

type BookingResponse struct {
	ID             string   `json:"id"`
	Code           string   `json:"code"`
	ListingID      string   `json:"listing_id"`
	ApartmentCode  string   `json:"apartment_code"`
	ListingName    string   `json:"listing_name"`
	ListingAddress string   `json:"listing_address"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	CheckIn        string   `json:"check_in"`
	CheckOut       string   `json:"check_out"`
	CheckInTime    *int     `json:"check_in_time"`
	CheckOutTime   *int     `json:"check_out_time"`
	Nights         int      `json:"nights"`
	GuestName      string   `json:"guest_name"`
	Adults         int      `json:"adults"`
	Children       int      `json:"children"`
	Infants        int      `json:"infants"`
	Platform       string   `json:"platform"`
	PlatformImage  *string  `json:"platform_image"`
	Price          *float64 `json:"price"`
	Currency       string   `json:"currency"`
	AssigneeName   *string  `json:"assignee_name"`
	Rating         *float64 `json:"rating"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.UnifiedBooking) {
	r.ID = model.ID
	r.Code = model.Code
	r.ListingID = model.ListingID
	r.ApartmentCode = model.ApartmentCode
	r.ListingName = model.ListingName
	r.ListingAddress = model.ListingAddress
	r.Type = model.Type
	r.Status = model.Status
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.CheckInTime = model.CheckInTime
	r.CheckOutTime = model.CheckOutTime
	r.Nights = model.Nights
	r.GuestName = model.GuestName
	r.Adults = model.Adults
	r.Children = model.Children
	r.Infants = model.Infants
	r.Platform = model.Platform
	r.PlatformImage = model.PlatformImage
	r.Price = model.Price
	r.Currency = model.Currency
	r.AssigneeName = model.AssigneeName
	r.Rating = model.Rating
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.UnifiedBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type ListingResponse struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	CountryCode string   `json:"country_code"`
	Bedrooms    *int     `json:"bedrooms"`
	Beds        *int     `json:"beds"`
	Bathrooms   *int     `json:"bathrooms"`
	Amenities   []string `json:"amenities"`
	ImageURL    *string  `json:"image_url"`
	gDto.Metadata
}

func (r *ListingResponse) FromModel(model model.Listing) {
	r.ID = model.ID
	r.Code = model.Code
	r.Name = model.Name
	r.Address = model.Address
	r.City = model.City
	r.CountryCode = model.CountryCode
	r.Bedrooms = model.Bedrooms
	r.Beds = model.Beds
	r.Bathrooms = model.Bathrooms
	r.Amenities = model.Amenities
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetListingsResponse struct {
	Listings  []ListingResponse `json:"listings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetListingsResponse) FromModels(models []model.Listing, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Listings = make([]ListingResponse, len(models))
	for i, mod := range models {
		r.Listings[i].FromModel(mod)
	}
}

type SyncStatusResponse struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	StartedAt     *string `json:"started_at"`
	LastSyncAt    *string `json:"last_sync_at"`
	LastError     *string `json:"last_error"`
	BookingsCount int     `json:"bookings_count"`
	ListingsCount int     `json:"listings_count"`
	FailedCount   int     `json:"failed_count"`
	DurationMs    int64   `json:"duration_ms"`
	UpdatedAt     string  `json:"updated_at"`
}

func (r *SyncStatusResponse) FromModel(model model.SyncStatus) {
	r.ID = model.ID
	r.Status = model.Status
	if model.StartedAt != nil {
		started := timezone.Format(*model.StartedAt, constant.DateFormat)
		r.StartedAt = &started
	}
	if model.LastSyncAt != nil {
		last := timezone.Format(*model.LastSyncAt, constant.DateFormat)
		r.LastSyncAt = &last
	}
	r.LastError = model.LastError
	r.BookingsCount = model.BookingsCount
	r.ListingsCount = model.ListingsCount
	r.FailedCount = model.FailedCount
	r.DurationMs = model.DurationMs
	r.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}
