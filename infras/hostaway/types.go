package hostaway

// RemotePricing is the structured price block newer API versions attach to a
// reservation. Every field is optional; absent values decode to nil.
type RemotePricing struct {
	TotalWithFees        *float64 `json:"totalWithFees"`
	PaidToDate           *float64 `json:"paidToDate"`
	HostingSubtotal      *float64 `json:"hostingSubtotal"`
	ExtrasSubtotal       *float64 `json:"extrasSubtotal"`
	ExpectedNightlyTotal *float64 `json:"expectedNightlyTotal"`
}

type RemoteGuest struct {
	Name    string `json:"name"`
	Primary bool   `json:"isPrimary"`
}

// RemoteGuestDetails only comes back on the per-reservation detail endpoint,
// never on list pages.
type RemoteGuestDetails struct {
	PrimaryName string        `json:"name"`
	Guests      []RemoteGuest `json:"guests"`
}

// RemoteBooking mirrors a reservation as the PMS returns it. Records written
// by older API versions carry the legacy flat price fields instead of the
// Pricing block, so consumers must be prepared for either shape.
type RemoteBooking struct {
	ID            int64  `json:"id"`
	Code          string `json:"confirmationCode"`
	ListingID     int64  `json:"listingMapId"`
	ClientID      *int64 `json:"clientId"`
	Status        string `json:"status"`
	CheckIn       string `json:"arrivalDate"`
	CheckOut      string `json:"departureDate"`
	CheckInTime   *int   `json:"checkInTime"`
	CheckOutTime  *int   `json:"checkOutTime"`
	Nights        *int   `json:"nights"`
	Adults        *int   `json:"adults"`
	Children      *int   `json:"children"`
	Infants       *int   `json:"infants"`
	Channel       string `json:"channelName"`
	Currency      string `json:"currency"`
	GuestName     string `json:"guestName"`
	RemoteCreated string `json:"insertedOn"`

	Pricing      *RemotePricing      `json:"pricing"`
	GuestDetails *RemoteGuestDetails `json:"guestDetails"`

	// Legacy price representations, pre Pricing block.
	TotalPrice  *float64 `json:"totalPrice"`
	BasePrice   *float64 `json:"basePrice"`
	CleaningFee *float64 `json:"cleaningFee"`
	ExtrasTotal *float64 `json:"extrasTotal"`
}

type RemoteListingImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// RemoteListing mirrors a rental unit. List pages return the identity fields
// only; bedrooms, amenities and images require the detail endpoint.
type RemoteListing struct {
	ID           int64    `json:"id"`
	InternalCode string   `json:"internalListingName"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	CountryCode  string   `json:"countryCode"`
	Bedrooms     *int     `json:"bedroomsNumber"`
	Beds         *int     `json:"bedsNumber"`
	Bathrooms    *int     `json:"bathroomsNumber"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	Amenities    []string `json:"amenities"`

	Images []RemoteListingImage `json:"listingImages"`
}
