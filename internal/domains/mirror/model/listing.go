package model

import (
	"staysync/shared/model"

	"github.com/lib/pq"
)

const (
	ListingTableName  = "listings"
	ListingEntityName = "listing"

	FieldListingCode = "code"
)

// Listing mirrors a rental unit from the remote inventory.
type Listing struct {
	ID          string         `db:"id"`
	Code        string         `db:"code"`
	Name        string         `db:"name"`
	Address     string         `db:"address"`
	City        string         `db:"city"`
	CountryCode string         `db:"country_code"`
	Bedrooms    *int           `db:"bedrooms"`
	Beds        *int           `db:"beds"`
	Bathrooms   *int           `db:"bathrooms"`
	Lat         *float64       `db:"lat"`
	Lng         *float64       `db:"lng"`
	Amenities   pq.StringArray `db:"amenities"`
	ImageURL    *string        `db:"image_url"`

	model.Metadata
}

// ListingRef is the denormalized listing identity carried on each booking,
// used to build the unit universe for occupancy math.
type ListingRef struct {
	ID   string `db:"listing_id"`
	Code string `db:"apartment_code"`
	Name string `db:"listing_name"`
}
