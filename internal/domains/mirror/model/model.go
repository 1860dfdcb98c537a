package model

import (
	"time"

	"staysync/shared/model"
)

const (
	TableName  = "unified_bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCode          = "code"
	FieldListingID     = "listing_id"
	FieldApartmentCode = "apartment_code"
	FieldListingName   = "listing_name"
	FieldType          = "type"
	FieldStatus        = "status"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldGuestName     = "guest_name"
	FieldPlatform      = "platform"
	FieldPrice         = "price"
)

// Booking type values. Blocked entries reserve the calendar but carry no
// guest or financial meaning.
const (
	TypeNormal      = "normal"
	TypeProvisional = "provisional"
	TypeBlocked     = "blocked"
)

// UnifiedBooking is the local mirror of a remote reservation, denormalized
// with the listing fields read views need so no join is required at read
// time. Fields tagged `insert:"-"` are owned by other subsystems (team
// assignment, guest feedback, client demographics); the sync writer never
// touches them.
type UnifiedBooking struct {
	ID              string     `db:"id"`
	Code            string     `db:"code"`
	ListingID       string     `db:"listing_id"`
	ApartmentCode   string     `db:"apartment_code"`
	ListingName     string     `db:"listing_name"`
	ListingAddress  string     `db:"listing_address"`
	Type            string     `db:"type"`
	Status          string     `db:"status"`
	CheckIn         time.Time  `db:"check_in"`
	CheckOut        time.Time  `db:"check_out"`
	CheckInTime     *int       `db:"check_in_time"`
	CheckOutTime    *int       `db:"check_out_time"`
	Nights          int        `db:"nights"`
	GuestName       string     `db:"guest_name"`
	Adults          int        `db:"adults"`
	Children        int        `db:"children"`
	Infants         int        `db:"infants"`
	Platform        string     `db:"platform"`
	PlatformImage   *string    `db:"platform_image"`
	Price           *float64   `db:"price"`
	Currency        string     `db:"currency"`
	ClientID        *string    `db:"client_id"`
	RemoteCreatedAt *time.Time `db:"remote_created_at"`

	AssigneeID      *string    `db:"assignee_id" insert:"-"`
	AssigneeName    *string    `db:"assignee_name" insert:"-"`
	Rating          *float64   `db:"rating" insert:"-"`
	FeedbackComment *string    `db:"feedback_comment" insert:"-"`
	FeedbackDate    *time.Time `db:"feedback_date" insert:"-"`
	ClientCountry   *string    `db:"client_country" insert:"-"`
	ClientBirthdate *time.Time `db:"client_birthdate" insert:"-"`

	model.Metadata
}

// TotalGuests counts every person on the reservation.
func (b UnifiedBooking) TotalGuests() int {
	return b.Adults + b.Children + b.Infants
}

// IsBlocked reports whether the entry is a calendar block rather than a
// guest reservation.
func (b UnifiedBooking) IsBlocked() bool {
	return b.Type == TypeBlocked
}
