package dto

// Calendar entry statuses, in the order entries sort within a day:
// departures first, then arrivals, then guests staying through.
const (
	CalendarStatusCheckOut = "checkout"
	CalendarStatusCheckIn  = "checkin"
	CalendarStatusStaying  = "staying"
)

type DashboardResponse struct {
	Date                    string  `json:"date"`
	TotalListings           int     `json:"total_listings"`
	OccupiedToday           int     `json:"occupied_today"`
	OccupancyRate           float64 `json:"occupancy_rate"`
	ArrivalsToday           int     `json:"arrivals_today"`
	DeparturesToday         int     `json:"departures_today"`
	ActiveGuests            int     `json:"active_guests"`
	RevenueMonthToDate      float64 `json:"revenue_month_to_date"`
	ReservationsMonthToDate int     `json:"reservations_month_to_date"`
	Currency                string  `json:"currency"`
}

type CalendarEntry struct {
	BookingID     string `json:"booking_id"`
	ApartmentCode string `json:"apartment_code"`
	ListingName   string `json:"listing_name"`
	GuestName     string `json:"guest_name"`
	Status        string `json:"status"`
	Guests        int    `json:"guests"`
	Nights        int    `json:"nights"`
}

type CalendarDay struct {
	Date    string          `json:"date"`
	Entries []CalendarEntry `json:"entries"`
}

type CalendarResponse struct {
	From string        `json:"from"`
	To   string        `json:"to"`
	Days []CalendarDay `json:"days"`
}

type FinancialSummaryResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Currency      string  `json:"currency"`
	TotalRevenue  float64 `json:"total_revenue"`
	Reservations  int     `json:"reservations"`
	TotalNights   int     `json:"total_nights"`
	ADR           float64 `json:"adr"`
	RevPAR        float64 `json:"revpar"`
	OccupancyRate float64 `json:"occupancy_rate"`
	PeriodDays    int     `json:"period_days"`
	TotalListings int     `json:"total_listings"`
}

type OccupancyDay struct {
	Date      string  `json:"date"`
	Occupied  int     `json:"occupied"`
	Available int     `json:"available"`
	Rate      float64 `json:"rate"`
}

type OccupancyResponse struct {
	From          string         `json:"from"`
	To            string         `json:"to"`
	TotalListings int            `json:"total_listings"`
	Days          []OccupancyDay `json:"days"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

type StatisticsResponse struct {
	From          string          `json:"from"`
	To            string          `json:"to"`
	Reservations  int             `json:"reservations"`
	Cancellations int             `json:"cancellations"`
	Provisional   int             `json:"provisional"`
	Blocked       int             `json:"blocked"`
	TotalGuests   int             `json:"total_guests"`
	AverageNights float64         `json:"average_nights"`
	AverageGuests float64         `json:"average_guests"`
	Platforms     []PlatformCount `json:"platforms"`
}
