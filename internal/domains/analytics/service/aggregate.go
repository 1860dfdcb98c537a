package service

import (
	"sort"
	"strings"
	"time"

	"staysync/internal/domains/analytics/model/dto"
	mirrorModel "staysync/internal/domains/mirror/model"
	"staysync/shared/constant"
)

// Overlaps reports whether a stay touches the closed window [from, to] at
// date granularity.
func Overlaps(b mirrorModel.UnifiedBooking, from, to time.Time) bool {
	return !b.CheckOut.Before(from) && !b.CheckIn.After(to)
}

// OccupiedOn reports whether a stay covers the night starting on day. The
// checkout day itself is not occupied.
func OccupiedOn(b mirrorModel.UnifiedBooking, day time.Time) bool {
	return !day.Before(b.CheckIn) && day.Before(b.CheckOut)
}

// BuildFinancialSummary folds the non-blocked bookings of a window into
// revenue, ADR (revenue per occupied night) and RevPAR (revenue per
// available night). Bookings without a resolvable price contribute nights
// but no revenue.
func BuildFinancialSummary(bookings []mirrorModel.UnifiedBooking, totalListings int, from, to time.Time) dto.FinancialSummaryResponse {
	res := dto.FinancialSummaryResponse{
		From:          from.Format(constant.DateOnlyFormat),
		To:            to.Format(constant.DateOnlyFormat),
		PeriodDays:    daysInclusive(from, to),
		TotalListings: totalListings,
	}

	for _, b := range bookings {
		if b.IsBlocked() {
			continue
		}

		res.Reservations++
		res.TotalNights += b.Nights

		if b.Price != nil {
			res.TotalRevenue += *b.Price
		}
		if res.Currency == "" && b.Currency != "" {
			res.Currency = b.Currency
		}
	}

	if res.TotalNights > 0 {
		res.ADR = res.TotalRevenue / float64(res.TotalNights)
	}

	availableNights := totalListings * res.PeriodDays
	if availableNights > 0 {
		res.RevPAR = res.TotalRevenue / float64(availableNights)
		res.OccupancyRate = float64(res.TotalNights) / float64(availableNights) * 100
	}

	return res
}

// BuildOccupancy computes the per-day occupancy trend. Blocked entries make
// a unit unavailable, so they count as occupied here even though they carry
// no financial meaning.
func BuildOccupancy(bookings []mirrorModel.UnifiedBooking, totalListings int, from, to time.Time) []dto.OccupancyDay {
	days := make([]dto.OccupancyDay, 0, daysInclusive(from, to))

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		occupiedUnits := make(map[string]struct{})
		for _, b := range bookings {
			if b.ListingID != "" && OccupiedOn(b, day) {
				occupiedUnits[b.ListingID] = struct{}{}
			}
		}

		occupied := len(occupiedUnits)
		if occupied > totalListings {
			occupied = totalListings
		}

		entry := dto.OccupancyDay{
			Date:      day.Format(constant.DateOnlyFormat),
			Occupied:  occupied,
			Available: totalListings - occupied,
		}
		if totalListings > 0 {
			entry.Rate = float64(occupied) / float64(totalListings) * 100
		}

		days = append(days, entry)
	}

	return days
}

// BuildCalendar lays arrivals, departures and through-stays onto each day of
// the window. Blocked entries are invisible here; the calendar is a guest
// movement view.
func BuildCalendar(bookings []mirrorModel.UnifiedBooking, from, to time.Time) []dto.CalendarDay {
	days := make([]dto.CalendarDay, 0, daysInclusive(from, to))

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		entries := []dto.CalendarEntry{}

		for _, b := range bookings {
			if b.IsBlocked() {
				continue
			}

			var status string
			switch {
			case b.CheckOut.Equal(day):
				status = dto.CalendarStatusCheckOut
			case b.CheckIn.Equal(day):
				status = dto.CalendarStatusCheckIn
			case OccupiedOn(b, day):
				status = dto.CalendarStatusStaying
			default:
				continue
			}

			entries = append(entries, dto.CalendarEntry{
				BookingID:     b.ID,
				ApartmentCode: b.ApartmentCode,
				ListingName:   b.ListingName,
				GuestName:     b.GuestName,
				Status:        status,
				Guests:        b.TotalGuests(),
				Nights:        b.Nights,
			})
		}

		sortCalendarEntries(entries)

		days = append(days, dto.CalendarDay{
			Date:    day.Format(constant.DateOnlyFormat),
			Entries: entries,
		})
	}

	return days
}

// BuildStatistics summarizes booking composition over a window.
func BuildStatistics(bookings []mirrorModel.UnifiedBooking, from, to time.Time) dto.StatisticsResponse {
	res := dto.StatisticsResponse{
		From: from.Format(constant.DateOnlyFormat),
		To:   to.Format(constant.DateOnlyFormat),
	}

	totalNights := 0
	platforms := make(map[string]int)

	for _, b := range bookings {
		switch b.Type {
		case mirrorModel.TypeBlocked:
			res.Blocked++

			continue
		case mirrorModel.TypeProvisional:
			res.Provisional++
		}

		if strings.EqualFold(b.Status, "cancelled") {
			res.Cancellations++

			continue
		}

		res.Reservations++
		res.TotalGuests += b.TotalGuests()
		totalNights += b.Nights

		platform := b.Platform
		if platform == "" {
			platform = "unknown"
		}
		platforms[platform]++
	}

	if res.Reservations > 0 {
		res.AverageNights = float64(totalNights) / float64(res.Reservations)
		res.AverageGuests = float64(res.TotalGuests) / float64(res.Reservations)
	}

	res.Platforms = make([]dto.PlatformCount, 0, len(platforms))
	for platform, count := range platforms {
		res.Platforms = append(res.Platforms, dto.PlatformCount{Platform: platform, Count: count})
	}
	sort.Slice(res.Platforms, func(i, j int) bool {
		if res.Platforms[i].Count != res.Platforms[j].Count {
			return res.Platforms[i].Count > res.Platforms[j].Count
		}

		return res.Platforms[i].Platform < res.Platforms[j].Platform
	})

	return res
}

// BuildDashboard folds today's position out of the current month's bookings.
func BuildDashboard(bookings []mirrorModel.UnifiedBooking, totalListings int, today time.Time) dto.DashboardResponse {
	res := dto.DashboardResponse{
		Date:          today.Format(constant.DateOnlyFormat),
		TotalListings: totalListings,
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	occupiedUnits := make(map[string]struct{})

	for _, b := range bookings {
		if b.ListingID != "" && OccupiedOn(b, today) {
			occupiedUnits[b.ListingID] = struct{}{}
		}

		if b.IsBlocked() {
			continue
		}

		if b.CheckIn.Equal(today) {
			res.ArrivalsToday++
		}
		if b.CheckOut.Equal(today) {
			res.DeparturesToday++
		}
		if OccupiedOn(b, today) {
			res.ActiveGuests += b.TotalGuests()
		}

		if !b.CheckIn.Before(monthStart) && !b.CheckIn.After(today) {
			res.ReservationsMonthToDate++
			if b.Price != nil {
				res.RevenueMonthToDate += *b.Price
			}
		}

		if res.Currency == "" && b.Currency != "" {
			res.Currency = b.Currency
		}
	}

	res.OccupiedToday = len(occupiedUnits)
	if res.OccupiedToday > totalListings {
		res.OccupiedToday = totalListings
	}
	if totalListings > 0 {
		res.OccupancyRate = float64(res.OccupiedToday) / float64(totalListings) * 100
	}

	return res
}

var calendarStatusOrder = map[string]int{
	dto.CalendarStatusCheckOut: 0,
	dto.CalendarStatusCheckIn:  1,
	dto.CalendarStatusStaying:  2,
}

func sortCalendarEntries(entries []dto.CalendarEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Status != entries[j].Status {
			return calendarStatusOrder[entries[i].Status] < calendarStatusOrder[entries[j].Status]
		}

		return entries[i].ApartmentCode < entries[j].ApartmentCode
	})
}

func daysInclusive(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}

	return int(to.Sub(from).Hours()/24) + 1
}
