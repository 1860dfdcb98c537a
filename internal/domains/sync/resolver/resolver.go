package resolver

import (
	"strings"
	"time"

	"staysync/infras/hostaway"
	"staysync/internal/domains/mirror/model"
	"staysync/shared/constant"
)

// FallbackGuestName is used when no real guest name survives the placeholder
// filter.
const FallbackGuestName = "Hóspede"

// placeholderPrefixes are the synthetic tokens channel imports generate when
// the real guest name is unknown.
var placeholderPrefixes = []string{"adult_", "child_", "baby_"}

var placeholderNames = map[string]struct{}{
	"guest":   {},
	"hóspede": {},
}

// ResolvePrice walks the known price representations from most to least
// trustworthy and returns the first positive value. It returns nil when no
// representation yields one; an unknown price is never reported as zero.
func ResolvePrice(b hostaway.RemoteBooking) *float64 {
	if p := b.Pricing; p != nil {
		if v := positive(p.TotalWithFees); v != nil {
			return v
		}
		if v := positive(p.PaidToDate); v != nil {
			return v
		}
		if positive(p.HostingSubtotal) != nil {
			total := *p.HostingSubtotal + deref(p.ExtrasSubtotal)

			return &total
		}
		if v := positive(p.ExpectedNightlyTotal); v != nil {
			return v
		}
	}

	if v := positive(b.TotalPrice); v != nil {
		return v
	}

	if sum := deref(b.BasePrice) + deref(b.CleaningFee) + deref(b.ExtrasTotal); sum > 0 {
		return &sum
	}

	return nil
}

// ResolveGuestName picks the first usable name from the guest details block,
// preferring the primary guest, and falls back to the top-level summary name.
// Placeholder names never win; when nothing usable remains the neutral
// fallback is returned.
func ResolveGuestName(b hostaway.RemoteBooking) string {
	if d := b.GuestDetails; d != nil {
		if name, ok := usableName(d.PrimaryName); ok {
			return name
		}

		for _, g := range d.Guests {
			if !g.Primary {
				continue
			}
			if name, ok := usableName(g.Name); ok {
				return name
			}
		}

		for _, g := range d.Guests {
			if name, ok := usableName(g.Name); ok {
				return name
			}
		}
	}

	if name, ok := usableName(b.GuestName); ok {
		return name
	}

	return FallbackGuestName
}

// IsPlaceholderName reports whether a name is one of the synthetic tokens
// channel imports emit instead of a real guest name.
func IsPlaceholderName(name string) bool {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return true
	}

	if _, ok := placeholderNames[normalized]; ok {
		return true
	}

	for _, prefix := range placeholderPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}

	return false
}

// ResolveNights prefers the remote nights counter and recomputes it from the
// stay dates when the counter is absent or nonsensical. Never negative.
func ResolveNights(b hostaway.RemoteBooking) int {
	if b.Nights != nil && *b.Nights > 0 {
		return *b.Nights
	}

	checkIn, errIn := time.Parse(constant.DateOnlyFormat, b.CheckIn)
	checkOut, errOut := time.Parse(constant.DateOnlyFormat, b.CheckOut)
	if errIn != nil || errOut != nil {
		return 0
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 0 {
		return 0
	}

	return nights
}

// ResolveType maps the remote reservation status onto the local booking
// type. Calendar blocks and unconfirmed holds are kept but flagged so read
// views can exclude them from guest and financial math.
func ResolveType(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "blocked", "block", "unavailable":
		return model.TypeBlocked
	case "pending", "inquiry", "inquirypreapproved", "awaitingpayment":
		return model.TypeProvisional
	default:
		return model.TypeNormal
	}
}

// platformImages maps channel names to the icon assets the dashboard serves.
var platformImages = map[string]string{
	"airbnb":      "/assets/platforms/airbnb.svg",
	"booking.com": "/assets/platforms/booking.svg",
	"vrbo":        "/assets/platforms/vrbo.svg",
	"expedia":     "/assets/platforms/expedia.svg",
	"direct":      "/assets/platforms/direct.svg",
}

// ResolvePlatformImage returns the icon path for a channel, or nil for
// channels without one.
func ResolvePlatformImage(channel string) *string {
	key := strings.ToLower(strings.TrimSpace(channel))
	if img, ok := platformImages[key]; ok {
		return &img
	}

	return nil
}

func usableName(name string) (string, bool) {
	if IsPlaceholderName(name) {
		return "", false
	}

	return strings.TrimSpace(name), true
}

func positive(v *float64) *float64 {
	if v != nil && *v > 0 {
		value := *v

		return &value
	}

	return nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
