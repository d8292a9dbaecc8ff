package models

import "fmt"

// Tier is the room category. The set is closed: pricing and booking
// behavior switch on it directly.
type Tier string

const (
	TierStandard Tier = "Standard"
	TierDeluxe   Tier = "Deluxe"
	TierSuite    Tier = "Suite"
)

// Surcharge rules per tier.
const (
	deluxeServiceRate = 0.10
	suiteServiceRate  = 0.15
	suiteAmenitiesFee = 500000 // fixed fee for extra suite amenities
)

// Welcome items appended when a suite is booked. They stay on the room
// after checkout.
var suiteWelcomeAmenities = []string{"Welcome Champagne", "Fruit Basket"}

// ParseTier validates a tier name coming from the API or from storage.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierStandard, TierDeluxe, TierSuite:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown room type %q", s)
}

// SeedAmenities returns the fixed amenity list a tier starts with.
// Admin-entered extras are appended after these, never instead of them.
func (t Tier) SeedAmenities() []string {
	switch t {
	case TierDeluxe:
		return []string{"TV", "AC", "WiFi", "Mini Bar", "City View"}
	case TierSuite:
		return []string{"TV", "AC", "WiFi", "Mini Bar", "City View", "Living Room", "Kitchen", "Jacuzzi"}
	default:
		return []string{"TV", "AC", "WiFi"}
	}
}

// MaxOccupancy returns the default occupancy limit for the tier.
func (t Tier) MaxOccupancy() int {
	switch t {
	case TierDeluxe:
		return 3
	case TierSuite:
		return 4
	default:
		return 2
	}
}

// AdjustPrice applies the tier's surcharge rule to a base amount.
func (t Tier) AdjustPrice(base float64) float64 {
	switch t {
	case TierDeluxe:
		return base + base*deluxeServiceRate
	case TierSuite:
		return base + base*suiteServiceRate + suiteAmenitiesFee
	default:
		return base
	}
}
