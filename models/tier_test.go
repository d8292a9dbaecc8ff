package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTier_Valid(t *testing.T) {
	for _, name := range []string{"Standard", "Deluxe", "Suite"} {
		tier, err := ParseTier(name)
		assert.NoError(t, err)
		assert.Equal(t, Tier(name), tier)
	}
}

func TestParseTier_Unknown(t *testing.T) {
	_, err := ParseTier("Penthouse")
	assert.Error(t, err)

	_, err = ParseTier("standard") // case sensitive
	assert.Error(t, err)
}

func TestSeedAmenities(t *testing.T) {
	assert.Equal(t, []string{"TV", "AC", "WiFi"}, TierStandard.SeedAmenities())
	assert.Equal(t, []string{"TV", "AC", "WiFi", "Mini Bar", "City View"}, TierDeluxe.SeedAmenities())
	assert.Equal(t,
		[]string{"TV", "AC", "WiFi", "Mini Bar", "City View", "Living Room", "Kitchen", "Jacuzzi"},
		TierSuite.SeedAmenities())
}

func TestMaxOccupancy(t *testing.T) {
	assert.Equal(t, 2, TierStandard.MaxOccupancy())
	assert.Equal(t, 3, TierDeluxe.MaxOccupancy())
	assert.Equal(t, 4, TierSuite.MaxOccupancy())
}

func TestAdjustPrice_TierOrdering(t *testing.T) {
	// Suite > Deluxe > Standard for the same base amount.
	base := 200000.0
	standard := TierStandard.AdjustPrice(base)
	deluxe := TierDeluxe.AdjustPrice(base)
	suite := TierSuite.AdjustPrice(base)

	assert.Equal(t, base, standard)
	assert.Greater(t, deluxe, standard)
	assert.Greater(t, suite, deluxe)
}

func TestAdjustPrice_Monotonic(t *testing.T) {
	for _, tier := range []Tier{TierStandard, TierDeluxe, TierSuite} {
		prev := tier.AdjustPrice(0)
		for _, base := range []float64{100000, 250000, 400000, 1000000} {
			next := tier.AdjustPrice(base)
			assert.Greater(t, next, prev, "tier %s must be increasing in base amount", tier)
			prev = next
		}
	}
}
