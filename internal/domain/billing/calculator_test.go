//go:build unit

package billing_test

import (
	"math"
	"testing"
	"time"

	"comma-backend/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCost(t *testing.T) {
	t.Run("hourly tariff", func(t *testing.T) {
		cases := []struct {
			name     string
			price    float64
			elapsed  time.Duration
			expected float64
		}{
			{name: "exactly one hour", price: 100, elapsed: time.Hour, expected: 100},
			{name: "one minute over an hour rounds up a half hour", price: 100, elapsed: 61 * time.Minute, expected: 150},
			{name: "ninety minutes", price: 100, elapsed: 90 * time.Minute, expected: 150},
			{name: "ninety one minutes rounds up to two hours", price: 100, elapsed: 91 * time.Minute, expected: 200},
			{name: "short stay bills the one hour minimum", price: 100, elapsed: 10 * time.Minute, expected: 100},
			{name: "zero duration bills the one hour minimum", price: 100, elapsed: 0, expected: 100},
			{name: "negative duration bills the one hour minimum", price: 100, elapsed: -time.Hour, expected: 100},
			{name: "two hours and one minute rounds up a half hour", price: 100, elapsed: 121 * time.Minute, expected: 250},
			{name: "two and a half hours", price: 60, elapsed: 150 * time.Minute, expected: 150},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.InDelta(t, c.expected, billing.RoomCost(c.price, billing.TariffHour, c.elapsed), 1e-9)
			})
		}
	})

	t.Run("daily tariff", func(t *testing.T) {
		cases := []struct {
			name     string
			price    float64
			elapsed  time.Duration
			expected float64
		}{
			{name: "exactly one day", price: 200, elapsed: 24 * time.Hour, expected: 200},
			{name: "short stay bills the one day minimum", price: 200, elapsed: 2 * time.Hour, expected: 200},
			{name: "a day and a half bills fractionally", price: 200, elapsed: 36 * time.Hour, expected: 300},
			{name: "three days", price: 150, elapsed: 72 * time.Hour, expected: 450},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.InDelta(t, c.expected, billing.RoomCost(c.price, billing.TariffDay, c.elapsed), 1e-9)
			})
		}
	})

	t.Run("unknown tariff bills nothing", func(t *testing.T) {
		assert.Zero(t, billing.RoomCost(100, billing.Tariff("weekly"), time.Hour))
	})
}

func TestAreaCost(t *testing.T) {
	cases := []struct {
		name     string
		area     billing.AreaType
		hours    float64
		expected float64
	}{
		{name: "vip one hour", area: billing.AreaVIP, hours: 1, expected: 30},
		{name: "vip three hours", area: billing.AreaVIP, hours: 3, expected: 90},
		{name: "vip under an hour bills the minimum", area: billing.AreaVIP, hours: 0.25, expected: 30},
		{name: "vip past the threshold flattens to the daily rate", area: billing.AreaVIP, hours: 6, expected: 150},
		{name: "vip at the threshold stays hourly", area: billing.AreaVIP, hours: 5, expected: 150},
		{name: "quiet area one hour", area: billing.AreaQuiet, hours: 1, expected: 20},
		{name: "quiet area past the threshold", area: billing.AreaQuiet, hours: 9, expected: 100},
		{name: "general area two hours", area: billing.AreaGeneral, hours: 2, expected: 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cost, err := billing.AreaCost(c.area, c.hours)
			require.NoError(t, err)
			assert.InDelta(t, c.expected, cost, 1e-9)
		})
	}

	t.Run("unknown area type", func(t *testing.T) {
		_, err := billing.AreaCost(billing.AreaType("Balcony"), 1)
		require.ErrorIs(t, err, billing.ErrUnknownAreaType)
	})
}

func TestDiscount(t *testing.T) {
	t.Run("applies the percentage", func(t *testing.T) {
		d, err := billing.NewDiscount(25)
		require.NoError(t, err)
		assert.InDelta(t, 75.0, d.Apply(100), 1e-9)
	})

	t.Run("zero discount is identity", func(t *testing.T) {
		assert.InDelta(t, 170.0, billing.NoDiscount().Apply(170), 1e-9)
	})

	t.Run("clamps below zero", func(t *testing.T) {
		d, err := billing.NewDiscount(-10)
		require.NoError(t, err)
		assert.Zero(t, d.Percent())
		assert.InDelta(t, 100.0, d.Apply(100), 1e-9)
	})

	t.Run("clamps above one hundred", func(t *testing.T) {
		d, err := billing.NewDiscount(150)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, d.Percent(), 1e-9)
		assert.Zero(t, d.Apply(100))
	})

	t.Run("rejects NaN and infinity", func(t *testing.T) {
		_, err := billing.NewDiscount(math.NaN())
		require.ErrorIs(t, err, billing.ErrInvalidDiscount)

		_, err = billing.NewDiscount(math.Inf(1))
		require.ErrorIs(t, err, billing.ErrInvalidDiscount)
	})
}

func TestSumKitchenLines(t *testing.T) {
	lines := []billing.KitchenLine{
		{ItemID: 1, Name: "Espresso", Price: 20, Quantity: 2},
		{ItemID: 2, Name: "Water", Price: 10, Quantity: 3},
	}
	assert.InDelta(t, 70.0, billing.SumKitchenLines(lines), 1e-9)
	assert.Zero(t, billing.SumKitchenLines(nil))
}
