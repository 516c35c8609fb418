//go:build unit

package commands

import (
	"testing"

	"comma-backend/internal/domain/billing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFlattenKitchenLines(t *testing.T) {
	tests := []struct {
		name     string
		lines    []billing.KitchenLine
		expected string
	}{
		{
			name:     "empty order",
			lines:    nil,
			expected: "",
		},
		{
			name: "single line",
			lines: []billing.KitchenLine{
				{Name: "Espresso", Quantity: 2},
			},
			expected: "Espresso (2x)",
		},
		{
			name: "multiple lines keep order",
			lines: []billing.KitchenLine{
				{Name: "Espresso", Quantity: 2},
				{Name: "Mint Tea", Quantity: 1},
				{Name: "Water", Quantity: 3},
			},
			expected: "Espresso (2x), Mint Tea (1x), Water (3x)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flattenKitchenLines(tt.lines)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("flattenKitchenLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKitchenLineTotals(t *testing.T) {
	lines := []billing.KitchenLine{
		{ItemID: 1, Name: "Espresso", Price: 20, Quantity: 2},
		{ItemID: 2, Name: "Water", Price: 10, Quantity: 1},
	}
	assert.InDelta(t, 50.0, billing.SumKitchenLines(lines), 1e-9)
}
