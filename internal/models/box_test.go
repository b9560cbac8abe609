package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalVolume(t *testing.T) {
	boxes := []Box{
		{Length: 60, Width: 40, Height: 40, Amount: 10}, // 960 000 см³
		{Length: 100, Width: 50, Height: 20, Amount: 4}, // 400 000 см³
	}

	assert.InDelta(t, 1.36, TotalVolume(boxes), 1e-12)
	assert.Equal(t, 14, TotalAmount(boxes))
}

func TestTotalVolume_LargeManifest(t *testing.T) {
	// int32 overflow was possible before the product was widened
	boxes := []Box{{Length: 1200, Width: 800, Height: 1800, Amount: 20}}
	assert.Equal(t, int64(34_560_000_000), boxes[0].Volume())
	assert.InDelta(t, 34560.0, TotalVolume(boxes), 1e-9)
}

func TestBox_Valid(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{name: "positive", box: Box{Length: 1, Width: 1, Height: 1, Amount: 1}, want: true},
		{name: "zero length", box: Box{Length: 0, Width: 1, Height: 1, Amount: 1}},
		{name: "negative width", box: Box{Length: 1, Width: -1, Height: 1, Amount: 1}},
		{name: "zero amount", box: Box{Length: 1, Width: 1, Height: 1}},
		{name: "two negatives", box: Box{Length: -1, Width: -1, Height: 1, Amount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.Valid())
		})
	}
}

func TestParseSupplyType(t *testing.T) {
	for input, want := range map[string]SupplyType{
		"box":         SupplyTypeBox,
		"Короб":       SupplyTypeBox,
		"mono-pallet": SupplyTypeMonoPallet,
		"монопаллет":  SupplyTypeMonoPallet,
		"transit":     SupplyTypeTransit,
	} {
		got, err := ParseSupplyType(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseSupplyType("crate")
	assert.Error(t, err)

	assert.True(t, SupplyTypeMonoPallet.IsPallet())
	assert.False(t, SupplyTypeBox.IsPallet())
}
