package fee

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFee(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name    string
		amount  uint64
		rateBps uint64
		want    uint64
	}{
		{"zero amount", 0, 250, 0},
		{"zero rate", 1_000_000, 0, 0},
		{"250 bps on a million", 1_000_000, 250, 25_000},
		{"rounds down", 999, 250, 24},
		{"one unit below fee threshold", 39, 250, 0},
		{"max rate", 1_000_000, 1000, 100_000},
		{"full denominator is identity", 12345, 10000, 12345},
		{"huge amount does not overflow", math.MaxUint64, 1000, math.MaxUint64 / 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.CalculateFee(tt.amount, tt.rateBps))
		})
	}
}

func TestCalculateFeeMonotonicInAmount(t *testing.T) {
	calc := NewCalculator()

	var prev uint64
	for amount := uint64(0); amount <= 100_000; amount += 997 {
		got := calc.CalculateFee(amount, 250)
		assert.GreaterOrEqual(t, got, prev, "fee decreased at amount %d", amount)
		prev = got
	}
}
