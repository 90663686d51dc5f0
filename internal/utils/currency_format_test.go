package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBDT(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "BDT 0.00"},
		{"small", decimal.NewFromInt(50), "BDT 50.00"},
		{"fraction", decimal.RequireFromString("120.5"), "BDT 120.50"},
		{"rounds half up", decimal.RequireFromString("10.005"), "BDT 10.01"},
		{"thousands", decimal.NewFromInt(1000), "BDT 1,000.00"},
		{"lakh", decimal.RequireFromString("123456.5"), "BDT 1,23,456.50"},
		{"crore", decimal.NewFromInt(12345678), "BDT 1,23,45,678.00"},
		{"negative", decimal.NewFromInt(-1000), "-BDT 1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBDT(tt.amount))
		})
	}
}
