package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePendingAmount(t *testing.T) {
	tests := []struct {
		name      string
		discussed float64
		paid      float64
		want      float64
	}{
		{name: "partial payment", discussed: 100000, paid: 40000, want: 60000},
		{name: "fully paid", discussed: 100000, paid: 100000, want: 0},
		{name: "overpaid clamps to zero", discussed: 100000, paid: 150000, want: 0},
		{name: "nothing paid", discussed: 50000, paid: 0, want: 50000},
		{name: "zero discussed", discussed: 0, paid: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePendingAmount(tt.discussed, tt.paid))
		})
	}
}
