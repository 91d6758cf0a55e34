package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		wantLength int
	}{
		{name: "default length", length: 6, wantLength: 6},
		{name: "custom length", length: 8, wantLength: 8},
		{name: "invalid length falls back", length: 0, wantLength: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otp := GenerateOTP(tt.length)
			assert.Len(t, otp, tt.wantLength)
			for _, ch := range otp {
				assert.True(t, ch >= '0' && ch <= '9', "expected digit, got %q", ch)
			}
		})
	}
}
