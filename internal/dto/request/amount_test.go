package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Amount
		wantErr bool
	}{
		{name: "number", payload: `100.5`, want: 100.5},
		{name: "string number", payload: `"100"`, want: 100},
		{name: "string decimal", payload: `"40.25"`, want: 40.25},
		{name: "empty string defaults to zero", payload: `""`, want: 0},
		{name: "non-numeric string", payload: `"abc"`, wantErr: true},
		{name: "bool", payload: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.payload), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestCustomerRequest_DecodesStringAmounts(t *testing.T) {
	body := `{
		"customer_name": "Ravi Kumar",
		"phone_number": "9876500010",
		"type_of_work": "Interior",
		"discussed_amount": "100",
		"paid_amount": "40"
	}`

	var req CustomerRequest
	err := json.Unmarshal([]byte(body), &req)

	assert.NoError(t, err)
	assert.Equal(t, 100.0, req.DiscussedAmount.Float64())
	assert.Equal(t, 40.0, req.PaidAmount.Float64())
}

func TestClaimRequest_DecodesStringAmounts(t *testing.T) {
	body := `{
		"type_of_claim": "Marriage gift",
		"process_state": "ALO",
		"discussed_amount": "5000",
		"paid_amount": 2000
	}`

	var req ClaimRequest
	err := json.Unmarshal([]byte(body), &req)

	assert.NoError(t, err)
	assert.Equal(t, 5000.0, req.DiscussedAmount.Float64())
	assert.Equal(t, 2000.0, req.PaidAmount.Float64())
}
