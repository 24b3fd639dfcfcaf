package validator_test

import (
	"stayhub/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stayRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	CheckIn    string `json:"check_in"     validate:"required,daydate"`
	CheckOut   string `json:"check_out"    validate:"required,daydate"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid request",
			body:    `{"room_type_id":"rt-1","check_in":"2024-12-24","check_out":"2024-12-26"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"check_in":"2024-12-24","check_out":"2024-12-26"}`,
			wantErr: true,
		},
		{
			name:    "malformed date",
			body:    `{"room_type_id":"rt-1","check_in":"24/12/2024","check_out":"2024-12-26"}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			body:    `{"room_type_id":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := stayRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar_Weekday(t *testing.T) {
	assert.NoError(t, validator.ValidateVar(0, "weekday"))
	assert.NoError(t, validator.ValidateVar(6, "weekday"))
	assert.Error(t, validator.ValidateVar(7, "weekday"))
	assert.Error(t, validator.ValidateVar(-1, "weekday"))
}

func TestValidateStruct_DayDate(t *testing.T) {
	req := stayRequest{RoomTypeID: "rt-1", CheckIn: "2024-02-30", CheckOut: "2024-03-02"}

	err := validator.ValidateStruct(&req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CheckIn")
}
