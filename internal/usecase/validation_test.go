package usecase

import (
	"testing"

	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_VerifyStaffPinInput(t *testing.T) {
	tests := []struct {
		name    string
		input   VerifyStaffPinInput
		wantMsg string
	}{
		{name: "both missing", input: VerifyStaffPinInput{}, wantMsg: "companyCode and pin are required"},
		{name: "pin missing", input: VerifyStaffPinInput{CompanyCode: "VUE123"}, wantMsg: "pin is required"},
		{name: "whitespace only", input: VerifyStaffPinInput{CompanyCode: "  ", Pin: " \t"}, wantMsg: "companyCode and pin are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Normalize()
			err := Validate(&tt.input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMsg, validationErr.Message())
			assert.Equal(t, domainerrors.StatusInvalidArgument, validationErr.ErrorCode())
		})
	}
}

func TestValidate_Valid(t *testing.T) {
	input := VerifyStaffPinInput{CompanyCode: " vue123 ", Pin: " 0420 "}
	input.Normalize()

	require.NoError(t, Validate(&input))
	assert.Equal(t, "VUE123", input.CompanyCode)
	assert.Equal(t, "0420", input.Pin)
}

func TestValidate_SendCompanyNotificationInput(t *testing.T) {
	input := SendCompanyNotificationInput{CompanyID: " ", Event: ""}
	input.Normalize()

	err := Validate(&input)
	require.Error(t, err)
	assert.Equal(t, "companyId and event are required", err.Error())
}

func TestValidate_DedupeStaffInput(t *testing.T) {
	require.NoError(t, Validate(&DedupeStaffInput{CompanyCode: "VUE123"}))
	require.NoError(t, Validate(&DedupeStaffInput{CompanyID: "1234"}))

	err := Validate(&DedupeStaffInput{})
	require.Error(t, err)
	assert.Equal(t, "companyId and companyCode are required", err.Error())
}

func TestValidate_SeedStaffInputRole(t *testing.T) {
	input := SeedStaffInput{StaffID: "nikita", CompanyCode: "VUE123", Pin: "0420", Role: "owner"}

	err := Validate(&input)
	require.Error(t, err)
	assert.Equal(t, "role is invalid", err.Error())
}
