package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Amount    string `json:"amount" validate:"required,decimal_amount"`
	Direction string `json:"direction" validate:"required,direction"`
	Category  string `json:"category" validate:"omitempty,category"`
}

func TestCustomRules(t *testing.T) {
	v := NewValidator().GetValidate()

	testCases := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{"valid", sampleRequest{"150.25", "EXPENSE", "Food"}, ""},
		{"lowercase enums", sampleRequest{"0", "income", "salary"}, ""},
		{"category optional", sampleRequest{"1", "INCOME", ""}, ""},
		{"negative amount", sampleRequest{"-1", "EXPENSE", ""}, "amount"},
		{"too precise", sampleRequest{"1.00001", "EXPENSE", ""}, "amount"},
		{"not a number", sampleRequest{"ten", "EXPENSE", ""}, "amount"},
		{"bad direction", sampleRequest{"1", "TRANSFER", ""}, "direction"},
		{"bad category", sampleRequest{"1", "EXPENSE", "Groceries"}, "category"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			require.Len(t, validationErrs, 1)
			assert.Equal(t, tc.wantErr, validationErrs[0].Field())
		})
	}
}

func TestGetValidatorIsShared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
