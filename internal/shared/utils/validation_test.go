package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/shared/errors"
)

type priceRequest struct {
	Name     string `json:"name" binding:"required" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	Currency string `json:"currency" validate:"required,currency"`
}

func TestValidateStruct_Currency(t *testing.T) {
	err := ValidateStruct(priceRequest{Name: "General", Price: 2500, Currency: "USD"})
	assert.NoError(t, err)

	err = ValidateStruct(priceRequest{Name: "General", Price: 2500, Currency: "usd"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "currency must be a three letter currency code")
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	err := ValidateStruct(priceRequest{Price: -1, Currency: "EUR"})
	require.Error(t, err)
	details := errors.GetAppError(err).Details
	assert.Contains(t, details, "name is required")
	assert.Contains(t, details, "price must be greater than or equal to 0")
}

func TestIsCurrencyCode(t *testing.T) {
	assert.True(t, IsCurrencyCode("GBP"))
	assert.False(t, IsCurrencyCode("GB"))
	assert.False(t, IsCurrencyCode("gbp"))
}
