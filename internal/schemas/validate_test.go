package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenerateRequest_Valid(t *testing.T) {
	payload := `{
		"our_brand": "Corner Bakery",
		"competitor_name": "Big Bread Co",
		"zipcode": "94102",
		"hashtags": ["#fresh", "#local"],
		"offer_type": "discount",
		"num_variations": 3
	}`

	err := ValidateGenerateRequest([]byte(payload))
	assert.NoError(t, err)
}

func TestValidateGenerateRequest_MinimalValid(t *testing.T) {
	payload := `{"our_brand": "A", "competitor_name": "B"}`

	err := ValidateGenerateRequest([]byte(payload))
	assert.NoError(t, err)
}

func TestValidateGenerateRequest_MissingRequired(t *testing.T) {
	payload := `{"our_brand": "Corner Bakery"}`

	err := ValidateGenerateRequest([]byte(payload))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateGenerateRequest_BadZipcode(t *testing.T) {
	payload := `{"our_brand": "A", "competitor_name": "B", "zipcode": "abcde"}`

	err := ValidateGenerateRequest([]byte(payload))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "zipcode", validationErr.Errors[0].Field)
}

func TestValidateGenerateRequest_BadOfferType(t *testing.T) {
	payload := `{"our_brand": "A", "competitor_name": "B", "offer_type": "flash_sale"}`

	err := ValidateGenerateRequest([]byte(payload))
	require.Error(t, err)
}

func TestValidateGenerateRequest_VariantCountOutOfRange(t *testing.T) {
	payload := `{"our_brand": "A", "competitor_name": "B", "num_variations": 11}`

	err := ValidateGenerateRequest([]byte(payload))
	require.Error(t, err)
}

func TestValidateGenerateRequest_NotJSON(t *testing.T) {
	err := ValidateGenerateRequest([]byte("not json"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
