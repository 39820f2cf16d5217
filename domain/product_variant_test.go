package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductVariantRoundTrip(t *testing.T) {
	original := ProductVariant{
		ID:         55,
		SKU:        "TEE-BLK-M",
		Stock:      12,
		Attributes: map[string]any{"size": "M", "color": "black"},
		Product: Product{
			ID:          9,
			Name:        "Plain Tee",
			Slug:        "plain-tee",
			Description: "A plain tee",
			Image:       "https://cdn.example.com/tee.png",
			Price:       "10.50",
			ProductType: "apparel",
		},
	}

	decoded, err := ProductVariantFromMap(original.ToMap())
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestProductVariantRequiresProduct(t *testing.T) {
	_, err := ProductVariantFromMap(map[string]any{
		"id":    float64(55),
		"sku":   "TEE-BLK-M",
		"stock": float64(12),
	})
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Fields, "product")
}

func TestUserRoundTrip(t *testing.T) {
	original := User{
		ID:        3,
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "+33123456789",
	}

	decoded, err := UserFromMap(original.ToMap())
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestProductMissingFieldsAreAllReported(t *testing.T) {
	_, err := ProductFromMap(map[string]any{"id": float64(9), "name": "Mug"})
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.ElementsMatch(t, []string{"slug", "description", "image", "price", "product_type"}, decodeErr.Fields)
}
