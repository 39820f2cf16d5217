package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func sampleOrder() Order {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	updated := created.Add(2 * time.Hour)

	return Order{
		ID:            101,
		StoreID:       42,
		Status:        "pending",
		TotalItems:    3,
		TotalPrice:    31.5,
		Notes:         strPtr("leave at the door"),
		CustomerName:  strPtr("Ada Lovelace"),
		CustomerEmail: strPtr("ada@example.com"),
		CustomerPhone: strPtr("+33123456789"),
		ShippingAddress: map[string]any{
			"street": "12 Rue de Rivoli",
			"city":   "Paris",
			"zip":    "75001",
		},
		BillingAddress: map[string]any{
			"street": "12 Rue de Rivoli",
			"city":   "Paris",
			"zip":    "75001",
		},
		Items: []OrderItem{
			{
				ID:         7,
				OrderID:    101,
				Quantity:   3,
				UnitPrice:  10.5,
				TotalPrice: 31.5,
				Attributes: map[string]any{"gift_wrap": true},
				ProductVariant: &ProductVariant{
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
				},
				CreatedAt: timePtr(created),
				UpdatedAt: timePtr(created),
			},
		},
		User: &User{
			ID:        3,
			Email:     "ada@example.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Phone:     "+33123456789",
		},
		CreatedAt: timePtr(created),
		UpdatedAt: timePtr(updated),
	}
}

func TestOrderRoundTrip(t *testing.T) {
	original := sampleOrder()

	decoded, err := OrderFromMap(original.ToMap())
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestOrderDefaultsWhenTotalsAbsent(t *testing.T) {
	order, err := OrderFromMap(map[string]any{
		"id":       float64(1),
		"store_id": float64(42),
		"status":   "pending",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), order.TotalItems)
	assert.Equal(t, 0.0, order.TotalPrice)
	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
	assert.Nil(t, order.User)
	assert.Nil(t, order.ShippingAddress)
	assert.Nil(t, order.CreatedAt)
}

func TestOrderMissingRequiredFields(t *testing.T) {
	_, err := OrderFromMap(map[string]any{"notes": "no ids here"})
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "order", decodeErr.Entity)
	assert.ElementsMatch(t, []string{"id", "store_id", "status"}, decodeErr.Fields)
}

func TestOrderNestedDecodeFailuresUseDottedPaths(t *testing.T) {
	_, err := OrderFromMap(map[string]any{
		"id":       float64(1),
		"store_id": float64(42),
		"status":   "pending",
		"user":     map[string]any{"id": float64(3)},
		"items": []any{
			map[string]any{"id": float64(7)},
		},
	})
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Fields, "user.email")
	assert.Contains(t, decodeErr.Fields, "items[0].order_id")
}

func TestOrderNumericCoercion(t *testing.T) {
	order, err := OrderFromMap(map[string]any{
		"id":          "101",
		"store_id":    float64(42),
		"status":      "paid",
		"total_items": "3",
		"total_price": "99.5",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(101), order.ID)
	assert.Equal(t, int64(3), order.TotalItems)
	assert.Equal(t, 99.5, order.TotalPrice)
}

func TestOrderTimestampParsing(t *testing.T) {
	order, err := OrderFromMap(map[string]any{
		"id":         float64(1),
		"store_id":   float64(42),
		"status":     "pending",
		"created_at": "2025-03-14 09:26:53",
		"updated_at": "2025-03-14T09:26:53Z",
	})
	require.NoError(t, err)

	want := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	require.NotNil(t, order.CreatedAt)
	require.NotNil(t, order.UpdatedAt)
	assert.True(t, order.CreatedAt.Equal(want))
	assert.True(t, order.UpdatedAt.Equal(want))

	// absent optionals serialize as explicit nulls
	m := order.ToMap()
	assert.Equal(t, "2025-03-14 09:26:53", m["created_at"])
	assert.Contains(t, m, "notes")
	assert.Nil(t, m["notes"])
	assert.Contains(t, m, "user")
	assert.Nil(t, m["user"])
}
