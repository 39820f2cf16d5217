package domain

import (
	"fmt"
	"time"
)

// Order is the canonical order shape. The API answers store-scoped and
// user-scoped reads with slightly different field sets, so the optional
// fields here cover the union: customer_* strings come back on store reads,
// the embedded User on user reads. TotalItems and TotalPrice are
// server-computed and are never recomputed client-side.
type Order struct {
	ID              int64
	StoreID         int64
	Status          string
	Items           []OrderItem
	TotalItems      int64
	TotalPrice      float64
	Notes           *string
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	ShippingAddress map[string]any
	BillingAddress  map[string]any
	User            *User
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

// OrderFromMap builds an Order from a decoded JSON object. id, store_id and
// status must be present; totals default to zero, items to an empty slice.
func OrderFromMap(m map[string]any) (Order, error) {
	d := newDecoder("order", m)
	o := Order{
		ID:              d.intField("id"),
		StoreID:         d.intField("store_id"),
		Status:          d.stringField("status"),
		TotalItems:      d.intOrZero("total_items"),
		TotalPrice:      d.floatOrZero("total_price"),
		Notes:           d.optString("notes"),
		CustomerName:    d.optString("customer_name"),
		CustomerEmail:   d.optString("customer_email"),
		CustomerPhone:   d.optString("customer_phone"),
		ShippingAddress: d.optMap("shipping_address"),
		BillingAddress:  d.optMap("billing_address"),
		CreatedAt:       d.optTime("created_at"),
		UpdatedAt:       d.optTime("updated_at"),
	}

	itemMaps := d.mapSlice("items")
	o.Items = make([]OrderItem, 0, len(itemMaps))
	for idx, im := range itemMaps {
		item, err := OrderItemFromMap(im)
		if err != nil {
			d.nested(fmt.Sprintf("items[%d]", idx), err)
			continue
		}
		o.Items = append(o.Items, item)
	}

	if um := d.optMap("user"); um != nil {
		user, err := UserFromMap(um)
		if err != nil {
			d.nested("user", err)
		} else {
			o.User = &user
		}
	}

	return o, d.err()
}

func (o Order) ToMap() map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, item.ToMap())
	}

	m := map[string]any{
		"id":               o.ID,
		"store_id":         o.StoreID,
		"status":           o.Status,
		"items":            items,
		"total_items":      o.TotalItems,
		"total_price":      o.TotalPrice,
		"notes":            stringValue(o.Notes),
		"customer_name":    stringValue(o.CustomerName),
		"customer_email":   stringValue(o.CustomerEmail),
		"customer_phone":   stringValue(o.CustomerPhone),
		"shipping_address": nil,
		"billing_address":  nil,
		"user":             nil,
		"created_at":       formatTime(o.CreatedAt),
		"updated_at":       formatTime(o.UpdatedAt),
	}
	if o.ShippingAddress != nil {
		m["shipping_address"] = o.ShippingAddress
	}
	if o.BillingAddress != nil {
		m["billing_address"] = o.BillingAddress
	}
	if o.User != nil {
		m["user"] = o.User.ToMap()
	}
	return m
}
