package domain

import "time"

// OrderItem is a line item as the server reports it. ProductVariant is nil
// when the line is not tied to catalog data.
type OrderItem struct {
	ID             int64
	OrderID        int64
	Quantity       int64
	UnitPrice      float64
	TotalPrice     float64
	Attributes     map[string]any
	ProductVariant *ProductVariant
	CreatedAt      *time.Time
	UpdatedAt      *time.Time
}

// OrderItemFromMap builds an OrderItem from a decoded JSON object.
func OrderItemFromMap(m map[string]any) (OrderItem, error) {
	d := newDecoder("order_item", m)
	it := OrderItem{
		ID:         d.intField("id"),
		OrderID:    d.intField("order_id"),
		Quantity:   d.intField("quantity"),
		UnitPrice:  d.floatField("unit_price"),
		TotalPrice: d.floatField("total_price"),
		Attributes: d.attrMap("attributes"),
		CreatedAt:  d.optTime("created_at"),
		UpdatedAt:  d.optTime("updated_at"),
	}
	if vm := d.optMap("product_variant"); vm != nil {
		variant, err := ProductVariantFromMap(vm)
		if err != nil {
			d.nested("product_variant", err)
		} else {
			it.ProductVariant = &variant
		}
	}
	return it, d.err()
}

func (it OrderItem) ToMap() map[string]any {
	m := map[string]any{
		"id":              it.ID,
		"order_id":        it.OrderID,
		"quantity":        it.Quantity,
		"unit_price":      it.UnitPrice,
		"total_price":     it.TotalPrice,
		"attributes":      it.Attributes,
		"product_variant": nil,
		"created_at":      formatTime(it.CreatedAt),
		"updated_at":      formatTime(it.UpdatedAt),
	}
	if it.ProductVariant != nil {
		m["product_variant"] = it.ProductVariant.ToMap()
	}
	return m
}

// NewOrderItem is the request shape for submitting a line item. Totals are
// derived on demand, never stored; the server recomputes them anyway.
type NewOrderItem struct {
	ProductID          int64          `json:"product_id" validate:"required"`
	ProductName        string         `json:"product_name" validate:"required"`
	ProductDescription *string        `json:"product_description"`
	Quantity           int64          `json:"quantity" validate:"required,gt=0"`
	UnitPrice          float64        `json:"unit_price" validate:"required"`
	SKU                *string        `json:"sku"`
	Options            map[string]any `json:"options"`
}

// TotalPrice is the derived line total: unit price times quantity.
func (i NewOrderItem) TotalPrice() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

func (i NewOrderItem) ToMap() map[string]any {
	return map[string]any{
		"product_id":          i.ProductID,
		"product_name":        i.ProductName,
		"product_description": stringValue(i.ProductDescription),
		"quantity":            i.Quantity,
		"unit_price":          i.UnitPrice,
		"sku":                 stringValue(i.SKU),
		"options":             i.Options,
	}
}
