package domain

// ProductVariant is a sellable variation of a product (size, color, ...).
// Every variant owns exactly one Product.
type ProductVariant struct {
	ID         int64
	SKU        string
	Stock      int64
	Attributes map[string]any
	Product    Product
}

// ProductVariantFromMap builds a ProductVariant from a decoded JSON object.
func ProductVariantFromMap(m map[string]any) (ProductVariant, error) {
	d := newDecoder("product_variant", m)
	v := ProductVariant{
		ID:         d.intField("id"),
		SKU:        d.stringField("sku"),
		Stock:      d.intField("stock"),
		Attributes: d.attrMap("attributes"),
	}
	if pm, ok := d.mapField("product"); ok {
		product, err := ProductFromMap(pm)
		if err != nil {
			d.nested("product", err)
		}
		v.Product = product
	}
	return v, d.err()
}

func (v ProductVariant) ToMap() map[string]any {
	return map[string]any{
		"id":         v.ID,
		"sku":        v.SKU,
		"stock":      v.Stock,
		"attributes": v.Attributes,
		"product":    v.Product.ToMap(),
	}
}
