package domain

// Product is the catalog entry a variant belongs to. Price stays a string so
// the server-side formatting survives the round trip.
type Product struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Image       string
	Price       string
	ProductType string
}

// ProductFromMap builds a Product from a decoded JSON object.
func ProductFromMap(m map[string]any) (Product, error) {
	d := newDecoder("product", m)
	p := Product{
		ID:          d.intField("id"),
		Name:        d.stringField("name"),
		Slug:        d.stringField("slug"),
		Description: d.stringField("description"),
		Image:       d.stringField("image"),
		Price:       d.stringField("price"),
		ProductType: d.stringField("product_type"),
	}
	return p, d.err()
}

func (p Product) ToMap() map[string]any {
	return map[string]any{
		"id":           p.ID,
		"name":         p.Name,
		"slug":         p.Slug,
		"description":  p.Description,
		"image":        p.Image,
		"price":        p.Price,
		"product_type": p.ProductType,
	}
}
