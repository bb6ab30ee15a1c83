package models

// ProductItem is an independent catalog entry. SKUs are intended unique but
// uniqueness is not enforced by the store.
type ProductItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	SKU        string  `json:"sku"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	Supplier   string  `json:"supplier"`
	LeadTime   string  `json:"lead_time"`
	Dimensions string  `json:"dimensions"`
	SourceURL  string  `json:"source_url,omitempty"`
	ImageURL   string  `json:"image_url,omitempty"`
}

type ProductItemPatch struct {
	Name       *string  `json:"name,omitempty"`
	Brand      *string  `json:"brand,omitempty"`
	SKU        *string  `json:"sku,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Category   *string  `json:"category,omitempty"`
	Supplier   *string  `json:"supplier,omitempty"`
	LeadTime   *string  `json:"lead_time,omitempty"`
	Dimensions *string  `json:"dimensions,omitempty"`
	SourceURL  *string  `json:"source_url,omitempty"`
	ImageURL   *string  `json:"image_url,omitempty"`
}

func (pi ProductItem) Apply(p ProductItemPatch) ProductItem {
	if p.Name != nil {
		pi.Name = *p.Name
	}
	if p.Brand != nil {
		pi.Brand = *p.Brand
	}
	if p.SKU != nil {
		pi.SKU = *p.SKU
	}
	if p.Price != nil {
		pi.Price = *p.Price
	}
	if p.Category != nil {
		pi.Category = *p.Category
	}
	if p.Supplier != nil {
		pi.Supplier = *p.Supplier
	}
	if p.LeadTime != nil {
		pi.LeadTime = *p.LeadTime
	}
	if p.Dimensions != nil {
		pi.Dimensions = *p.Dimensions
	}
	if p.SourceURL != nil {
		pi.SourceURL = *p.SourceURL
	}
	if p.ImageURL != nil {
		pi.ImageURL = *p.ImageURL
	}
	return pi
}

type ProductCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
}
