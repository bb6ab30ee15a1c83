package dto

type CreateProductRequest struct {
	Name       string  `json:"name"`
	Brand      string  `json:"brand,omitempty"`
	SKU        string  `json:"sku,omitempty"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	Supplier   string  `json:"supplier,omitempty"`
	LeadTime   string  `json:"lead_time,omitempty"`
	Dimensions string  `json:"dimensions,omitempty"`
	SourceURL  string  `json:"source_url,omitempty"`
	ImageURL   string  `json:"image_url,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
}

type ScrapeProductRequest struct {
	URL string `json:"url"`
}
