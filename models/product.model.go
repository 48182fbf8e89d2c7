package models

// Product is one record of the static catalog file. The catalog is read-only:
// the server never writes product.json.
type Product struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Brand     string            `json:"brand"`
	Category  string            `json:"category"`
	Tags      []string          `json:"tags,omitempty"`
	Specs     map[string]string `json:"specs,omitempty"`
	Images    []string          `json:"images,omitempty"`
	Price     float64           `json:"price"`
	Condition string            `json:"condition,omitempty"`
}

// FeaturedProduct is the trimmed product view shown on the admin dashboard.
type FeaturedProduct struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
}
