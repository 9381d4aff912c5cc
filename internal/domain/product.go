package domain

// Product is one catalog row. Products are read-only inputs; bag type is not
// a column of its own, it is inferred from substrings of the display name.
type Product struct {
	ArtworkName string `json:"artwork_name"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	ProductURL  string `json:"product_url"`
}

// Catalog is an ordered product list. Duplicate artwork+product pairs are
// expected in the data and collapsed at query time, never at load time.
type Catalog []Product
