package model

// Picture holds the remote image reference for a product.
type Picture struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CatalogueProduct represents a product record as returned by the remote catalogue.
type CatalogueProduct struct {
	ID            int      `json:"id"`
	Picture       Picture  `json:"picture"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Likes         int      `json:"likes"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
}

// ProductLocalInfo represents the locally persisted per-product user state.
// A nil rate means the user has never rated the product.
type ProductLocalInfo struct {
	ID       int      `json:"id" db:"id"`
	Favorite bool     `json:"favorite" db:"favorite"`
	Rate     *float64 `json:"rate" db:"rate"`
}

// Product is the unified view of a product, merging remote catalogue fields
// with the local overlay state.
type Product struct {
	ID            int      `json:"id"`
	Picture       Picture  `json:"picture"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Likes         int      `json:"likes"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Favorite      bool     `json:"favorite"`
	Rate          *float64 `json:"rate"`
}

// Merge combines a catalogue record with its local overlay state. A nil
// local yields the first-sight defaults (favorite=false, rate unset).
func Merge(remote CatalogueProduct, local *ProductLocalInfo) Product {
	p := Product{
		ID:            remote.ID,
		Picture:       remote.Picture,
		Name:          remote.Name,
		Category:      remote.Category,
		Likes:         remote.Likes,
		Price:         remote.Price,
		OriginalPrice: remote.OriginalPrice,
	}
	if local != nil {
		p.Favorite = local.Favorite
		p.Rate = local.Rate
	}
	return p
}
