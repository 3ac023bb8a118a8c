package catalog

import "github.com/noah-isme/backend-pasar/internal/pricing"

// Product categories offered by the marketplace.
const (
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
)

// Product is a bulk-purchasable catalog entry. Records are seeded once at
// startup and immutable afterwards.
type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	ImageURL    string        `json:"imageUrl"`
	PricePerKg  pricing.Money `json:"pricePerKg"`
	MinQuantity int           `json:"minQuantity"`
	Available   bool          `json:"available"`
}
