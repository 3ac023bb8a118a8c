package pricing

import "errors"

// Money represents a monetary value stored in minor units.
type Money = int64

var (
	// ErrNonPositiveQuantity is returned when a quantity or price input is not positive.
	ErrNonPositiveQuantity = errors.New("pricing: inputs must be positive")
	// ErrBelowMinimum is returned when the requested quantity is below the
	// product's minimum order quantity. Callers must reject such requests
	// before a price can be resolved.
	ErrBelowMinimum = errors.New("pricing: quantity below minimum order quantity")
)

// Tier pairs a quantity threshold with the discount applied at and above it.
type Tier struct {
	MinQuantity     int `json:"minQuantity"`
	DiscountPercent int `json:"discountPercent"`
}

// Policy derives the ordered discount tiers for a product's minimum order
// quantity. Thresholds must be strictly increasing, discounts non-decreasing,
// and the first tier always carries a zero discount.
type Policy func(minQuantity int) []Tier

// DefaultPolicy is the marketplace-wide bulk discount table: the base tier at
// the minimum order quantity, then 5% at 5x, 10% at 10x, and 15% at 20x.
func DefaultPolicy(minQuantity int) []Tier {
	return []Tier{
		{MinQuantity: minQuantity, DiscountPercent: 0},
		{MinQuantity: 5 * minQuantity, DiscountPercent: 5},
		{MinQuantity: 10 * minQuantity, DiscountPercent: 10},
		{MinQuantity: 20 * minQuantity, DiscountPercent: 15},
	}
}

// Quote describes the resolved price for a requested quantity.
type Quote struct {
	Quantity        int   `json:"quantity"`
	BasePrice       Money `json:"basePrice"`
	UnitPrice       Money `json:"unitPrice"`
	DiscountPercent int   `json:"discountPercent"`
	Total           Money `json:"total"`
}

// Resolve computes the effective unit price for the requested quantity by
// selecting the highest tier whose threshold does not exceed it. The tier
// table is derived from minQuantity via the policy; a nil policy falls back
// to DefaultPolicy. Quantities below minQuantity are a contract violation
// and yield ErrBelowMinimum rather than a clamped result.
func Resolve(basePrice Money, minQuantity, quantity int, policy Policy) (Quote, error) {
	if basePrice <= 0 || minQuantity <= 0 || quantity <= 0 {
		return Quote{}, ErrNonPositiveQuantity
	}
	if quantity < minQuantity {
		return Quote{}, ErrBelowMinimum
	}
	if policy == nil {
		policy = DefaultPolicy
	}

	discount := 0
	for _, tier := range policy(minQuantity) {
		if quantity >= tier.MinQuantity && tier.DiscountPercent >= discount {
			discount = tier.DiscountPercent
		}
	}

	unit := basePrice * Money(100-discount) / 100
	return Quote{
		Quantity:        quantity,
		BasePrice:       basePrice,
		UnitPrice:       unit,
		DiscountPercent: discount,
		Total:           unit * Money(quantity),
	}, nil
}
