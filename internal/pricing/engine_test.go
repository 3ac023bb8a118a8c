package pricing

import (
	"errors"
	"testing"
)

func TestResolveBaseTier(t *testing.T) {
	for _, minQty := range []int{1, 5, 10, 8, 20} {
		quote, err := Resolve(50, minQty, minQty, nil)
		if err != nil {
			t.Fatalf("minQty %d: unexpected error %v", minQty, err)
		}
		if quote.DiscountPercent != 0 {
			t.Fatalf("minQty %d: expected 0%% discount at base tier, got %d", minQty, quote.DiscountPercent)
		}
		if quote.UnitPrice != 50 {
			t.Fatalf("minQty %d: expected full unit price, got %d", minQty, quote.UnitPrice)
		}
	}
}

func TestResolveTierBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		discount int
		unit     int64
	}{
		{"below 5x stays base", 49, 0, 50},
		{"at 5x", 50, 5, 47},
		{"at 10x", 100, 10, 45},
		{"just below 20x keeps 10x tier", 199, 10, 45},
		{"at 20x", 200, 15, 42},
		{"beyond 20x keeps top tier", 1000, 15, 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := Resolve(50, 10, tc.quantity, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if quote.DiscountPercent != tc.discount {
				t.Fatalf("expected %d%% discount, got %d", tc.discount, quote.DiscountPercent)
			}
			if quote.UnitPrice != tc.unit {
				t.Fatalf("expected unit price %d, got %d", tc.unit, quote.UnitPrice)
			}
			if quote.Total != quote.UnitPrice*int64(tc.quantity) {
				t.Fatalf("total %d does not match unit*quantity", quote.Total)
			}
		})
	}
}

func TestResolveOrganicCarrots(t *testing.T) {
	quote, err := Resolve(50, 10, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.DiscountPercent != 10 {
		t.Fatalf("expected 10%% discount, got %d", quote.DiscountPercent)
	}
	if quote.Total != 4500 {
		t.Fatalf("expected total 4500, got %d", quote.Total)
	}
}

func TestResolveRejectsBelowMinimum(t *testing.T) {
	if _, err := Resolve(50, 10, 9, nil); !errors.Is(err, ErrBelowMinimum) {
		t.Fatalf("expected ErrBelowMinimum, got %v", err)
	}
}

func TestResolveRejectsNonPositiveInputs(t *testing.T) {
	cases := []struct {
		base     int64
		minQty   int
		quantity int
	}{
		{0, 10, 10},
		{-50, 10, 10},
		{50, 0, 10},
		{50, 10, 0},
		{50, 10, -1},
	}
	for _, tc := range cases {
		if _, err := Resolve(tc.base, tc.minQty, tc.quantity, nil); !errors.Is(err, ErrNonPositiveQuantity) {
			t.Fatalf("base=%d minQty=%d qty=%d: expected ErrNonPositiveQuantity, got %v", tc.base, tc.minQty, tc.quantity, err)
		}
	}
}

func TestResolveCustomPolicy(t *testing.T) {
	flat := func(minQuantity int) []Tier {
		return []Tier{{MinQuantity: minQuantity, DiscountPercent: 0}, {MinQuantity: 2 * minQuantity, DiscountPercent: 50}}
	}
	quote, err := Resolve(100, 10, 20, flat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.UnitPrice != 50 || quote.DiscountPercent != 50 {
		t.Fatalf("custom policy not applied: %+v", quote)
	}
}
