package catalog

import (
	"context"
	"fmt"

	"github.com/noah-isme/backend-pasar/internal/common"
)

// Repository answers catalog queries. The in-memory implementation is the
// only backend in use; the interface is the seam a persistent store would
// implement without touching pricing or validation logic.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	Get(ctx context.Context, id int) (Product, bool, error)
}

// MemRepo holds the seeded product set. The catalog never leaves its seeded
// state, so reads need no synchronisation.
type MemRepo struct {
	products []Product
	byID     map[int]Product
	seq      *common.Sequence
}

// NewMemRepo validates and stores the seed set, preserving insertion order.
// The internal ID sequence starts at max(seed IDs)+1.
func NewMemRepo(seed []Product) (*MemRepo, error) {
	repo := &MemRepo{
		products: make([]Product, 0, len(seed)),
		byID:     make(map[int]Product, len(seed)),
	}
	maxID := 0
	for _, p := range seed {
		if p.Name == "" {
			return nil, fmt.Errorf("catalog: product %d has empty name", p.ID)
		}
		if p.PricePerKg <= 0 {
			return nil, fmt.Errorf("catalog: product %q has non-positive price", p.Name)
		}
		if p.MinQuantity <= 0 {
			return nil, fmt.Errorf("catalog: product %q has non-positive minimum quantity", p.Name)
		}
		if _, exists := repo.byID[p.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate product id %d", p.ID)
		}
		repo.products = append(repo.products, p)
		repo.byID[p.ID] = p
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	repo.seq = common.NewSequence(maxID + 1)
	return repo, nil
}

// List returns every product in stable insertion order.
func (r *MemRepo) List(_ context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// ListByCategory returns the subset whose category equals the argument
// exactly. Unknown categories yield an empty slice, not an error.
func (r *MemRepo) ListByCategory(_ context.Context, category string) ([]Product, error) {
	out := make([]Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// Get looks up a product by ID.
func (r *MemRepo) Get(_ context.Context, id int) (Product, bool, error) {
	p, ok := r.byID[id]
	return p, ok, nil
}

// NextID reports the identifier a future insert would receive.
func (r *MemRepo) NextID() int {
	return r.seq.Peek()
}
