package order

import (
	"context"
	"sync"

	"github.com/noah-isme/backend-pasar/internal/common"
)

// Repository records accepted bulk orders. The interface is the seam a
// persistent backend would implement.
type Repository interface {
	Create(ctx context.Context, o Order) (Order, error)
	Get(ctx context.Context, id int) (Order, bool, error)
	List(ctx context.Context) ([]Order, error)
}

// MemRepo holds orders for the process lifetime. A single mutex guards the
// (records, sequence) pair so ID assignment and insertion are one critical
// section.
type MemRepo struct {
	mu     sync.Mutex
	seq    *common.Sequence
	orders []Order
	byID   map[int]Order
}

// NewMemRepo constructs an empty order store with IDs starting at 1.
func NewMemRepo() *MemRepo {
	return &MemRepo{
		seq:  common.NewSequence(1),
		byID: make(map[int]Order),
	}
}

// Create assigns the next sequential ID and stores the order.
func (r *MemRepo) Create(_ context.Context, o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.seq.Next()
	r.orders = append(r.orders, o)
	r.byID[o.ID] = o
	return o, nil
}

// Get looks up a stored order by ID.
func (r *MemRepo) Get(_ context.Context, id int) (Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	return o, ok, nil
}

// List returns every stored order in creation order.
func (r *MemRepo) List(_ context.Context) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
