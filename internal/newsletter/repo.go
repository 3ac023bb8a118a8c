package newsletter

import (
	"context"
	"errors"
	"sync"

	"github.com/noah-isme/backend-pasar/internal/common"
)

// ErrDuplicateEmail is returned when the email is already subscribed.
var ErrDuplicateEmail = errors.New("newsletter: email already subscribed")

// Repository records newsletter subscriptions.
type Repository interface {
	Create(ctx context.Context, s Subscription) (Subscription, error)
	List(ctx context.Context) ([]Subscription, error)
}

// MemRepo holds subscriptions for the process lifetime. The email index is
// maintained inside the same critical section as the insert, so the
// uniqueness check and the counter can never diverge.
type MemRepo struct {
	mu      sync.Mutex
	seq     *common.Sequence
	subs    []Subscription
	byEmail map[string]int
}

// NewMemRepo constructs an empty subscription store with IDs starting at 1.
func NewMemRepo() *MemRepo {
	return &MemRepo{
		seq:     common.NewSequence(1),
		byEmail: make(map[string]int),
	}
}

// Create stores the subscription under the next sequential ID. A duplicate
// email fails with ErrDuplicateEmail without advancing the counter.
func (r *MemRepo) Create(_ context.Context, s Subscription) (Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[s.Email]; exists {
		return Subscription{}, ErrDuplicateEmail
	}
	s.ID = r.seq.Next()
	r.subs = append(r.subs, s)
	r.byEmail[s.Email] = s.ID
	return s, nil
}

// List returns every subscription in creation order.
func (r *MemRepo) List(_ context.Context) ([]Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Subscription, len(r.subs))
	copy(out, r.subs)
	return out, nil
}
