package repository

import (
	"sync"
	"time"

	"github.com/planhaus/storefront/base/ctx"
	"github.com/planhaus/storefront/base/ptr"
	"github.com/planhaus/storefront/domain"
	"github.com/planhaus/storefront/domain/purchase"
)

type attemptRepo struct {
	mu       sync.RWMutex
	attempts map[string]*purchase.Attempt
}

// NewAttemptRepo keeps attempts in process memory. Attempts only live for
// the duration of one checkout flow, so nothing is persisted.
func NewAttemptRepo() purchase.AttemptRepo {
	return &attemptRepo{attempts: map[string]*purchase.Attempt{}}
}

func (r *attemptRepo) Create(c ctx.Ctx, attempt *purchase.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	attempt.CreatedAt = now
	attempt.UpdatedAt = now
	r.attempts[attempt.Id] = cloneAttempt(attempt)
	return nil
}

func (r *attemptRepo) FindOne(c ctx.Ctx, id string) (*purchase.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attempt, ok := r.attempts[id]
	if !ok {
		return nil, domain.ErrAttemptNotFound
	}
	return cloneAttempt(attempt), nil
}

func (r *attemptRepo) Update(c ctx.Ctx, attempt *purchase.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attempts[attempt.Id]; !ok {
		return domain.ErrAttemptNotFound
	}
	attempt.UpdatedAt = time.Now()
	r.attempts[attempt.Id] = cloneAttempt(attempt)
	return nil
}

func (r *attemptRepo) Delete(c ctx.Ctx, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attempts[id]; !ok {
		return domain.ErrAttemptNotFound
	}
	delete(r.attempts, id)
	return nil
}

// cloneAttempt keeps callers from mutating the stored record through the
// returned pointer.
func cloneAttempt(a *purchase.Attempt) *purchase.Attempt {
	out := *a
	if a.Contact != nil {
		contact := *a.Contact
		out.Contact = &contact
	}
	if a.PurchaseId != nil {
		out.PurchaseId = ptr.Int64(*a.PurchaseId)
	}
	return &out
}
