// Package cartstate keeps a local view of a user's cart in step with the
// remote store. Mutations apply optimistically so the UI never waits on the
// network; a failed remote call restores the exact pre-mutation snapshot.
package cartstate

import (
	"context"
	"errors"
	"sync"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
)

// ErrAuthRequired is returned when a cart mutation is attempted without a
// signed-in user; callers redirect to login and no local state changes.
var ErrAuthRequired = errors.New("sign in to use the cart")

// Gateway is the remote cart surface the manager talks to.
type Gateway interface {
	List(ctx context.Context, userID string) ([]model.CartItem, error)
	Add(ctx context.Context, userID, productID string, qty int, size, color string) error
	UpdateQuantity(ctx context.Context, userID, itemID string, qty int) error
	Remove(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

// Session exposes the currently authenticated user, if any.
type Session interface {
	CurrentUserID() (string, bool)
}

// Manager holds the cart list and item count. Item order follows the
// server's return order and carries no meaning.
type Manager struct {
	gw      Gateway
	session Session

	mu    sync.Mutex
	items []model.CartItem
	count int
}

func New(gw Gateway, session Session) *Manager {
	return &Manager{gw: gw, session: session}
}

// Items returns a copy of the current item list.
func (m *Manager) Items() []model.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]model.CartItem, len(m.items))
	copy(items, m.items)
	return items
}

// Count is the sum of item quantities, including optimistic changes.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

type snapshot struct {
	items []model.CartItem
	count int
}

func (m *Manager) snapshotLocked() snapshot {
	items := make([]model.CartItem, len(m.items))
	copy(items, m.items)
	return snapshot{items: items, count: m.count}
}

// mutate snapshots state and applies the optimistic change under one lock
// acquisition, then runs the remote effect. On failure the snapshot is
// restored whole; items and count can never roll back independently.
func (m *Manager) mutate(ctx context.Context, apply func(), effect func(context.Context) error) error {
	m.mu.Lock()
	snap := m.snapshotLocked()
	apply()
	m.mu.Unlock()

	if err := effect(ctx); err != nil {
		m.mu.Lock()
		m.items = snap.items
		m.count = snap.count
		m.mu.Unlock()
		return err
	}
	return nil
}

// AddItem adds qty units of a (product, size, color) combination. The server
// merges into an existing row when one exists, so only the count is bumped
// optimistically; the item list converges on the next refresh.
func (m *Manager) AddItem(ctx context.Context, productID string, qty int, size, color string) error {
	userID, ok := m.session.CurrentUserID()
	if !ok {
		return ErrAuthRequired
	}
	if qty < 1 {
		qty = 1
	}

	err := m.mutate(ctx,
		func() { m.count += qty },
		func(ctx context.Context) error {
			return m.gw.Add(ctx, userID, productID, qty, size, color)
		},
	)
	if err != nil {
		return err
	}

	// Reconciliation is best effort here; the add already succeeded and a
	// change event will retrigger it if this refetch fails.
	_ = m.Refresh(ctx)
	return nil
}

// UpdateQuantity sets the quantity of a cart row. Values below 1 are a
// no-op, not an error: removal is an explicit action, never a side effect
// of a quantity edit.
func (m *Manager) UpdateQuantity(ctx context.Context, itemID string, qty int) error {
	userID, ok := m.session.CurrentUserID()
	if !ok {
		return ErrAuthRequired
	}
	if qty < 1 {
		return nil
	}

	return m.mutate(ctx,
		func() {
			for i := range m.items {
				if m.items[i].ID == itemID {
					m.count += qty - m.items[i].Quantity
					m.items[i].Quantity = qty
					return
				}
			}
		},
		func(ctx context.Context) error {
			return m.gw.UpdateQuantity(ctx, userID, itemID, qty)
		},
	)
}

// RemoveItem removes a cart row. On failure the row comes back, though not
// necessarily at its old position.
func (m *Manager) RemoveItem(ctx context.Context, itemID string) error {
	userID, ok := m.session.CurrentUserID()
	if !ok {
		return ErrAuthRequired
	}

	return m.mutate(ctx,
		func() {
			for i := range m.items {
				if m.items[i].ID == itemID {
					m.count -= m.items[i].Quantity
					m.items = append(m.items[:i], m.items[i+1:]...)
					return
				}
			}
		},
		func(ctx context.Context) error {
			return m.gw.Remove(ctx, userID, itemID)
		},
	)
}

// Clear empties the cart.
func (m *Manager) Clear(ctx context.Context) error {
	userID, ok := m.session.CurrentUserID()
	if !ok {
		return ErrAuthRequired
	}

	return m.mutate(ctx,
		func() {
			m.items = nil
			m.count = 0
		},
		func(ctx context.Context) error {
			return m.gw.Clear(ctx, userID)
		},
	)
}

// Refresh replaces local state with the server's authoritative list and
// recomputes the count. With no signed-in user the local view is emptied.
func (m *Manager) Refresh(ctx context.Context) error {
	userID, ok := m.session.CurrentUserID()
	if !ok {
		m.mu.Lock()
		m.items = nil
		m.count = 0
		m.mu.Unlock()
		return nil
	}

	items, err := m.gw.List(ctx, userID)
	if err != nil {
		return err
	}
	count := 0
	for i := range items {
		count += items[i].Quantity
	}

	m.mu.Lock()
	m.items = items
	m.count = count
	m.mu.Unlock()
	return nil
}
