package cartstate

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
)

var errBackend = errors.New("backend unavailable")

type fakeSession struct {
	userID   string
	signedIn bool
}

func (s *fakeSession) CurrentUserID() (string, bool) {
	return s.userID, s.signedIn
}

// fakeGateway keeps server-side rows in memory and can be told to fail any
// operation.
type fakeGateway struct {
	rows []model.CartItem
	next int

	failAdd    bool
	failUpdate bool
	failRemove bool
	failClear  bool
	failList   bool

	listed chan struct{}
}

func (g *fakeGateway) List(_ context.Context, _ string) ([]model.CartItem, error) {
	if g.listed != nil {
		defer func() { g.listed <- struct{}{} }()
	}
	if g.failList {
		return nil, errBackend
	}
	out := make([]model.CartItem, len(g.rows))
	copy(out, g.rows)
	return out, nil
}

func (g *fakeGateway) Add(_ context.Context, userID, productID string, qty int, size, color string) error {
	if g.failAdd {
		return errBackend
	}
	for i := range g.rows {
		r := &g.rows[i]
		if r.ProductID == productID && r.Size == size && r.Color == color {
			r.Quantity += qty
			return nil
		}
	}
	g.next++
	g.rows = append(g.rows, model.CartItem{
		ID:        string(rune('a' + g.next)),
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
		Size:      size,
		Color:     color,
	})
	return nil
}

func (g *fakeGateway) UpdateQuantity(_ context.Context, _, itemID string, qty int) error {
	if g.failUpdate {
		return errBackend
	}
	for i := range g.rows {
		if g.rows[i].ID == itemID {
			g.rows[i].Quantity = qty
			return nil
		}
	}
	return errors.New("cart item not found")
}

func (g *fakeGateway) Remove(_ context.Context, _, itemID string) error {
	if g.failRemove {
		return errBackend
	}
	for i := range g.rows {
		if g.rows[i].ID == itemID {
			g.rows = append(g.rows[:i], g.rows[i+1:]...)
			return nil
		}
	}
	return errors.New("cart item not found")
}

func (g *fakeGateway) Clear(_ context.Context, _ string) error {
	if g.failClear {
		return errBackend
	}
	g.rows = nil
	return nil
}

func seededManager(t *testing.T) (*Manager, *fakeGateway) {
	t.Helper()
	gw := &fakeGateway{rows: []model.CartItem{
		{ID: "i1", UserID: "u1", ProductID: "p1", Quantity: 2, Size: "M", Color: "black"},
		{ID: "i2", UserID: "u1", ProductID: "p2", Quantity: 1},
	}}
	m := New(gw, &fakeSession{userID: "u1", signedIn: true})
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("seed Refresh returned error: %v", err)
	}
	return m, gw
}

func assertInvariant(t *testing.T, m *Manager) {
	t.Helper()
	sum := 0
	for _, it := range m.Items() {
		sum += it.Quantity
	}
	if m.Count() != sum {
		t.Fatalf("count %d != sum of quantities %d", m.Count(), sum)
	}
}

func TestAddItemRequiresAuth(t *testing.T) {
	gw := &fakeGateway{}
	m := New(gw, &fakeSession{})

	err := m.AddItem(context.Background(), "p1", 1, "", "")
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("err = %v, want ErrAuthRequired", err)
	}
	if m.Count() != 0 || len(m.Items()) != 0 {
		t.Fatal("unauthenticated add must not change state")
	}
}

func TestAddItemMergesDuplicates(t *testing.T) {
	m, gw := seededManager(t)

	// same (product, size, color) as an existing row: server must merge
	if err := m.AddItem(context.Background(), "p1", 3, "M", "black"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if len(gw.rows) != 2 {
		t.Fatalf("server row count = %d, want 2 (merged)", len(gw.rows))
	}
	if gw.rows[0].Quantity != 5 {
		t.Fatalf("merged quantity = %d, want 5", gw.rows[0].Quantity)
	}
	if m.Count() != 6 {
		t.Fatalf("count = %d, want 6", m.Count())
	}
	assertInvariant(t, m)
}

func TestAddItemRollsBackOnFailure(t *testing.T) {
	m, gw := seededManager(t)
	gw.failAdd = true

	itemsBefore := m.Items()
	countBefore := m.Count()

	if err := m.AddItem(context.Background(), "p3", 4, "", ""); !errors.Is(err, errBackend) {
		t.Fatalf("err = %v, want backend error", err)
	}
	if m.Count() != countBefore {
		t.Fatalf("count = %d, want %d after rollback", m.Count(), countBefore)
	}
	if !reflect.DeepEqual(m.Items(), itemsBefore) {
		t.Fatal("items changed after rolled-back add")
	}
	assertInvariant(t, m)
}

func TestUpdateQuantityBelowOneIsNoOp(t *testing.T) {
	m, gw := seededManager(t)

	itemsBefore := m.Items()
	countBefore := m.Count()

	if err := m.UpdateQuantity(context.Background(), "i1", 0); err != nil {
		t.Fatalf("UpdateQuantity(0) returned error: %v", err)
	}
	if gw.rows[0].Quantity != 2 {
		t.Fatal("no-op update must not reach the server")
	}
	if m.Count() != countBefore || !reflect.DeepEqual(m.Items(), itemsBefore) {
		t.Fatal("no-op update must not change state")
	}
}

func TestUpdateQuantityAppliesOptimistically(t *testing.T) {
	m, _ := seededManager(t)

	if err := m.UpdateQuantity(context.Background(), "i1", 5); err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}
	if m.Count() != 6 {
		t.Fatalf("count = %d, want 6", m.Count())
	}
	assertInvariant(t, m)
}

func TestUpdateQuantityRollsBackOnFailure(t *testing.T) {
	m, gw := seededManager(t)
	gw.failUpdate = true

	itemsBefore := m.Items()
	countBefore := m.Count()

	if err := m.UpdateQuantity(context.Background(), "i1", 7); !errors.Is(err, errBackend) {
		t.Fatalf("err = %v, want backend error", err)
	}
	if m.Count() != countBefore || !reflect.DeepEqual(m.Items(), itemsBefore) {
		t.Fatal("state must equal the pre-update snapshot after rollback")
	}
	assertInvariant(t, m)
}

func TestRemoveItemRollsBackOnFailure(t *testing.T) {
	m, gw := seededManager(t)
	gw.failRemove = true

	itemsBefore := m.Items()
	countBefore := m.Count()

	if err := m.RemoveItem(context.Background(), "i1"); !errors.Is(err, errBackend) {
		t.Fatalf("err = %v, want backend error", err)
	}
	if m.Count() != countBefore || !reflect.DeepEqual(m.Items(), itemsBefore) {
		t.Fatal("removed item must be restored after rollback")
	}
	assertInvariant(t, m)
}

func TestRemoveItemSuccess(t *testing.T) {
	m, gw := seededManager(t)

	if err := m.RemoveItem(context.Background(), "i1"); err != nil {
		t.Fatalf("RemoveItem returned error: %v", err)
	}
	if m.Count() != 1 || len(m.Items()) != 1 {
		t.Fatalf("count = %d, items = %d; want 1 and 1", m.Count(), len(m.Items()))
	}
	if len(gw.rows) != 1 {
		t.Fatalf("server rows = %d, want 1", len(gw.rows))
	}
	assertInvariant(t, m)
}

func TestClearRestoresSnapshotOnFailure(t *testing.T) {
	m, gw := seededManager(t)
	gw.failClear = true

	itemsBefore := m.Items()
	countBefore := m.Count()

	if err := m.Clear(context.Background()); !errors.Is(err, errBackend) {
		t.Fatalf("err = %v, want backend error", err)
	}
	if m.Count() != countBefore || !reflect.DeepEqual(m.Items(), itemsBefore) {
		t.Fatal("state must equal the pre-clear snapshot after rollback")
	}
	assertInvariant(t, m)
}

func TestClearSuccess(t *testing.T) {
	m, _ := seededManager(t)

	if err := m.Clear(context.Background()); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if m.Count() != 0 || len(m.Items()) != 0 {
		t.Fatal("cart must be empty after clear")
	}
}

func TestRefreshWithoutUserEmptiesLocalState(t *testing.T) {
	m, _ := seededManager(t)
	m.session = &fakeSession{} // signed out

	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if m.Count() != 0 || len(m.Items()) != 0 {
		t.Fatal("signed-out refresh must empty the local view")
	}
}

func TestWatchRefreshesOnChangeEvent(t *testing.T) {
	m, gw := seededManager(t)
	gw.listed = make(chan struct{}, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan ChangeEvent)
	done := make(chan struct{})
	go func() {
		m.Watch(ctx, events)
		close(done)
	}()

	// another device bumps a quantity server-side
	gw.rows[0].Quantity = 9
	events <- ChangeEvent{UserID: "u1"}

	select {
	case <-gw.listed:
	case <-time.After(time.Second):
		t.Fatal("no refresh after change event")
	}

	// event for a different user is ignored
	events <- ChangeEvent{UserID: "someone-else"}

	close(events)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return on channel close")
	}

	if m.Count() != 10 {
		t.Fatalf("count = %d, want 10 after reconciliation", m.Count())
	}
	assertInvariant(t, m)
}
