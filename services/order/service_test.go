package order

import (
	"context"
	"testing"

	"github.com/google/uuid"

	menuRepo "resortly/database/repository/menu"
	orderRepo "resortly/database/repository/order"
	"resortly/models"
)

type fakeMenuRepo struct {
	items map[string]*models.MenuItem
}

func (f *fakeMenuRepo) Create(_ context.Context, item *models.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepo) GetByID(_ context.Context, id string) (*models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, menuRepo.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeMenuRepo) List(_ context.Context, category string, availableOnly bool) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, item := range f.items {
		if category != "" && item.Category != category {
			continue
		}
		if availableOnly && !item.Available {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeMenuRepo) Update(_ context.Context, item *models.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func (f *fakeOrderRepo) Insert(_ context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, orderRepo.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderRepo) ListByGuest(_ context.Context, guestID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.GuestID == guestID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByStatus(_ context.Context, status models.OrderStatus) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, from, to models.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return orderRepo.ErrNotFound
	}
	if o.Status != from {
		return orderRepo.ErrStatusConflict
	}
	o.Status = to
	return nil
}

func newTestService() (*DefaultOrderService, *fakeMenuRepo, *fakeOrderRepo) {
	menu := &fakeMenuRepo{items: map[string]*models.MenuItem{
		"burger": {ID: "burger", Name: "Chalet Burger", Category: "mains", Price: 1850, Available: true},
		"soup":   {ID: "soup", Name: "Soup of the Day", Category: "starters", Price: 750, Available: true},
		"oyster": {ID: "oyster", Name: "Oysters", Category: "starters", Price: 2400, Available: false},
	}}
	orders := &fakeOrderRepo{orders: make(map[string]*models.Order)}
	return &DefaultOrderService{Orders: orders, Menu: menu}, menu, orders
}

func TestPlaceSnapshotsPrices(t *testing.T) {
	svc, menu, _ := newTestService()
	ctx := context.Background()

	placed, err := svc.Place(ctx, "guest-1", "12", []LineInput{
		{MenuItemID: "burger", Quantity: 2},
		{MenuItemID: "soup", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if placed.Status != models.OrderPlaced {
		t.Errorf("status: got %s", placed.Status)
	}
	if placed.Total != 2*1850+750 {
		t.Errorf("total: got %s, want 44.50", placed.Total)
	}

	// A later menu price change does not affect the stored order.
	menu.items["burger"].Price = 9999
	stored, err := svc.Get(ctx, placed.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Lines[0].UnitPrice != 1850 {
		t.Errorf("line price not snapshotted: got %s", stored.Lines[0].UnitPrice)
	}
}

func TestPlaceValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Place(ctx, "", "", []LineInput{{MenuItemID: "soup", Quantity: 1}}); err == nil {
		t.Error("missing guest id must fail")
	}
	if _, err := svc.Place(ctx, "guest-1", "", nil); err == nil {
		t.Error("empty order must fail")
	}
	if _, err := svc.Place(ctx, "guest-1", "", []LineInput{{MenuItemID: "soup", Quantity: 0}}); err == nil {
		t.Error("non-positive quantity must fail")
	}
	if _, err := svc.Place(ctx, "guest-1", "", []LineInput{{MenuItemID: "missing", Quantity: 1}}); err == nil {
		t.Error("unknown menu item must fail")
	}
	if _, err := svc.Place(ctx, "guest-1", "", []LineInput{{MenuItemID: "oyster", Quantity: 1}}); err == nil {
		t.Error("unavailable menu item must fail")
	}
}

func TestAdvanceFollowsLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	placed, err := svc.Place(ctx, "guest-1", "", []LineInput{{MenuItemID: "soup", Quantity: 1}})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	for _, next := range []models.OrderStatus{models.OrderPreparing, models.OrderReady, models.OrderDelivered} {
		if err := svc.Advance(ctx, placed.ID, next); err != nil {
			t.Fatalf("advance to %s: %v", next, err)
		}
	}
	// Delivered is terminal.
	if err := svc.Advance(ctx, placed.ID, models.OrderCancelled); err == nil {
		t.Error("advancing a delivered order must fail")
	}
}
