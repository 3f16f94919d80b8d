package order

import (
	"context"
	"fmt"
	"time"

	menuRepo "resortly/database/repository/menu"
	orderRepo "resortly/database/repository/order"
	"resortly/models"
)

// LineInput is one requested menu item within a new order.
type LineInput struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// OrderService manages dining orders and their status lifecycle.
type OrderService interface {
	Place(ctx context.Context, guestID, tableNo string, lines []LineInput) (*models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	ListByGuest(ctx context.Context, guestID string) ([]models.Order, error)
	ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	Advance(ctx context.Context, id string, to models.OrderStatus) error
}

// DefaultOrderService implements OrderService.
type DefaultOrderService struct {
	Orders orderRepo.OrderRepository
	Menu   menuRepo.MenuRepository
	Now    func() time.Time
}

func (s *DefaultOrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Place builds an order from the current menu, snapshotting unit prices so
// later menu edits do not change what the guest owes.
func (s *DefaultOrderService) Place(ctx context.Context, guestID, tableNo string, lines []LineInput) (*models.Order, error) {
	if guestID == "" {
		return nil, fmt.Errorf("guest id is required")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("order must contain at least one line")
	}

	var (
		orderLines []models.OrderLine
		total      models.Cents
	)
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for item %s must be positive", line.MenuItemID)
		}
		item, err := s.Menu.GetByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("menu item %s: %w", line.MenuItemID, err)
		}
		if !item.Available {
			return nil, fmt.Errorf("menu item %q is not available", item.Name)
		}
		orderLines = append(orderLines, models.OrderLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			UnitPrice:  item.Price,
		})
		total += item.Price * models.Cents(line.Quantity)
	}

	now := s.now()
	order := &models.Order{
		GuestID:   guestID,
		TableNo:   tableNo,
		Lines:     orderLines,
		Total:     total,
		Status:    models.OrderPlaced,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *DefaultOrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.Orders.GetByID(ctx, id)
}

func (s *DefaultOrderService) ListByGuest(ctx context.Context, guestID string) ([]models.Order, error) {
	return s.Orders.ListByGuest(ctx, guestID)
}

func (s *DefaultOrderService) ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return s.Orders.ListByStatus(ctx, status)
}

// Advance moves an order through its status lifecycle, rejecting any
// transition outside the closed table.
func (s *DefaultOrderService) Advance(ctx context.Context, id string, to models.OrderStatus) error {
	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !models.CanTransitionOrder(order.Status, to) {
		return fmt.Errorf("cannot transition order from %s to %s", order.Status, to)
	}
	return s.Orders.UpdateStatus(ctx, id, order.Status, to)
}
