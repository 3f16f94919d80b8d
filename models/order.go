package models

import "time"

// OrderStatus is the lifecycle state of a dining order.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderNext = map[OrderStatus]map[OrderStatus]bool{
	OrderPlaced:    {OrderPreparing: true, OrderCancelled: true},
	OrderPreparing: {OrderReady: true, OrderCancelled: true},
	OrderReady:     {OrderDelivered: true},
	OrderDelivered: {},
	OrderCancelled: {},
}

// CanTransitionOrder reports whether an order status change is legal.
func CanTransitionOrder(from, to OrderStatus) bool {
	return orderNext[from][to]
}

// OrderLine is one menu item within an order, with the price snapshotted at
// order time so later menu edits do not change what the guest owes.
type OrderLine struct {
	MenuItemID string `bson:"menu_item_id" json:"menu_item_id"`
	Name       string `bson:"name" json:"name"`
	Quantity   int    `bson:"quantity" json:"quantity"`
	UnitPrice  Cents  `bson:"unit_price" json:"unit_price"`
}

// Order is a dining order placed against the menu catalog.
type Order struct {
	ID        string      `bson:"id" json:"id"`
	GuestID   string      `bson:"guest_id" json:"guest_id"`
	TableNo   string      `bson:"table_no,omitempty" json:"table_no,omitempty"`
	Lines     []OrderLine `bson:"lines" json:"lines"`
	Total     Cents       `bson:"total" json:"total"`
	Status    OrderStatus `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time   `bson:"updated_at" json:"updated_at"`
}
