package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the order may move from s to next.
// Only pending orders move, and only to a terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderPending && (next == OrderCompleted || next == OrderCancelled)
}

// Order is the immutable record of a checkout.
type Order struct {
	ID            uuid.UUID
	OrderNo       string
	CustomerID    uuid.UUID
	CustomerEmail string
	Status        OrderStatus
	Total         decimal.Decimal
	Items         []*OrderLine
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderLine snapshots the price paid for a cake.
type OrderLine struct {
	ID       uuid.UUID
	OrderID  uuid.UUID
	CakeID   uuid.UUID
	CakeName string
	ShopID   uuid.UUID
	Quantity int
	Price    decimal.Decimal
}

// Subtotal is quantity times the snapshotted price.
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SumLines totals the order lines.
func SumLines(lines []*OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}

	return total
}
