package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one (customer, cake) pairing. Price is the cake price at first add.
type CartLine struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	CakeID     uuid.UUID
	Quantity   int
	Price      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Display fields joined from the cake.
	CakeName     string
	CakeImage    string
	CurrentPrice decimal.Decimal
}

// Subtotal is quantity times the snapshotted price.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
