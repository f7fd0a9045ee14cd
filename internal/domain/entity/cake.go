package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cake is a catalog item exclusively owned by one shop admin.
// ShopID holds the owning shop_admin's credential id and never changes.
type Cake struct {
	ID        uuid.UUID
	ShopID    uuid.UUID
	Name      string
	Price     decimal.Decimal
	Type      string
	Flavour   string
	Category  string
	Size      string
	Servings  int
	Images    []string
	Status    Status
	// ShopSuspended is set when the owning shop has been deactivated.
	ShopSuspended bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive reports whether the cake can be edited.
func (c *Cake) IsActive() bool {
	return c.Status == StatusActive
}

// IsAvailable reports whether customers can see and buy the cake.
func (c *Cake) IsAvailable() bool {
	return c.IsActive() && !c.ShopSuspended
}

// CoverImage returns the first image or an empty string.
func (c *Cake) CoverImage() string {
	if len(c.Images) == 0 {
		return ""
	}

	return c.Images[0]
}
