package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cakehaven/internal/domain/entity"
	"cakehaven/internal/usecase"
)

// Money is rendered with two decimals as a string so clients never round through floats.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type credentialResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func newCredentialResponse(c *entity.Credential) credentialResponse {
	return credentialResponse{ID: c.ID, Email: c.Email, Role: c.Role, CreatedAt: c.CreatedAt}
}

type authResponse struct {
	Token     string             `json:"token"`
	TokenType string             `json:"token_type"`
	ExpiresAt time.Time          `json:"expires_at"`
	User      credentialResponse `json:"user"`
}

func newAuthResponse(out *usecase.AuthOutput) authResponse {
	return authResponse{
		Token:     out.Token.Token,
		TokenType: "Bearer",
		ExpiresAt: out.Token.ExpiresAt,
		User:      newCredentialResponse(out.Credential),
	}
}

type customerResponse struct {
	ID        uuid.UUID     `json:"id"`
	AuthID    uuid.UUID     `json:"auth_id"`
	FullName  string        `json:"full_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Address   string        `json:"address"`
	Status    entity.Status `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newCustomerResponse(c *entity.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		AuthID:    c.AuthID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type shopDetailsResponse struct {
	ShopName  string `json:"shop_name"`
	OwnerName string `json:"owner_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
}

func newShopDetailsResponse(d entity.ShopDetails) shopDetailsResponse {
	return shopDetailsResponse(d)
}

type shopResponse struct {
	ID uuid.UUID `json:"id"`
	shopDetailsResponse
	Status    entity.Status `json:"status"`
	EnquiryID uuid.UUID     `json:"enquiry_id"`
	AdminID   *uuid.UUID    `json:"admin_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newShopResponse(s *entity.Shop) shopResponse {
	return shopResponse{
		ID:                  s.ID,
		shopDetailsResponse: newShopDetailsResponse(s.ShopDetails),
		Status:              s.Status,
		EnquiryID:           s.EnquiryID,
		AdminID:             s.AdminID,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

type enquiryResponse struct {
	ID uuid.UUID `json:"id"`
	shopDetailsResponse
	Status    entity.EnquiryStatus `json:"status"`
	Reason    *string              `json:"reason,omitempty"`
	DecidedBy *uuid.UUID           `json:"decided_by,omitempty"`
	DecidedAt *time.Time           `json:"decided_at,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func newEnquiryResponse(e *entity.Enquiry) enquiryResponse {
	return enquiryResponse{
		ID:                  e.ID,
		shopDetailsResponse: newShopDetailsResponse(e.ShopDetails),
		Status:              e.Status,
		Reason:              e.Reason,
		DecidedBy:           e.DecidedBy,
		DecidedAt:           e.DecidedAt,
		CreatedAt:           e.CreatedAt,
	}
}

type cakeResponse struct {
	ID        uuid.UUID     `json:"id"`
	ShopID    uuid.UUID     `json:"shop_id"`
	Name      string        `json:"name"`
	Price     string        `json:"price"`
	Type      string        `json:"type"`
	Flavour   string        `json:"flavour"`
	Category  string        `json:"category"`
	Size      string        `json:"size"`
	Servings  int           `json:"servings"`
	Images    []string      `json:"images"`
	Status    entity.Status `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newCakeResponse(c *entity.Cake) cakeResponse {
	images := c.Images
	if images == nil {
		images = []string{}
	}

	return cakeResponse{
		ID:        c.ID,
		ShopID:    c.ShopID,
		Name:      c.Name,
		Price:     money(c.Price),
		Type:      c.Type,
		Flavour:   c.Flavour,
		Category:  c.Category,
		Size:      c.Size,
		Servings:  c.Servings,
		Images:    images,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type cartLineResponse struct {
	ID           uuid.UUID `json:"id"`
	CakeID       uuid.UUID `json:"cake_id"`
	CakeName     string    `json:"cake_name,omitempty"`
	CakeImage    string    `json:"cake_image,omitempty"`
	Quantity     int       `json:"quantity"`
	Price        string    `json:"price"`
	CurrentPrice string    `json:"current_price,omitempty"`
	Subtotal     string    `json:"subtotal"`
}

func newCartLineResponse(l *entity.CartLine) cartLineResponse {
	resp := cartLineResponse{
		ID:        l.ID,
		CakeID:    l.CakeID,
		CakeName:  l.CakeName,
		CakeImage: l.CakeImage,
		Quantity:  l.Quantity,
		Price:     money(l.Price),
		Subtotal:  money(l.Subtotal()),
	}
	if !l.CurrentPrice.IsZero() {
		resp.CurrentPrice = money(l.CurrentPrice)
	}

	return resp
}

type cartResponse struct {
	Items []cartLineResponse `json:"items"`
	Total string             `json:"total"`
}

func newCartResponse(out *usecase.CartOutput) cartResponse {
	return cartResponse{
		Items: mapSlice(out.Items, newCartLineResponse),
		Total: money(out.Total),
	}
}

type orderLineResponse struct {
	ID       uuid.UUID `json:"id"`
	CakeID   uuid.UUID `json:"cake_id"`
	CakeName string    `json:"cake_name"`
	ShopID   uuid.UUID `json:"shop_id"`
	Quantity int       `json:"quantity"`
	Price    string    `json:"price"`
	Subtotal string    `json:"subtotal"`
}

type orderResponse struct {
	ID            uuid.UUID           `json:"id"`
	OrderNo       string              `json:"order_no"`
	CustomerID    uuid.UUID           `json:"customer_id"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	Status        entity.OrderStatus  `json:"status"`
	Total         string              `json:"total"`
	Items         []orderLineResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func newOrderResponse(o *entity.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		CustomerID:    o.CustomerID,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status,
		Total:         money(o.Total),
		Items: mapSlice(o.Items, func(l *entity.OrderLine) orderLineResponse {
			return orderLineResponse{
				ID:       l.ID,
				CakeID:   l.CakeID,
				CakeName: l.CakeName,
				ShopID:   l.ShopID,
				Quantity: l.Quantity,
				Price:    money(l.Price),
				Subtotal: money(l.Subtotal()),
			}
		}),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

type pageResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func newPageResponse[E, T any](page *entity.Page[E], convert func(E) T) pageResponse[T] {
	return pageResponse[T]{
		Items:      mapSlice(page.Items, convert),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(),
	}
}

func mapSlice[E, T any](items []E, convert func(E) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}

	return out
}
