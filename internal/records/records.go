// Package records defines the typed domain records the gateway exposes
// and the decode step that turns backend JSON into them. Records are
// request-scoped projections: nothing here is cached or shared.
package records

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line item of an order.
type OrderItem struct {
	ID       int64 `json:"id"`
	OfferID  int64 `json:"offer_id"`
	Quantity int64 `json:"quantity"`
	OrderID  int64 `json:"order_id"`
}

// Order is an order record from the order service.
type Order struct {
	ID            int64           `json:"id"`
	UserID        string          `json:"user_id"`
	OrderStatus   string          `json:"order_status"`
	PaymentStatus string          `json:"payment_status"`
	PaymentID     *int64          `json:"payment_id"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderItem     `json:"items"`
}

// Payment is a payment record from the payment service.
type Payment struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	UserID        string          `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	Provider      string          `json:"provider"`
	TransactionID string          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Partner is a partner record from the partner service.
type Partner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Address   string    `json:"address"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Offer is an offer record from the offer service.
type Offer struct {
	ID          int64           `json:"id"`
	PartnerID   string          `json:"partner_id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int64           `json:"stock"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
}

// User is a user record from the user service.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification is a notification record from the notification service.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Channel   string    `json:"channel"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a review record from the review service.
type Review struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	PartnerID string    `json:"partner_id"`
	OfferID   *int64    `json:"offer_id"`
	Rating    int64     `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary is the aggregate rating of a partner, computed by the
// review service.
type RatingSummary struct {
	PartnerID     string  `json:"partner_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}
