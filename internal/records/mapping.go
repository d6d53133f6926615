package records

import (
	"encoding/json"
	"fmt"
	"time"
)

// Mapping functions decode backend JSON into typed records. A missing
// required field fails the whole decode instead of substituting a zero
// value; optional fields stay pointers. Decoding is deterministic: the
// same payload always yields the same record.

type orderItemWire struct {
	ID       *int64 `json:"id"`
	OfferID  *int64 `json:"offer_id"`
	Quantity *int64 `json:"quantity"`
	OrderID  *int64 `json:"order_id"`
}

type orderWire struct {
	ID            *int64          `json:"id"`
	UserID        *string         `json:"user_id"`
	OrderStatus   *string         `json:"order_status"`
	PaymentStatus *string         `json:"payment_status"`
	PaymentID     *int64          `json:"payment_id"`
	Amount        *money          `json:"amount"`
	CreatedAt     *instant        `json:"created_at"`
	Items         []orderItemWire `json:"items"`
}

type paymentWire struct {
	ID            *int64   `json:"id"`
	OrderID       *int64   `json:"order_id"`
	UserID        *string  `json:"user_id"`
	Amount        *money   `json:"amount"`
	Currency      *string  `json:"currency"`
	PaymentMethod *string  `json:"payment_method"`
	PaymentStatus *string  `json:"payment_status"`
	Provider      *string  `json:"provider"`
	TransactionID *string  `json:"transaction_id"`
	CreatedAt     *instant `json:"created_at"`
	UpdatedAt     *instant `json:"updated_at"`
}

type partnerWire struct {
	ID        *string  `json:"id"`
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	Address   *string  `json:"address"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	IsActive  *bool    `json:"is_active"`
	CreatedAt *instant `json:"created_at"`
}

type offerWire struct {
	ID          *int64   `json:"id"`
	PartnerID   *string  `json:"partner_id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *money   `json:"price"`
	Currency    *string  `json:"currency"`
	Stock       *int64   `json:"stock"`
	IsActive    *bool    `json:"is_active"`
	CreatedAt   *instant `json:"created_at"`
	UpdatedAt   *instant `json:"updated_at"`
}

type userWire struct {
	ID        *string  `json:"id"`
	Email     *string  `json:"email"`
	FullName  *string  `json:"full_name"`
	Phone     *string  `json:"phone"`
	IsActive  *bool    `json:"is_active"`
	CreatedAt *instant `json:"created_at"`
}

type notificationWire struct {
	ID        *int64   `json:"id"`
	UserID    *string  `json:"user_id"`
	Channel   *string  `json:"channel"`
	Subject   *string  `json:"subject"`
	Body      *string  `json:"body"`
	Status    *string  `json:"status"`
	CreatedAt *instant `json:"created_at"`
}

type reviewWire struct {
	ID        *int64   `json:"id"`
	UserID    *string  `json:"user_id"`
	PartnerID *string  `json:"partner_id"`
	OfferID   *int64   `json:"offer_id"`
	Rating    *int64   `json:"rating"`
	Comment   *string  `json:"comment"`
	CreatedAt *instant `json:"created_at"`
}

type ratingSummaryWire struct {
	PartnerID     *string  `json:"partner_id"`
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   *int64   `json:"review_count"`
}

// MapOrder decodes a single order payload.
func MapOrder(data []byte) (Order, error) {
	var w orderWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Order{}, fmt.Errorf("order: %w", err)
	}
	rec, err := w.toRecord()
	if err != nil {
		return Order{}, fmt.Errorf("order: %w", err)
	}
	return rec, nil
}

// MapOrders decodes an order collection payload.
func MapOrders(data []byte) ([]Order, error) {
	var wires []orderWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("orders: %w", err)
	}
	out := make([]Order, 0, len(wires))
	for i, w := range wires {
		rec, err := w.toRecord()
		if err != nil {
			return nil, fmt.Errorf("orders[%d]: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (w orderWire) toRecord() (Order, error) {
	id, err := required("id", w.ID)
	if err != nil {
		return Order{}, err
	}
	userID, err := required("user_id", w.UserID)
	if err != nil {
		return Order{}, err
	}
	orderStatus, err := required("order_status", w.OrderStatus)
	if err != nil {
		return Order{}, err
	}
	paymentStatus, err := required("payment_status", w.PaymentStatus)
	if err != nil {
		return Order{}, err
	}
	amount, err := required("amount", w.Amount)
	if err != nil {
		return Order{}, err
	}
	createdAt, err := required("created_at", w.CreatedAt)
	if err != nil {
		return Order{}, err
	}

	items := make([]OrderItem, 0, len(w.Items))
	for i, iw := range w.Items {
		item, err := iw.toRecord()
		if err != nil {
			return Order{}, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, item)
	}

	return Order{
		ID:            id,
		UserID:        userID,
		OrderStatus:   orderStatus,
		PaymentStatus: paymentStatus,
		PaymentID:     w.PaymentID,
		Amount:        amount.Decimal,
		CreatedAt:     createdAt.Time,
		Items:         items,
	}, nil
}

func (w orderItemWire) toRecord() (OrderItem, error) {
	id, err := required("id", w.ID)
	if err != nil {
		return OrderItem{}, err
	}
	offerID, err := required("offer_id", w.OfferID)
	if err != nil {
		return OrderItem{}, err
	}
	quantity, err := required("quantity", w.Quantity)
	if err != nil {
		return OrderItem{}, err
	}
	orderID, err := required("order_id", w.OrderID)
	if err != nil {
		return OrderItem{}, err
	}
	return OrderItem{ID: id, OfferID: offerID, Quantity: quantity, OrderID: orderID}, nil
}

// MapPayment decodes a single payment payload.
func MapPayment(data []byte) (Payment, error) {
	var w paymentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Payment{}, fmt.Errorf("payment: %w", err)
	}
	rec, err := w.toRecord()
	if err != nil {
		return Payment{}, fmt.Errorf("payment: %w", err)
	}
	return rec, nil
}

// MapPayments decodes a payment collection payload.
func MapPayments(data []byte) ([]Payment, error) {
	var wires []paymentWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}
	out := make([]Payment, 0, len(wires))
	for i, w := range wires {
		rec, err := w.toRecord()
		if err != nil {
			return nil, fmt.Errorf("payments[%d]: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (w paymentWire) toRecord() (Payment, error) {
	id, err := required("id", w.ID)
	if err != nil {
		return Payment{}, err
	}
	orderID, err := required("order_id", w.OrderID)
	if err != nil {
		return Payment{}, err
	}
	userID, err := required("user_id", w.UserID)
	if err != nil {
		return Payment{}, err
	}
	amount, err := required("amount", w.Amount)
	if err != nil {
		return Payment{}, err
	}
	currency, err := required("currency", w.Currency)
	if err != nil {
		return Payment{}, err
	}
	method, err := required("payment_method", w.PaymentMethod)
	if err != nil {
		return Payment{}, err
	}
	status, err := required("payment_status", w.PaymentStatus)
	if err != nil {
		return Payment{}, err
	}
	provider, err := required("provider", w.Provider)
	if err != nil {
		return Payment{}, err
	}
	txID, err := required("transaction_id", w.TransactionID)
	if err != nil {
		return Payment{}, err
	}
	createdAt, err := required("created_at", w.CreatedAt)
	if err != nil {
		return Payment{}, err
	}
	updatedAt, err := required("updated_at", w.UpdatedAt)
	if err != nil {
		return Payment{}, err
	}

	return Payment{
		ID:            id,
		OrderID:       orderID,
		UserID:        userID,
		Amount:        amount.Decimal,
		Currency:      currency,
		PaymentMethod: method,
		PaymentStatus: status,
		Provider:      provider,
		TransactionID: txID,
		CreatedAt:     createdAt.Time,
		UpdatedAt:     updatedAt.Time,
	}, nil
}

// MapPartner decodes a single partner payload.
func MapPartner(data []byte) (Partner, error) {
	var w partnerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Partner{}, fmt.Errorf("partner: %w", err)
	}
	rec, err := w.toRecord()
	if err != nil {
		return Partner{}, fmt.Errorf("partner: %w", err)
	}
	return rec, nil
}

// MapPartners decodes a partner collection payload.
func MapPartners(data []byte) ([]Partner, error) {
	var wires []partnerWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("partners: %w", err)
	}
	out := make([]Partner, 0, len(wires))
	for i, w := range wires {
		rec, err := w.toRecord()
		if err != nil {
			return nil, fmt.Errorf("partners[%d]: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (w partnerWire) toRecord() (Partner, error) {
	id, err := required("id", w.ID)
	if err != nil {
		return Partner{}, err
	}
	name, err := required("name", w.Name)
	if err != nil {
		return Partner{}, err
	}
	category, err := required("category", w.Category)
	if err != nil {
		return Partner{}, err
	}
	address, err := required("address", w.Address)
	if err != nil {
		return Partner{}, err
	}
	lat, err := required("lat", w.Lat)
	if err != nil {
		return Partner{}, err
	}
	lng, err := required("lng", w.Lng)
	if err != nil {
		return Partner{}, err
	}
	isActive, err := required("is_active", w.IsActive)
	if err != nil {
		return Partner{}, err
	}
	createdAt, err := required("created_at", w.CreatedAt)
	if err != nil {
		return Partner{}, err
	}

	return Partner{
		ID:        id,
		Name:      name,
		Category:  category,
		Address:   address,
		Lat:       lat,
		Lng:       lng,
		IsActive:  isActive,
		CreatedAt: createdAt.Time,
	}, nil
}

// MapOffer decodes a single offer payload.
func MapOffer(data []byte) (Offer, error) {
	var w offerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Offer{}, fmt.Errorf("offer: %w", err)
	}
	rec, err := w.toRecord()
	if err != nil {
		return Offer{}, fmt.Errorf("offer: %w", err)
	}
	return rec, nil
}

// MapOffers decodes an offer collection payload.
func MapOffers(data []byte) ([]Offer, error) {
	var wires []offerWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("offers: %w", err)
	}
	out := make([]Offer, 0, len(wires))
	for i, w := range wires {
		rec, err := w.toRecord()
		if err != nil {
			return nil, fmt.Errorf("offers[%d]: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (w offerWire) toRecord() (Offer, error) {
	id, err := required("id", w.ID)
	if err != nil {
		return Offer{}, err
	}
	partnerID, err := required("partner_id", w.PartnerID)
	if err != nil {
		return Offer{}, err
	}
	title, err := required("title", w.Title)
	if err != nil {
		return Offer{}, err
	}
	price, err := required("price", w.Price)
	if err != nil {
		return Offer{}, err
	}
	currency, err := required("currency", w.Currency)
	if err != nil {
		return Offer{}, err
	}
	stock, err := required("stock", w.Stock)
	if err != nil {
		return Offer{}, err
	}
	isActive, err := required("is_active", w.IsActive)
	if err != nil {
		return Offer{}, err
	}
	createdAt, err := required("created_at", w.CreatedAt)
	if err != nil {
		return Offer{}, err
	}

	var updatedAt *time.Time
	if w.UpdatedAt != nil {
		t := w.UpdatedAt.Time
		updatedAt = &t
	}

	return Offer{
		ID:          id,
		PartnerID:   partnerID,
		Title:       title,
		Description: w.Description,
		Price:       price.Decimal,
		Currency:    currency,
		Stock:       stock,
		IsActive:    isActive,
		CreatedAt:   createdAt.Time,
		UpdatedAt:   updatedAt,
	}, nil
}

// MapUser decodes a single user payload.
func MapUser(data []byte) (User, error) {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return User{}, fmt.Errorf("user: %w", err)
	}
	rec, err := w.toRecord()
	if err != nil {
		return User{}, fmt.Errorf("user: %w", err)
	}
	return rec, nil
}

// MapUsers decodes a user collection payload.
func MapUsers(data []byte) ([]User, error) {
	var wires []userWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	out := make([]User, 0, len(wires))
	for i, w := range wires {
		rec, err := w.toRecord()
		if err != nil {
			return nil, fmt.Errorf("users[%d]: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (w userWire) toRecord() (User, error) {
	id, err := required("id", w.ID)
	if err != nil {
		return User{}, err
	}
	email, err := required("email", w.Email)
	if err != nil {
		return User{}, err
	}
	fullName, err := required("full_name", w.FullName)
	if err != nil {
		return User{}, err
	}
	isActive, err := required("is_active", w.IsActive)
	if err != nil {
		return User{}, err
	}
	createdAt, err := required("created_at", w.CreatedAt)
	if err != nil {
		return User{}, err
	}

	return User{
		ID:        id,
		Email:     email,
		FullName:  fullName,
		Phone:     w.Phone,
		IsActive:  isActive,
		CreatedAt: createdAt.Time,
	}, nil
}

// MapNotifications decodes a notification collection payload.
func MapNotifications(data []byte) ([]Notification, error) {
	var wires []notificationWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("notifications: %w", err)
	}
	out := make([]Notification, 0, len(wires))
	for i, w := range wires {
		rec, err := w.toRecord()
		if err != nil {
			return nil, fmt.Errorf("notifications[%d]: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (w notificationWire) toRecord() (Notification, error) {
	id, err := required("id", w.ID)
	if err != nil {
		return Notification{}, err
	}
	userID, err := required("user_id", w.UserID)
	if err != nil {
		return Notification{}, err
	}
	channel, err := required("channel", w.Channel)
	if err != nil {
		return Notification{}, err
	}
	subject, err := required("subject", w.Subject)
	if err != nil {
		return Notification{}, err
	}
	body, err := required("body", w.Body)
	if err != nil {
		return Notification{}, err
	}
	status, err := required("status", w.Status)
	if err != nil {
		return Notification{}, err
	}
	createdAt, err := required("created_at", w.CreatedAt)
	if err != nil {
		return Notification{}, err
	}

	return Notification{
		ID:        id,
		UserID:    userID,
		Channel:   channel,
		Subject:   subject,
		Body:      body,
		Status:    status,
		CreatedAt: createdAt.Time,
	}, nil
}

// MapReview decodes a single review payload.
func MapReview(data []byte) (Review, error) {
	var w reviewWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Review{}, fmt.Errorf("review: %w", err)
	}
	rec, err := w.toRecord()
	if err != nil {
		return Review{}, fmt.Errorf("review: %w", err)
	}
	return rec, nil
}

// MapReviews decodes a review collection payload.
func MapReviews(data []byte) ([]Review, error) {
	var wires []reviewWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("reviews: %w", err)
	}
	out := make([]Review, 0, len(wires))
	for i, w := range wires {
		rec, err := w.toRecord()
		if err != nil {
			return nil, fmt.Errorf("reviews[%d]: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (w reviewWire) toRecord() (Review, error) {
	id, err := required("id", w.ID)
	if err != nil {
		return Review{}, err
	}
	userID, err := required("user_id", w.UserID)
	if err != nil {
		return Review{}, err
	}
	partnerID, err := required("partner_id", w.PartnerID)
	if err != nil {
		return Review{}, err
	}
	rating, err := required("rating", w.Rating)
	if err != nil {
		return Review{}, err
	}
	createdAt, err := required("created_at", w.CreatedAt)
	if err != nil {
		return Review{}, err
	}

	return Review{
		ID:        id,
		UserID:    userID,
		PartnerID: partnerID,
		OfferID:   w.OfferID,
		Rating:    rating,
		Comment:   w.Comment,
		CreatedAt: createdAt.Time,
	}, nil
}

// MapRatingSummary decodes a rating summary payload.
func MapRatingSummary(data []byte) (RatingSummary, error) {
	var w ratingSummaryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return RatingSummary{}, fmt.Errorf("rating summary: %w", err)
	}

	partnerID, err := required("partner_id", w.PartnerID)
	if err != nil {
		return RatingSummary{}, fmt.Errorf("rating summary: %w", err)
	}
	avg, err := required("average_rating", w.AverageRating)
	if err != nil {
		return RatingSummary{}, fmt.Errorf("rating summary: %w", err)
	}
	count, err := required("review_count", w.ReviewCount)
	if err != nil {
		return RatingSummary{}, fmt.Errorf("rating summary: %w", err)
	}

	return RatingSummary{
		PartnerID:     partnerID,
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}
