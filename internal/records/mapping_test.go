package records

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOrder_NormalizesTimestampAndAmount(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"id": 42,
		"user_id": "u1",
		"order_status": "created",
		"payment_status": "pending",
		"payment_id": null,
		"amount": 99.90,
		"created_at": "2024-01-01T00:00:00Z",
		"items": [{"id": 1, "offer_id": 7, "quantity": 2, "order_id": 42}]
	}`)

	order, err := MapOrder(payload)
	require.NoError(t, err)

	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Nil(t, order.PaymentID)

	// The trailing-Z spelling must land on UTC midnight exactly.
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, order.CreatedAt.Equal(want), "got %s", order.CreatedAt)

	// 99.90 must survive as an exact decimal, not a float round-trip.
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("99.90")),
		"got %s", order.Amount)
	assert.Equal(t, "99.9", order.Amount.String())

	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(7), order.Items[0].OfferID)
}

func TestMapOrder_ExplicitOffsetEqualsZ(t *testing.T) {
	t.Parallel()

	zForm, err := MapOrder([]byte(`{"id":1,"user_id":"u","order_status":"s",
		"payment_status":"p","amount":"1.00","created_at":"2024-06-15T10:30:00Z","items":[]}`))
	require.NoError(t, err)

	offsetForm, err := MapOrder([]byte(`{"id":1,"user_id":"u","order_status":"s",
		"payment_status":"p","amount":"1.00","created_at":"2024-06-15T10:30:00+00:00","items":[]}`))
	require.NoError(t, err)

	assert.True(t, zForm.CreatedAt.Equal(offsetForm.CreatedAt))
}

func TestMapOrder_UnixSecondsTimestamp(t *testing.T) {
	t.Parallel()

	order, err := MapOrder([]byte(`{"id":1,"user_id":"u","order_status":"s",
		"payment_status":"p","amount":"5","created_at":1704067200,"items":[]}`))
	require.NoError(t, err)

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, order.CreatedAt.Equal(want), "got %s", order.CreatedAt)
}

func TestMapOrder_LargeUnixSecondsStaysExact(t *testing.T) {
	t.Parallel()

	// An epoch beyond float64's integer range must not be rounded.
	order, err := MapOrder([]byte(`{"id":1,"user_id":"u","order_status":"s",
		"payment_status":"p","amount":"5","created_at":9007199254740993,"items":[]}`))
	require.NoError(t, err)

	assert.Equal(t, int64(9007199254740993), order.CreatedAt.Unix())
}

func TestMapOrder_FractionalUnixSecondsTimestamp(t *testing.T) {
	t.Parallel()

	order, err := MapOrder([]byte(`{"id":1,"user_id":"u","order_status":"s",
		"payment_status":"p","amount":"5","created_at":1704067200.5,"items":[]}`))
	require.NoError(t, err)

	want := time.Date(2024, 1, 1, 0, 0, 0, 500000000, time.UTC)
	assert.True(t, order.CreatedAt.Equal(want), "got %s", order.CreatedAt)
}

func TestMapOrder_MissingRequiredField(t *testing.T) {
	t.Parallel()

	_, err := MapOrder([]byte(`{"id":1,"user_id":"u1"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order_status")
}

func TestMapOrder_AbsentItemsBecomeEmptySlice(t *testing.T) {
	t.Parallel()

	order, err := MapOrder([]byte(`{"id":1,"user_id":"u","order_status":"s",
		"payment_status":"p","amount":"1","created_at":"2024-01-01T00:00:00Z"}`))
	require.NoError(t, err)

	require.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
}

func TestMapOrders_FailsOnAnyBadElement(t *testing.T) {
	t.Parallel()

	_, err := MapOrders([]byte(`[
		{"id":1,"user_id":"u","order_status":"s","payment_status":"p","amount":"1","created_at":"2024-01-01T00:00:00Z"},
		{"id":2}
	]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders[1]")
}

func TestMapPayment(t *testing.T) {
	t.Parallel()

	payment, err := MapPayment([]byte(`{
		"id": 7, "order_id": 42, "user_id": "u1",
		"amount": "19.99", "currency": "EUR",
		"payment_method": "card", "payment_status": "confirmed",
		"provider": "stripe", "transaction_id": "tx-1",
		"created_at": "2024-03-01T12:00:00Z",
		"updated_at": "2024-03-01T12:05:00Z"
	}`))
	require.NoError(t, err)

	assert.Equal(t, int64(42), payment.OrderID)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 5*time.Minute, payment.UpdatedAt.Sub(payment.CreatedAt))
}

func TestMapPartner(t *testing.T) {
	t.Parallel()

	partner, err := MapPartner([]byte(`{
		"id": "p1", "name": "Cafe", "category": "food",
		"address": "Main St 1", "lat": 52.52, "lng": 13.405,
		"is_active": true, "created_at": "2024-01-01T00:00:00Z"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "p1", partner.ID)
	assert.InDelta(t, 52.52, partner.Lat, 1e-9)
	assert.True(t, partner.IsActive)
}

func TestMapOffer_OptionalFields(t *testing.T) {
	t.Parallel()

	offer, err := MapOffer([]byte(`{
		"id": 3, "partner_id": "p1", "title": "Lunch",
		"price": 12.5, "currency": "EUR", "stock": 10,
		"is_active": true, "created_at": "2024-01-01T00:00:00Z"
	}`))
	require.NoError(t, err)

	assert.Nil(t, offer.Description)
	assert.Nil(t, offer.UpdatedAt)
	assert.Equal(t, "12.5", offer.Price.String())

	withOptional, err := MapOffer([]byte(`{
		"id": 3, "partner_id": "p1", "title": "Lunch",
		"description": "daily special",
		"price": "12.50", "currency": "EUR", "stock": 10,
		"is_active": true,
		"created_at": "2024-01-01T00:00:00Z",
		"updated_at": "2024-02-01T00:00:00Z"
	}`))
	require.NoError(t, err)

	require.NotNil(t, withOptional.Description)
	assert.Equal(t, "daily special", *withOptional.Description)
	require.NotNil(t, withOptional.UpdatedAt)
}

func TestMapUser(t *testing.T) {
	t.Parallel()

	user, err := MapUser([]byte(`{
		"id": "u1", "email": "a@b.c", "full_name": "Ada",
		"is_active": true, "created_at": "2024-01-01T00:00:00Z"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Ada", user.FullName)
	assert.Nil(t, user.Phone)
}

func TestMapNotifications(t *testing.T) {
	t.Parallel()

	list, err := MapNotifications([]byte(`[{
		"id": 1, "user_id": "u1", "channel": "email",
		"subject": "hi", "body": "welcome", "status": "sent",
		"created_at": "2024-01-01T00:00:00Z"
	}]`))
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, "email", list[0].Channel)
}

func TestMapReviews(t *testing.T) {
	t.Parallel()

	list, err := MapReviews([]byte(`[{
		"id": 1, "user_id": "u1", "partner_id": "p1",
		"rating": 5, "created_at": "2024-01-01T00:00:00Z"
	}]`))
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, int64(5), list[0].Rating)
	assert.Nil(t, list[0].OfferID)
	assert.Nil(t, list[0].Comment)
}

func TestMapRatingSummary(t *testing.T) {
	t.Parallel()

	summary, err := MapRatingSummary([]byte(`{
		"partner_id": "p1", "average_rating": 4.5, "review_count": 12
	}`))
	require.NoError(t, err)

	assert.Equal(t, "p1", summary.PartnerID)
	assert.InDelta(t, 4.5, summary.AverageRating, 1e-9)
	assert.Equal(t, int64(12), summary.ReviewCount)

	_, err = MapRatingSummary([]byte(`{"partner_id":"p1"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "average_rating")
}

func TestMapping_Deterministic(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"id":1,"user_id":"u","order_status":"s",
		"payment_status":"p","amount":"10.10","created_at":"2024-01-01T00:00:00Z","items":[]}`)

	first, err := MapOrder(payload)
	require.NoError(t, err)
	second, err := MapOrder(payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
