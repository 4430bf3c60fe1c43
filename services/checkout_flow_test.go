package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

// Full storefront flow: cart, order, coupon, payment confirmation,
// enrollment.
func TestCheckoutFlow(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	teacherID := uuid.New()
	store.countries = append(store.countries, &models.Country{
		ID: uuid.New(), Name: "Argentina", TaxRate: decimal.RequireFromString("21"),
	})
	course := seedCourse(store, teacherID)
	student := &models.User{ID: uuid.New(), FullName: "Ada Lovelace", Email: "ada@example.com"}
	store.users = append(store.users, student)
	store.coupons = append(store.coupons, &models.Coupon{
		ID: uuid.New(), TeacherID: teacherID, Code: "SAVE10",
		Discount: decimal.RequireFromString("10"), Active: true,
	})

	carts := NewCartService(store)
	checkout := NewCheckoutService(store)
	coupons := NewCouponService(store)
	payments := paymentServiceWith(store, stubVerifier{paid: true})

	_, _, err := carts.Upsert(ctx, UpsertCartInput{
		CartID:   "session-1",
		CourseID: course.ID,
		UserID:   &student.ID,
		Price:    decimal.RequireFromString("100"),
		Country:  "Argentina",
	})
	require.NoError(t, err)

	stats, err := carts.Stats(ctx, "session-1")
	require.NoError(t, err)
	require.True(t, stats.Total.Equal(decimal.RequireFromString("121")), "cart total = %s", stats.Total)

	oid, err := checkout.CreateOrder(ctx, CreateOrderInput{
		FullName: student.FullName,
		Email:    student.Email,
		Country:  "Argentina",
		CartID:   "session-1",
		UserID:   &student.ID,
	})
	require.NoError(t, err)

	// The item must carry the course's teacher; coupon eligibility and
	// sale notifications both key on it.
	created, err := checkout.GetOrder(ctx, oid)
	require.NoError(t, err)
	items, err := store.Orders().ListItems(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, teacherID, items[0].TeacherID)

	item, err := coupons.Apply(ctx, oid, "SAVE10")
	require.NoError(t, err)
	require.True(t, item.Total.Equal(decimal.RequireFromString("108.9")), "item total = %s", item.Total)

	order, err := checkout.GetOrder(ctx, oid)
	require.NoError(t, err)
	require.True(t, order.Total.Equal(decimal.RequireFromString("108.9")), "order total = %s", order.Total)

	require.NoError(t, payments.Confirm(ctx, oid, "paypal", "PP-123"))
	require.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	require.Len(t, store.enrollments, 1)
	require.Equal(t, student.ID, store.enrollments[0].UserID)
	require.Equal(t, course.ID, store.enrollments[0].CourseID)
}
