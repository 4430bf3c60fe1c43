package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

func seedOrderWithItem(store *fakeStore, teacherID uuid.UUID, total string) (*models.CartOrder, *models.CartOrderItem) {
	tot := decimal.RequireFromString(total)
	order := &models.CartOrder{
		ID:            uuid.New(),
		OID:           "ORD001",
		SubTotal:      tot,
		Total:         tot,
		InitialTotal:  tot,
		PaymentStatus: models.PaymentStatusProcessing,
	}
	item := &models.CartOrderItem{
		ID:           uuid.New(),
		OID:          "ITM001",
		OrderID:      order.ID,
		CourseID:     uuid.New(),
		TeacherID:    teacherID,
		Price:        tot,
		Total:        tot,
		InitialTotal: tot,
	}
	store.orders = append(store.orders, order)
	store.items = append(store.items, item)
	return order, item
}

func TestApplyCouponDiscountsFirstEligibleItem(t *testing.T) {
	store := newFakeStore()
	teacherID := uuid.New()
	order, _ := seedOrderWithItem(store, teacherID, "121")
	store.coupons = append(store.coupons, &models.Coupon{
		ID: uuid.New(), TeacherID: teacherID, Code: "SAVE10",
		Discount: decimal.RequireFromString("10"), Active: true,
	})
	svc := NewCouponService(store)

	item, err := svc.Apply(context.Background(), order.OID, "SAVE10")
	require.NoError(t, err)

	require.True(t, item.Total.Equal(decimal.RequireFromString("108.9")), "item total = %s", item.Total)
	require.True(t, item.Saved.Equal(decimal.RequireFromString("12.1")))
	require.True(t, item.AppliedCoupon)
	require.True(t, item.InitialTotal.Equal(decimal.RequireFromString("121")), "initial total never moves")

	require.True(t, order.Total.Equal(decimal.RequireFromString("108.9")), "order total = %s", order.Total)
	require.True(t, order.Saved.Equal(decimal.RequireFromString("12.1")))
}

func TestApplyCouponTwiceWarnsWithoutDoubleDiscount(t *testing.T) {
	store := newFakeStore()
	teacherID := uuid.New()
	order, _ := seedOrderWithItem(store, teacherID, "100")
	store.coupons = append(store.coupons, &models.Coupon{
		ID: uuid.New(), TeacherID: teacherID, Code: "SAVE10",
		Discount: decimal.RequireFromString("10"), Active: true,
	})
	svc := NewCouponService(store)

	_, err := svc.Apply(context.Background(), order.OID, "SAVE10")
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), order.OID, "SAVE10")
	require.ErrorIs(t, err, ErrAlreadyApplied)
	require.True(t, order.Total.Equal(decimal.RequireFromString("90")), "second apply must not change totals, total = %s", order.Total)
}

func TestApplyCouponSkipsOtherTeachersItems(t *testing.T) {
	store := newFakeStore()
	order, _ := seedOrderWithItem(store, uuid.New(), "100")
	store.coupons = append(store.coupons, &models.Coupon{
		ID: uuid.New(), TeacherID: uuid.New(), Code: "OTHER",
		Discount: decimal.RequireFromString("50"), Active: true,
	})
	svc := NewCouponService(store)

	_, err := svc.Apply(context.Background(), order.OID, "OTHER")
	require.ErrorIs(t, err, ErrCouponNotEligible)
	require.True(t, order.Total.Equal(decimal.RequireFromString("100")))
}

func TestApplyCouponRecordsRedeemer(t *testing.T) {
	store := newFakeStore()
	teacherID := uuid.New()
	order, _ := seedOrderWithItem(store, teacherID, "100")
	student := &models.User{ID: uuid.New(), Email: "ada@example.com"}
	order.StudentID = &student.ID
	order.Student = student
	coupon := &models.Coupon{
		ID: uuid.New(), TeacherID: teacherID, Code: "SAVE10",
		Discount: decimal.RequireFromString("10"), Active: true,
	}
	store.coupons = append(store.coupons, coupon)
	svc := NewCouponService(store)

	_, err := svc.Apply(context.Background(), order.OID, "SAVE10")
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{student.ID}, store.redeemers[coupon.ID])
}

func TestApplyCouponUnknownCode(t *testing.T) {
	store := newFakeStore()
	order, _ := seedOrderWithItem(store, uuid.New(), "100")
	svc := NewCouponService(store)

	_, err := svc.Apply(context.Background(), order.OID, "NOPE")
	require.ErrorIs(t, err, ErrCouponNotFound)
}
