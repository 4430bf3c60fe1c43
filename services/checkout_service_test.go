package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

func seedCartLine(store *fakeStore, cartID string, course *models.Course, price, taxFee string) *models.Cart {
	p := decimal.RequireFromString(price)
	tf := decimal.RequireFromString(taxFee)
	line := &models.Cart{
		ID:       uuid.New(),
		CartID:   cartID,
		CourseID: course.ID,
		Price:    p,
		TaxFee:   tf,
		Total:    p.Add(tf),
		Course:   *course,
	}
	store.carts = append(store.carts, line)
	return line
}

func TestCreateOrderAggregatesCartLines(t *testing.T) {
	store := newFakeStore()
	teacherA := uuid.New()
	teacherB := uuid.New()
	courseA := seedCourse(store, teacherA)
	courseB := seedCourse(store, teacherB)
	seedCartLine(store, "session-1", courseA, "100", "21")
	seedCartLine(store, "session-1", courseB, "50", "10.50")
	svc := NewCheckoutService(store)

	oid, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Country:  "Argentina",
		CartID:   "session-1",
	})
	require.NoError(t, err)
	require.Len(t, oid, 6)

	order, err := svc.GetOrder(context.Background(), oid)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusProcessing, order.PaymentStatus)
	require.True(t, order.SubTotal.Equal(decimal.RequireFromString("150")), "sub total = %s", order.SubTotal)
	require.True(t, order.TaxFee.Equal(decimal.RequireFromString("31.50")), "tax fee = %s", order.TaxFee)
	require.True(t, order.Total.Equal(decimal.RequireFromString("181.50")), "total = %s", order.Total)
	require.True(t, order.InitialTotal.Equal(order.Total))

	items, err := store.Orders().ListItems(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		require.True(t, item.InitialTotal.Equal(item.Total))
		require.NotEmpty(t, item.OID)
	}
}

func TestCreateOrderKeepsTeacherPerItem(t *testing.T) {
	store := newFakeStore()
	teacherID := uuid.New()
	course := seedCourse(store, teacherID)
	seedCartLine(store, "session-1", course, "100", "0")
	svc := NewCheckoutService(store)

	oid, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Country:  "USA",
		CartID:   "session-1",
	})
	require.NoError(t, err)

	order, err := svc.GetOrder(context.Background(), oid)
	require.NoError(t, err)
	items, err := store.Orders().ListItems(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, teacherID, items[0].TeacherID)
}

func TestCreateOrderFromEmptyCart(t *testing.T) {
	store := newFakeStore()
	svc := NewCheckoutService(store)

	oid, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Country:  "USA",
		CartID:   "empty-session",
	})
	require.NoError(t, err)

	order, err := svc.GetOrder(context.Background(), oid)
	require.NoError(t, err)
	require.True(t, order.Total.IsZero())
	require.True(t, order.SubTotal.IsZero())
	items, err := store.Orders().ListItems(context.Background(), order.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCreateOrderUnknownUser(t *testing.T) {
	store := newFakeStore()
	svc := NewCheckoutService(store)

	missing := uuid.New()
	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		FullName: "Ghost",
		Email:    "ghost@example.com",
		Country:  "USA",
		CartID:   "session-1",
		UserID:   &missing,
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}
