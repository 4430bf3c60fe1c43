package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

type stubVerifier struct {
	paid bool
	err  error
}

func (v stubVerifier) Verify(context.Context, string) (bool, error) { return v.paid, v.err }

func paymentServiceWith(store *fakeStore, verifier PaymentVerifier) *PaymentService {
	return NewPaymentService(store, map[string]PaymentVerifier{"paypal": verifier}, nil)
}

func seedPaidableOrder(store *fakeStore, studentID *uuid.UUID, itemCount int) *models.CartOrder {
	order := &models.CartOrder{
		ID:            uuid.New(),
		OID:           "ORD001",
		StudentID:     studentID,
		Total:         decimal.RequireFromString("121"),
		PaymentStatus: models.PaymentStatusProcessing,
	}
	store.orders = append(store.orders, order)
	for i := 0; i < itemCount; i++ {
		store.items = append(store.items, &models.CartOrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			CourseID:  uuid.New(),
			TeacherID: uuid.New(),
		})
	}
	return order
}

func TestConfirmPaymentEnrollsAndNotifies(t *testing.T) {
	store := newFakeStore()
	studentID := uuid.New()
	order := seedPaidableOrder(store, &studentID, 2)
	svc := paymentServiceWith(store, stubVerifier{paid: true})

	err := svc.Confirm(context.Background(), order.OID, "paypal", "PP-123")
	require.NoError(t, err)

	require.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	require.Len(t, store.enrollments, 2)
	for _, enrollment := range store.enrollments {
		require.Equal(t, studentID, enrollment.UserID)
		require.NotEmpty(t, enrollment.EnrollmentID)
	}

	// One enrollment notification for the student, one sale
	// notification per item for its teacher.
	require.Len(t, store.notifications, 3)
	var studentNotes, teacherNotes int
	for _, n := range store.notifications {
		switch n.Type {
		case models.NotificationEnrollmentCompleted:
			studentNotes++
		case models.NotificationNewOrder:
			teacherNotes++
		}
	}
	require.Equal(t, 1, studentNotes)
	require.Equal(t, 2, teacherNotes)
}

func TestConfirmPaymentTwiceFansOutOnce(t *testing.T) {
	store := newFakeStore()
	studentID := uuid.New()
	order := seedPaidableOrder(store, &studentID, 1)
	svc := paymentServiceWith(store, stubVerifier{paid: true})

	require.NoError(t, svc.Confirm(context.Background(), order.OID, "paypal", "PP-123"))

	err := svc.Confirm(context.Background(), order.OID, "paypal", "PP-123")
	require.ErrorIs(t, err, ErrAlreadyPaid)
	require.Len(t, store.enrollments, 1)
	require.Len(t, store.notifications, 2)
}

func TestConfirmPaymentNotCompleted(t *testing.T) {
	store := newFakeStore()
	studentID := uuid.New()
	order := seedPaidableOrder(store, &studentID, 1)
	svc := paymentServiceWith(store, stubVerifier{paid: false})

	err := svc.Confirm(context.Background(), order.OID, "paypal", "PP-123")
	require.ErrorIs(t, err, ErrPaymentFailed)
	require.Equal(t, models.PaymentStatusProcessing, order.PaymentStatus)
	require.Empty(t, store.enrollments)
	require.Empty(t, store.notifications)
}

func TestConfirmPaymentProviderError(t *testing.T) {
	store := newFakeStore()
	studentID := uuid.New()
	order := seedPaidableOrder(store, &studentID, 1)
	svc := paymentServiceWith(store, stubVerifier{err: errors.New("timeout")})

	err := svc.Confirm(context.Background(), order.OID, "paypal", "PP-123")
	require.ErrorIs(t, err, ErrProviderError)
	require.Equal(t, models.PaymentStatusProcessing, order.PaymentStatus)
}

func TestConfirmPaymentUnknownProvider(t *testing.T) {
	store := newFakeStore()
	studentID := uuid.New()
	order := seedPaidableOrder(store, &studentID, 1)
	svc := paymentServiceWith(store, stubVerifier{paid: true})

	err := svc.Confirm(context.Background(), order.OID, "skrill", "REF")
	require.ErrorIs(t, err, ErrUnknownProvider)
}

func TestConfirmPaymentGuestOrderSkipsEnrollment(t *testing.T) {
	store := newFakeStore()
	order := seedPaidableOrder(store, nil, 2)
	svc := paymentServiceWith(store, stubVerifier{paid: true})

	err := svc.Confirm(context.Background(), order.OID, "paypal", "PP-123")
	require.NoError(t, err)

	require.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	require.Empty(t, store.enrollments)
	require.Len(t, store.notifications, 2, "teachers are still told about the sale")
	for _, n := range store.notifications {
		require.Equal(t, models.NotificationNewOrder, n.Type)
	}
}

func TestConfirmPaymentUnknownOrder(t *testing.T) {
	store := newFakeStore()
	svc := paymentServiceWith(store, stubVerifier{paid: true})

	err := svc.Confirm(context.Background(), "NOPE", "paypal", "PP-123")
	require.ErrorIs(t, err, ErrOrderNotFound)
}
