package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
	"github.com/Juantrevi/Backend-Learning-Management-System/utils"
)

// PaymentVerifier asks an external payment provider whether the given
// provider-specific reference (checkout-session id, provider order id)
// has actually been paid.
type PaymentVerifier interface {
	Verify(ctx context.Context, reference string) (bool, error)
}

type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutCreator opens a hosted checkout session for an order and
// returns the redirect URL.
type CheckoutCreator interface {
	CreateCheckoutSession(ctx context.Context, order *models.CartOrder) (*CheckoutSession, error)
}

type PaymentService struct {
	store     repository.Store
	verifiers map[string]PaymentVerifier
	stripe    CheckoutCreator
}

func NewPaymentService(store repository.Store, verifiers map[string]PaymentVerifier, stripe CheckoutCreator) *PaymentService {
	return &PaymentService{store: store, verifiers: verifiers, stripe: stripe}
}

// CreateStripeCheckout opens a Stripe checkout session for the order
// total and records the session id on the order for later
// verification.
func (s *PaymentService) CreateStripeCheckout(ctx context.Context, oid string) (string, error) {
	order, err := s.store.Orders().GetByOID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}

	session, err := s.stripe.CreateCheckoutSession(ctx, order)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderError, err)
	}

	order.StripeSessionID = &session.ID
	if err := s.store.Orders().Save(ctx, order); err != nil {
		return "", err
	}
	return session.URL, nil
}

// Confirm reconciles a provider's payment status with the stored
// order. It is safe to call any number of times for the same order:
// the Processing→Paid transition is a conditional update, and only the
// call that wins it fans out enrollments and notifications.
func (s *PaymentService) Confirm(ctx context.Context, oid, provider, reference string) error {
	order, err := s.store.Orders().GetByOID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		return ErrAlreadyPaid
	}

	verifier, ok := s.verifiers[provider]
	if !ok {
		return ErrUnknownProvider
	}

	// The provider call happens outside the transaction; holding row
	// locks across an external HTTP round trip is not acceptable.
	paid, err := verifier.Verify(ctx, reference)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderError, err)
	}
	if !paid {
		return ErrPaymentFailed
	}

	return s.store.Atomic(ctx, func(tx repository.Store) error {
		transitioned, err := tx.Orders().MarkPaid(ctx, order.ID)
		if err != nil {
			return err
		}
		if !transitioned {
			// A concurrent delivery of the same webhook won the
			// transition; this call must not fan out a second time.
			return ErrAlreadyPaid
		}

		if order.StudentID != nil {
			notification := &models.Notification{
				UserID:  order.StudentID,
				OrderID: &order.ID,
				Type:    models.NotificationEnrollmentCompleted,
			}
			if err := tx.Notifications().Create(ctx, notification); err != nil {
				return err
			}
		}

		items, err := tx.Orders().ListItems(ctx, order.ID)
		if err != nil {
			return err
		}
		for i := range items {
			item := &items[i]

			notification := &models.Notification{
				TeacherID:   &item.TeacherID,
				OrderID:     &order.ID,
				OrderItemID: &item.ID,
				Type:        models.NotificationNewOrder,
			}
			if err := tx.Notifications().Create(ctx, notification); err != nil {
				return err
			}

			if order.StudentID == nil {
				// Guest checkout: nobody to enroll until the order is
				// claimed by an account.
				log.Printf("Order %s paid without a student, skipping enrollment for item %s", order.OID, item.OID)
				continue
			}
			enrollment := &models.EnrolledCourse{
				EnrollmentID: utils.ShortID(6),
				CourseID:     item.CourseID,
				UserID:       *order.StudentID,
				TeacherID:    item.TeacherID,
				OrderItemID:  item.ID,
			}
			if err := tx.Enrollments().Create(ctx, enrollment); err != nil {
				return err
			}
		}
		return nil
	})
}
