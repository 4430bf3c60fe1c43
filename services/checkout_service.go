package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
	"github.com/Juantrevi/Backend-Learning-Management-System/utils"
)

type CheckoutService struct {
	store repository.Store
}

func NewCheckoutService(store repository.Store) *CheckoutService {
	return &CheckoutService{store: store}
}

type CreateOrderInput struct {
	FullName string
	Email    string
	Country  string
	CartID   string
	UserID   *uuid.UUID
}

// CreateOrder converts the lines of a cart session into an order with
// one item per line. Totals are accumulated across items and persisted
// last, after every item row is written. An empty cart session yields
// an order with zero totals and no items.
func (s *CheckoutService) CreateOrder(ctx context.Context, in CreateOrderInput) (string, error) {
	oid := utils.ShortID(6)

	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		var studentID *uuid.UUID
		if in.UserID != nil {
			student, err := tx.Users().GetByID(ctx, *in.UserID)
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}
			if err != nil {
				return err
			}
			studentID = &student.ID
		}

		lines, err := tx.Carts().ListLines(ctx, in.CartID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			log.Printf("Order %s created from empty cart session %s", oid, in.CartID)
		}

		order := &models.CartOrder{
			OID:           oid,
			FullName:      in.FullName,
			Email:         in.Email,
			Country:       in.Country,
			StudentID:     studentID,
			PaymentStatus: models.PaymentStatusProcessing,
		}
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}

		subTotal := decimal.Zero
		taxFee := decimal.Zero
		initialTotal := decimal.Zero
		total := decimal.Zero

		for i := range lines {
			line := &lines[i]
			item := &models.CartOrderItem{
				OID:          utils.ShortID(6),
				OrderID:      order.ID,
				CourseID:     line.CourseID,
				TeacherID:    line.Course.TeacherID,
				Price:        line.Price,
				TaxFee:       line.TaxFee,
				Total:        line.Total,
				InitialTotal: line.Total,
			}
			if err := tx.Orders().CreateItem(ctx, item); err != nil {
				return err
			}

			subTotal = subTotal.Add(line.Price)
			taxFee = taxFee.Add(line.TaxFee)
			initialTotal = initialTotal.Add(line.Total)
			total = total.Add(line.Total)

			if err := tx.Orders().AttachTeacher(ctx, order, &line.Course.Teacher); err != nil {
				return err
			}
		}

		order.SubTotal = subTotal
		order.TaxFee = taxFee
		order.InitialTotal = initialTotal
		order.Total = total
		return tx.Orders().Save(ctx, order)
	})
	if err != nil {
		return "", err
	}
	return oid, nil
}

// GetOrder loads an order with its items for the checkout page.
func (s *CheckoutService) GetOrder(ctx context.Context, oid string) (*models.CartOrder, error) {
	order, err := s.store.Orders().GetByOID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}
