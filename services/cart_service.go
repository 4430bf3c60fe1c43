package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
)

type CartService struct {
	store repository.Store
}

func NewCartService(store repository.Store) *CartService {
	return &CartService{store: store}
}

type UpsertCartInput struct {
	CartID   string
	CourseID uuid.UUID
	UserID   *uuid.UUID
	Price    decimal.Decimal
	Country  string
}

// Upsert creates or overwrites the single cart line for
// (cart session, course). The reported bool is true when a new line
// was inserted.
func (s *CartService) Upsert(ctx context.Context, in UpsertCartInput) (*models.Cart, bool, error) {
	var (
		line    *models.Cart
		created bool
	)

	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		course, err := tx.Catalog().GetCourseByID(ctx, in.CourseID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		if err != nil {
			return err
		}

		country := DefaultCountry
		taxRate := decimal.Zero
		switch c, err := tx.Catalog().GetCountryByName(ctx, in.Country); {
		case err == nil:
			country = c.Name
			taxRate = c.TaxRate
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		taxFee, total := ComputeLineAmounts(in.Price, taxRate)

		existing, err := tx.Carts().FindLine(ctx, in.CartID, course.ID)
		switch {
		case err == nil:
			existing.UserID = in.UserID
			existing.Price = in.Price
			existing.TaxFee = taxFee
			existing.Total = total
			existing.Country = country
			if err := tx.Carts().Save(ctx, existing); err != nil {
				return err
			}
			existing.Course = *course
			line = existing
		case errors.Is(err, repository.ErrNotFound):
			line = &models.Cart{
				CartID:   in.CartID,
				CourseID: course.ID,
				UserID:   in.UserID,
				Price:    in.Price,
				TaxFee:   taxFee,
				Total:    total,
				Country:  country,
			}
			if err := tx.Carts().Create(ctx, line); err != nil {
				return err
			}
			line.Course = *course
			created = true
		default:
			return err
		}
		return nil
	})

	return line, created, err
}

func (s *CartService) List(ctx context.Context, cartID string) ([]models.Cart, error) {
	return s.store.Carts().ListLines(ctx, cartID)
}

// Delete removes one line; the line must belong to the given session.
func (s *CartService) Delete(ctx context.Context, cartID string, itemID uuid.UUID) error {
	err := s.store.Carts().Delete(ctx, cartID, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCartItemNotFound
	}
	return err
}

type CartStats struct {
	Price decimal.Decimal `json:"price"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total"`
}

// Stats sums price, tax and total across a session. The accumulated
// total is rounded to 2 decimals once at the end, never per line;
// summing pre-rounded lines gives different cents.
func (s *CartService) Stats(ctx context.Context, cartID string) (*CartStats, error) {
	lines, err := s.store.Carts().ListLines(ctx, cartID)
	if err != nil {
		return nil, err
	}

	price := decimal.Zero
	tax := decimal.Zero
	total := decimal.Zero
	for _, line := range lines {
		price = price.Add(line.Price)
		tax = tax.Add(line.TaxFee)
		total = total.Add(line.Total)
	}

	return &CartStats{
		Price: price,
		Tax:   tax,
		Total: total.Round(2),
	}, nil
}
