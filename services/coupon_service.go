package services

import (
	"context"
	"errors"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
)

type CouponService struct {
	store repository.Store
}

func NewCouponService(store repository.Store) *CouponService {
	return &CouponService{store: store}
}

// Apply redeems a coupon against an order. Only items whose course
// belongs to the coupon's teacher are eligible. The first eligible
// item decides the outcome: if it does not carry the coupon yet, the
// discount is applied to it (and mirrored onto the order totals) and
// the call returns; if it already carries the coupon, the call returns
// ErrAlreadyApplied without visiting later items. Applying to one item
// per call is the storefront's long-standing behavior.
func (s *CouponService) Apply(ctx context.Context, oid, code string) (*models.CartOrderItem, error) {
	var applied *models.CartOrderItem

	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		order, err := tx.Orders().GetByOID(ctx, oid)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}

		coupon, err := tx.Coupons().GetByCode(ctx, code)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCouponNotFound
		}
		if err != nil {
			return err
		}

		items, err := tx.Orders().ListItemsByTeacher(ctx, order.ID, coupon.TeacherID)
		if err != nil {
			return err
		}

		for i := range items {
			item := &items[i]

			has, err := tx.Orders().ItemHasCoupon(ctx, item.ID, coupon.ID)
			if err != nil {
				return err
			}
			if has {
				return ErrAlreadyApplied
			}

			discount := item.Total.Mul(coupon.Discount).Div(oneHundred)

			item.Total = item.Total.Sub(discount)
			item.Price = item.Price.Sub(discount)
			item.Saved = item.Saved.Add(discount)
			item.AppliedCoupon = true
			if err := tx.Orders().SaveItem(ctx, item); err != nil {
				return err
			}
			if err := tx.Orders().AttachItemCoupon(ctx, item, coupon); err != nil {
				return err
			}

			order.Total = order.Total.Sub(discount)
			order.SubTotal = order.SubTotal.Sub(discount)
			order.Saved = order.Saved.Add(discount)
			if err := tx.Orders().Save(ctx, order); err != nil {
				return err
			}
			if err := tx.Orders().AttachCoupon(ctx, order, coupon); err != nil {
				return err
			}

			if order.Student != nil {
				if err := tx.Coupons().AddRedeemer(ctx, coupon, order.Student); err != nil {
					return err
				}
			}

			applied = item
			return nil
		}

		return ErrCouponNotEligible
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}
