package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	GetByID(ctx context.Context, id uuid.UUID, teacherID uuid.UUID) (*models.Coupon, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Coupon, error)
	Create(ctx context.Context, coupon *models.Coupon) error
	Save(ctx context.Context, coupon *models.Coupon) error
	Delete(ctx context.Context, id uuid.UUID, teacherID uuid.UUID) error
	AddRedeemer(ctx context.Context, coupon *models.Coupon, user *models.User) error
}

type gormCouponRepository struct {
	db *gorm.DB
}

func (r *gormCouponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).First(&coupon, "code = ? AND active = ?", code, true).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &coupon, nil
}

func (r *gormCouponRepository) GetByID(ctx context.Context, id uuid.UUID, teacherID uuid.UUID) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).First(&coupon, "id = ? AND teacher_id = ?", id, teacherID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &coupon, nil
}

func (r *gormCouponRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&coupons).Error
	return coupons, err
}

func (r *gormCouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *gormCouponRepository) Save(ctx context.Context, coupon *models.Coupon) error {
	return r.db.WithContext(ctx).Omit("Teacher", "UsedBy").Save(coupon).Error
}

func (r *gormCouponRepository) Delete(ctx context.Context, id uuid.UUID, teacherID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND teacher_id = ?", id, teacherID).
		Delete(&models.Coupon{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormCouponRepository) AddRedeemer(ctx context.Context, coupon *models.Coupon, user *models.User) error {
	return r.db.WithContext(ctx).Model(coupon).Association("UsedBy").Append(user)
}
