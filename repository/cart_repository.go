package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

type CartRepository interface {
	FindLine(ctx context.Context, cartID string, courseID uuid.UUID) (*models.Cart, error)
	ListLines(ctx context.Context, cartID string) ([]models.Cart, error)
	Create(ctx context.Context, line *models.Cart) error
	Save(ctx context.Context, line *models.Cart) error
	Delete(ctx context.Context, cartID string, itemID uuid.UUID) error
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type gormCartRepository struct {
	db *gorm.DB
}

func (r *gormCartRepository) FindLine(ctx context.Context, cartID string, courseID uuid.UUID) (*models.Cart, error) {
	var line models.Cart
	err := r.db.WithContext(ctx).First(&line, "cart_id = ? AND course_id = ?", cartID, courseID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &line, nil
}

func (r *gormCartRepository) ListLines(ctx context.Context, cartID string) ([]models.Cart, error) {
	var lines []models.Cart
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Teacher").
		Where("cart_id = ?", cartID).
		Order("created_at").
		Find(&lines).Error
	return lines, err
}

func (r *gormCartRepository) Create(ctx context.Context, line *models.Cart) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *gormCartRepository) Save(ctx context.Context, line *models.Cart) error {
	return r.db.WithContext(ctx).Save(line).Error
}

func (r *gormCartRepository) Delete(ctx context.Context, cartID string, itemID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("cart_id = ? AND id = ?", cartID, itemID).
		Delete(&models.Cart{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormCartRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&models.Cart{})
	return res.RowsAffected, res.Error
}
