package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	Save(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
}

type gormNotificationRepository struct {
	db *gorm.DB
}

func (r *gormNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *gormNotificationRepository) Save(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Omit("Order", "OrderItem").Save(notification).Error
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &notification, nil
}

func (r *gormNotificationRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Preload("Order").
		Preload("OrderItem").
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Preload("Order").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}
