package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	CreateProfile(ctx context.Context, profile *models.Profile) error
	SaveProfile(ctx context.Context, profile *models.Profile) error
	GetTeacherByID(ctx context.Context, id uuid.UUID) (*models.Teacher, error)
	GetTeacherByUserID(ctx context.Context, userID uuid.UUID) (*models.Teacher, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

func (r *gormUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Profile").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUserRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *gormUserRepository) SaveProfile(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *gormUserRepository) GetTeacherByID(ctx context.Context, id uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.WithContext(ctx).Preload("User").First(&teacher, "id = ?", id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &teacher, nil
}

func (r *gormUserRepository) GetTeacherByUserID(ctx context.Context, userID uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.WithContext(ctx).Preload("User").First(&teacher, "user_id = ?", userID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &teacher, nil
}
