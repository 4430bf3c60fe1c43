package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Save(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*models.Review, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Review, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Review, error)
}

type gormReviewRepository struct {
	db *gorm.DB
}

func (r *gormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *gormReviewRepository) Save(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Omit("User", "Course").Save(review).Error
}

func (r *gormReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Preload("User").Preload("Course").First(&review, "id = ?", id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &review, nil
}

func (r *gormReviewRepository) GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).First(&review, "user_id = ? AND course_id = ?", userID, courseID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &review, nil
}

func (r *gormReviewRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("course_id = ? AND active = ?", courseID, true).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *gormReviewRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Course").
		Joins("JOIN courses ON courses.id = reviews.course_id").
		Where("courses.teacher_id = ?", teacherID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
