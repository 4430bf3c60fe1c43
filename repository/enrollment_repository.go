package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.EnrolledCourse) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.EnrolledCourse, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.EnrolledCourse, error)
	GetByEnrollmentID(ctx context.Context, enrollmentID string, userID uuid.UUID) (*models.EnrolledCourse, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	FindCompletedLesson(ctx context.Context, userID, courseID, variantItemID uuid.UUID) (*models.CompletedLesson, error)
	CreateCompletedLesson(ctx context.Context, lesson *models.CompletedLesson) error
	DeleteCompletedLesson(ctx context.Context, id uuid.UUID) error
	CountCompletedLessonsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type gormEnrollmentRepository struct {
	db *gorm.DB
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, enrollment *models.EnrolledCourse) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *gormEnrollmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.EnrolledCourse, error) {
	var enrollments []models.EnrolledCourse
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Teacher").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *gormEnrollmentRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.EnrolledCourse, error) {
	var enrollments []models.EnrolledCourse
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *gormEnrollmentRepository) GetByEnrollmentID(ctx context.Context, enrollmentID string, userID uuid.UUID) (*models.EnrolledCourse, error) {
	var enrollment models.EnrolledCourse
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Variants.Items").
		First(&enrollment, "enrollment_id = ? AND user_id = ?", enrollmentID, userID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.EnrolledCourse{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *gormEnrollmentRepository) FindCompletedLesson(ctx context.Context, userID, courseID, variantItemID uuid.UUID) (*models.CompletedLesson, error) {
	var lesson models.CompletedLesson
	err := r.db.WithContext(ctx).
		First(&lesson, "user_id = ? AND course_id = ? AND variant_item_id = ?", userID, courseID, variantItemID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &lesson, nil
}

func (r *gormEnrollmentRepository) CreateCompletedLesson(ctx context.Context, lesson *models.CompletedLesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *gormEnrollmentRepository) DeleteCompletedLesson(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CompletedLesson{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormEnrollmentRepository) CountCompletedLessonsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CompletedLesson{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
