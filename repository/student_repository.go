package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

// StudentRepository holds the per-student side tables: wishlist and
// course notes.
type StudentRepository interface {
	FindWish(ctx context.Context, userID, courseID uuid.UUID) (*models.WishList, error)
	CreateWish(ctx context.Context, wish *models.WishList) error
	DeleteWish(ctx context.Context, id uuid.UUID) error
	ListWishes(ctx context.Context, userID uuid.UUID) ([]models.WishList, error)

	ListNotes(ctx context.Context, userID, courseID uuid.UUID) ([]models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) error
	GetNote(ctx context.Context, userID uuid.UUID, noteID string) (*models.Note, error)
	SaveNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, userID uuid.UUID, noteID string) error
}

type gormStudentRepository struct {
	db *gorm.DB
}

func (r *gormStudentRepository) FindWish(ctx context.Context, userID, courseID uuid.UUID) (*models.WishList, error) {
	var wish models.WishList
	err := r.db.WithContext(ctx).First(&wish, "user_id = ? AND course_id = ?", userID, courseID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &wish, nil
}

func (r *gormStudentRepository) CreateWish(ctx context.Context, wish *models.WishList) error {
	return r.db.WithContext(ctx).Create(wish).Error
}

func (r *gormStudentRepository) DeleteWish(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WishList{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormStudentRepository) ListWishes(ctx context.Context, userID uuid.UUID) ([]models.WishList, error) {
	var wishes []models.WishList
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Teacher").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&wishes).Error
	return wishes, err
}

func (r *gormStudentRepository) ListNotes(ctx context.Context, userID, courseID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *gormStudentRepository) CreateNote(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *gormStudentRepository) GetNote(ctx context.Context, userID uuid.UUID, noteID string) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).First(&note, "user_id = ? AND note_id = ?", userID, noteID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &note, nil
}

func (r *gormStudentRepository) SaveNote(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *gormStudentRepository) DeleteNote(ctx context.Context, userID uuid.UUID, noteID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Delete(&models.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
