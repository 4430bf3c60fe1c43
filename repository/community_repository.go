package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

// CommunityRepository holds the course Q&A threads and their messages.
type CommunityRepository interface {
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.QuestionAnswer, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.QuestionAnswer, error)
	GetByQAID(ctx context.Context, qaID string) (*models.QuestionAnswer, error)
	CreateQuestion(ctx context.Context, question *models.QuestionAnswer) error
	CreateMessage(ctx context.Context, message *models.QuestionAnswerMessage) error
}

type gormCommunityRepository struct {
	db *gorm.DB
}

func (r *gormCommunityRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.QuestionAnswer, error) {
	var questions []models.QuestionAnswer
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Messages.User").
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

func (r *gormCommunityRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.QuestionAnswer, error) {
	var questions []models.QuestionAnswer
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Messages.User").
		Joins("JOIN courses ON courses.id = question_answers.course_id").
		Where("courses.teacher_id = ?", teacherID).
		Order("question_answers.created_at DESC").
		Find(&questions).Error
	return questions, err
}

func (r *gormCommunityRepository) GetByQAID(ctx context.Context, qaID string) (*models.QuestionAnswer, error) {
	var question models.QuestionAnswer
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Messages.User").
		First(&question, "qa_id = ?", qaID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &question, nil
}

func (r *gormCommunityRepository) CreateQuestion(ctx context.Context, question *models.QuestionAnswer) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *gormCommunityRepository) CreateMessage(ctx context.Context, message *models.QuestionAnswerMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}
