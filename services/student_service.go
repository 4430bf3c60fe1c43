package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
	"github.com/Juantrevi/Backend-Learning-Management-System/utils"
)

// QABroadcaster pushes a new Q&A message to everyone watching the
// thread. A nil-safe no-op implementation is fine for tests.
type QABroadcaster interface {
	Broadcast(qaID string, message *models.QuestionAnswerMessage)
}

type StudentService struct {
	store       repository.Store
	broadcaster QABroadcaster
}

func NewStudentService(store repository.Store, broadcaster QABroadcaster) *StudentService {
	return &StudentService{store: store, broadcaster: broadcaster}
}

type StudentSummary struct {
	Courses          int64 `json:"courses"`
	CompletedLessons int64 `json:"completed_lessons"`
}

func (s *StudentService) Summary(ctx context.Context, userID uuid.UUID) (*StudentSummary, error) {
	courses, err := s.store.Enrollments().CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	lessons, err := s.store.Enrollments().CountCompletedLessonsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &StudentSummary{Courses: courses, CompletedLessons: lessons}, nil
}

func (s *StudentService) Enrollments(ctx context.Context, userID uuid.UUID) ([]models.EnrolledCourse, error) {
	return s.store.Enrollments().ListByUser(ctx, userID)
}

func (s *StudentService) EnrollmentDetail(ctx context.Context, userID uuid.UUID, enrollmentID string) (*models.EnrolledCourse, error) {
	enrollment, err := s.store.Enrollments().GetByEnrollmentID(ctx, enrollmentID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEnrollmentNotFound
	}
	return enrollment, err
}

// ToggleCompletedLesson flips the completed mark on a lecture. Marking
// an already-completed lecture removes the mark.
func (s *StudentService) ToggleCompletedLesson(ctx context.Context, userID, courseID uuid.UUID, variantItemID string) (completed bool, err error) {
	err = s.store.Atomic(ctx, func(tx repository.Store) error {
		item, err := tx.Catalog().GetVariantItemByPublicID(ctx, variantItemID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		if err != nil {
			return err
		}

		existing, err := tx.Enrollments().FindCompletedLesson(ctx, userID, courseID, item.ID)
		switch {
		case err == nil:
			return tx.Enrollments().DeleteCompletedLesson(ctx, existing.ID)
		case errors.Is(err, repository.ErrNotFound):
			completed = true
			return tx.Enrollments().CreateCompletedLesson(ctx, &models.CompletedLesson{
				UserID:        userID,
				CourseID:      courseID,
				VariantItemID: item.ID,
			})
		default:
			return err
		}
	})
	return completed, err
}

func (s *StudentService) Notes(ctx context.Context, userID, courseID uuid.UUID) ([]models.Note, error) {
	return s.store.Student().ListNotes(ctx, userID, courseID)
}

type NoteInput struct {
	Title string `json:"title" validate:"required"`
	Note  string `json:"note" validate:"required"`
}

func (s *StudentService) CreateNote(ctx context.Context, userID, courseID uuid.UUID, in NoteInput) (*models.Note, error) {
	note := &models.Note{
		NoteID:   utils.ShortID(6),
		UserID:   userID,
		CourseID: courseID,
		Title:    in.Title,
		Note:     in.Note,
	}
	if err := s.store.Student().CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *StudentService) UpdateNote(ctx context.Context, userID uuid.UUID, noteID string, in NoteInput) (*models.Note, error) {
	note, err := s.store.Student().GetNote(ctx, userID, noteID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	note.Title = in.Title
	note.Note = in.Note
	if err := s.store.Student().SaveNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *StudentService) DeleteNote(ctx context.Context, userID uuid.UUID, noteID string) error {
	err := s.store.Student().DeleteNote(ctx, userID, noteID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotFound
	}
	return err
}

type ReviewInput struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review"`
}

// RateCourse records the student's single review of a course.
func (s *StudentService) RateCourse(ctx context.Context, userID, courseID uuid.UUID, in ReviewInput) (*models.Review, error) {
	var review *models.Review
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		_, err := tx.Reviews().GetByUserAndCourse(ctx, userID, courseID)
		if err == nil {
			return ErrAlreadyReviewed
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		review = &models.Review{
			UserID:   userID,
			CourseID: courseID,
			Rating:   in.Rating,
			Review:   in.Review,
			Active:   true,
		}
		return tx.Reviews().Create(ctx, review)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *StudentService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, in ReviewInput) (*models.Review, error) {
	review, err := s.store.Reviews().GetByID(ctx, reviewID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrReviewNotFound
	}
	review.Rating = in.Rating
	review.Review = in.Review
	if err := s.store.Reviews().Save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ToggleWishlist adds the course to the wishlist, or removes it when
// it is already there. The returned bool reports whether the course is
// on the list after the call.
func (s *StudentService) ToggleWishlist(ctx context.Context, userID, courseID uuid.UUID) (added bool, err error) {
	err = s.store.Atomic(ctx, func(tx repository.Store) error {
		existing, err := tx.Student().FindWish(ctx, userID, courseID)
		switch {
		case err == nil:
			return tx.Student().DeleteWish(ctx, existing.ID)
		case errors.Is(err, repository.ErrNotFound):
			added = true
			return tx.Student().CreateWish(ctx, &models.WishList{UserID: userID, CourseID: courseID})
		default:
			return err
		}
	})
	return added, err
}

func (s *StudentService) Wishlist(ctx context.Context, userID uuid.UUID) ([]models.WishList, error) {
	return s.store.Student().ListWishes(ctx, userID)
}

func (s *StudentService) Questions(ctx context.Context, courseID uuid.UUID) ([]models.QuestionAnswer, error) {
	return s.store.Community().ListByCourse(ctx, courseID)
}

type QuestionInput struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// AskQuestion opens a Q&A thread with its first message.
func (s *StudentService) AskQuestion(ctx context.Context, userID, courseID uuid.UUID, in QuestionInput) (*models.QuestionAnswer, error) {
	var question *models.QuestionAnswer
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		question = &models.QuestionAnswer{
			QAID:     utils.ShortID(6),
			CourseID: courseID,
			UserID:   userID,
			Title:    in.Title,
		}
		if err := tx.Community().CreateQuestion(ctx, question); err != nil {
			return err
		}
		return tx.Community().CreateMessage(ctx, &models.QuestionAnswerMessage{
			QuestionID: question.ID,
			CourseID:   courseID,
			UserID:     userID,
			Message:    in.Message,
		})
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

// PostMessage appends a message to an existing thread and pushes it to
// live watchers.
func (s *StudentService) PostMessage(ctx context.Context, userID uuid.UUID, qaID, text string) (*models.QuestionAnswerMessage, error) {
	question, err := s.store.Community().GetByQAID(ctx, qaID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}

	message := &models.QuestionAnswerMessage{
		QuestionID: question.ID,
		CourseID:   question.CourseID,
		UserID:     userID,
		Message:    text,
	}
	if err := s.store.Community().CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(qaID, message)
	}
	return message, nil
}
