package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
)

type TeacherService struct {
	store repository.Store
}

func NewTeacherService(store repository.Store) *TeacherService {
	return &TeacherService{store: store}
}

func (s *TeacherService) TeacherByUserID(ctx context.Context, userID uuid.UUID) (*models.Teacher, error) {
	teacher, err := s.store.Users().GetTeacherByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTeacherNotFound
	}
	return teacher, err
}

type TeacherSummary struct {
	TotalCourses  int64           `json:"total_courses"`
	TotalStudents int64           `json:"total_students"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// Summary aggregates a teacher's dashboard numbers from paid order
// items. Revenue is the sum of every sold item's price.
func (s *TeacherService) Summary(ctx context.Context, teacherID uuid.UUID) (*TeacherSummary, error) {
	courses, err := s.store.Catalog().ListCoursesByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.store.Enrollments().ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Orders().ListItemsSoldByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, item := range items {
		revenue = revenue.Add(item.Price)
	}
	return &TeacherSummary{
		TotalCourses:  int64(len(courses)),
		TotalStudents: int64(len(enrollments)),
		TotalRevenue:  revenue,
	}, nil
}

func (s *TeacherService) Courses(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error) {
	return s.store.Catalog().ListCoursesByTeacher(ctx, teacherID)
}

func (s *TeacherService) SoldItems(ctx context.Context, teacherID uuid.UUID) ([]models.CartOrderItem, error) {
	return s.store.Orders().ListItemsSoldByTeacher(ctx, teacherID)
}

func (s *TeacherService) Students(ctx context.Context, teacherID uuid.UUID) ([]models.EnrolledCourse, error) {
	return s.store.Enrollments().ListByTeacher(ctx, teacherID)
}

func (s *TeacherService) Coupons(ctx context.Context, teacherID uuid.UUID) ([]models.Coupon, error) {
	return s.store.Coupons().ListByTeacher(ctx, teacherID)
}

type CouponInput struct {
	Code     string          `json:"code" validate:"required,max=50"`
	Discount decimal.Decimal `json:"discount" validate:"required"`
	Active   bool            `json:"active"`
}

func (s *TeacherService) Coupon(ctx context.Context, teacherID, couponID uuid.UUID) (*models.Coupon, error) {
	coupon, err := s.store.Coupons().GetByID(ctx, couponID, teacherID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCouponNotFound
	}
	return coupon, err
}

func (s *TeacherService) CreateCoupon(ctx context.Context, teacherID uuid.UUID, in CouponInput) (*models.Coupon, error) {
	coupon := &models.Coupon{
		TeacherID: teacherID,
		Code:      in.Code,
		Discount:  in.Discount,
		Active:    in.Active,
	}
	if err := s.store.Coupons().Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *TeacherService) UpdateCoupon(ctx context.Context, teacherID, couponID uuid.UUID, in CouponInput) (*models.Coupon, error) {
	coupon, err := s.store.Coupons().GetByID(ctx, couponID, teacherID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	coupon.Code = in.Code
	coupon.Discount = in.Discount
	coupon.Active = in.Active
	if err := s.store.Coupons().Save(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *TeacherService) DeleteCoupon(ctx context.Context, teacherID, couponID uuid.UUID) error {
	err := s.store.Coupons().Delete(ctx, couponID, teacherID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCouponNotFound
	}
	return err
}

func (s *TeacherService) Notifications(ctx context.Context, teacherID uuid.UUID) ([]models.Notification, error) {
	return s.store.Notifications().ListByTeacher(ctx, teacherID)
}

// MarkNotificationSeen is teacher-scoped; a teacher cannot mark
// another teacher's rows.
func (s *TeacherService) MarkNotificationSeen(ctx context.Context, teacherID, notificationID uuid.UUID) error {
	notification, err := s.store.Notifications().GetByID(ctx, notificationID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotificationNotFound
	}
	if err != nil {
		return err
	}
	if notification.TeacherID == nil || *notification.TeacherID != teacherID {
		return ErrNotificationNotFound
	}
	notification.Seen = true
	return s.store.Notifications().Save(ctx, notification)
}

func (s *TeacherService) Reviews(ctx context.Context, teacherID uuid.UUID) ([]models.Review, error) {
	return s.store.Reviews().ListByTeacher(ctx, teacherID)
}

// ReplyToReview lets the course owner answer a review on one of their
// courses.
func (s *TeacherService) ReplyToReview(ctx context.Context, teacherID, reviewID uuid.UUID, reply string) (*models.Review, error) {
	review, err := s.store.Reviews().GetByID(ctx, reviewID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	if review.Course.TeacherID != teacherID {
		return nil, ErrReviewNotFound
	}
	review.Reply = &reply
	if err := s.store.Reviews().Save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *TeacherService) Questions(ctx context.Context, teacherID uuid.UUID) ([]models.QuestionAnswer, error) {
	return s.store.Community().ListByTeacher(ctx, teacherID)
}
