package services

import "errors"

// Error kinds recovered at the request boundary. Handlers translate
// them into a structured JSON response with a status code; none of
// them are fatal to the process.
var (
	ErrCourseNotFound       = errors.New("course not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrTeacherNotFound      = errors.New("teacher not found")
	ErrEnrollmentNotFound   = errors.New("enrollment not found")
	ErrNoteNotFound         = errors.New("note not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrEmailTaken        = errors.New("email already registered")
	ErrAlreadyApplied    = errors.New("coupon already applied")
	ErrCouponNotEligible = errors.New("coupon not valid for any item in this order")
	ErrAlreadyPaid       = errors.New("order already paid")
	ErrAlreadyReviewed   = errors.New("course already reviewed")
	ErrPaymentFailed     = errors.New("payment not completed")
	ErrUnknownProvider   = errors.New("unknown payment provider")
	ErrProviderError     = errors.New("payment provider error")
)
