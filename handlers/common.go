package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Juantrevi/Backend-Learning-Management-System/services"
)

var validate = validator.New()

// respondError maps service error kinds onto HTTP responses. Anything
// unrecognized is a 500 with a generic message.
func respondError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}
	switch {
	case errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCouponNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTeacherNotFound),
		errors.Is(err, services.ErrEnrollmentNotFound),
		errors.Is(err, services.ErrNoteNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrAlreadyReviewed),
		errors.Is(err, services.ErrCouponNotEligible):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrPaymentFailed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment was not completed"})
	case errors.Is(err, services.ErrUnknownProvider):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown payment provider"})
	case errors.Is(err, services.ErrProviderError):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment provider unavailable"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
