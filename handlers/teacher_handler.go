package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Juantrevi/Backend-Learning-Management-System/middleware"
	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/services"
)

type TeacherHandler struct {
	teachers *services.TeacherService
	catalog  *services.CatalogService
}

func NewTeacherHandler(teachers *services.TeacherService, catalog *services.CatalogService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers, catalog: catalog}
}

// currentTeacher resolves the teacher row for the authenticated user.
func (h *TeacherHandler) currentTeacher(c *fiber.Ctx) (*models.Teacher, error) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	teacher, err := h.teachers.TeacherByUserID(c.Context(), userID)
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

func (h *TeacherHandler) Summary(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	summary, err := h.teachers.Summary(c.Context(), teacher.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

func (h *TeacherHandler) Courses(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	courses, err := h.teachers.Courses(c.Context(), teacher.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(courses)
}

func (h *TeacherHandler) CreateCourse(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}

	var req services.CourseInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course, err := h.catalog.CreateCourse(c.Context(), teacher.ID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Course created successfully", "course": course})
}

func (h *TeacherHandler) UpdateCourse(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}

	var req services.CourseInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course, err := h.catalog.UpdateCourse(c.Context(), teacher.ID, c.Params("course_id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Course updated successfully", "course": course})
}

func (h *TeacherHandler) Orders(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.teachers.SoldItems(c.Context(), teacher.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *TeacherHandler) Students(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	students, err := h.teachers.Students(c.Context(), teacher.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(students)
}

func (h *TeacherHandler) Coupons(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	coupons, err := h.teachers.Coupons(c.Context(), teacher.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(coupons)
}

func (h *TeacherHandler) Coupon(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	couponID, err := uuid.Parse(c.Params("coupon_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coupon id"})
	}
	coupon, err := h.teachers.Coupon(c.Context(), teacher.ID, couponID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(coupon)
}

func (h *TeacherHandler) CreateCoupon(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}

	var req services.CouponInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	coupon, err := h.teachers.CreateCoupon(c.Context(), teacher.ID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Coupon created successfully", "coupon": coupon})
}

func (h *TeacherHandler) UpdateCoupon(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	couponID, err := uuid.Parse(c.Params("coupon_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coupon id"})
	}

	var req services.CouponInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	coupon, err := h.teachers.UpdateCoupon(c.Context(), teacher.ID, couponID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Coupon updated successfully", "coupon": coupon})
}

func (h *TeacherHandler) DeleteCoupon(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	couponID, err := uuid.Parse(c.Params("coupon_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coupon id"})
	}
	if err := h.teachers.DeleteCoupon(c.Context(), teacher.ID, couponID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Coupon deleted successfully"})
}

func (h *TeacherHandler) Notifications(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	notifications, err := h.teachers.Notifications(c.Context(), teacher.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notifications)
}

func (h *TeacherHandler) MarkNotificationSeen(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	notificationID, err := uuid.Parse(c.Params("notification_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification id"})
	}
	if err := h.teachers.MarkNotificationSeen(c.Context(), teacher.ID, notificationID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked as seen"})
}

func (h *TeacherHandler) Reviews(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	reviews, err := h.teachers.Reviews(c.Context(), teacher.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

type reviewReplyRequest struct {
	Reply string `json:"reply" validate:"required"`
}

func (h *TeacherHandler) ReplyToReview(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	reviewID, err := uuid.Parse(c.Params("review_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req reviewReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := h.teachers.ReplyToReview(c.Context(), teacher.ID, reviewID, req.Reply)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Reply posted successfully", "review": review})
}

func (h *TeacherHandler) Questions(c *fiber.Ctx) error {
	teacher, err := h.currentTeacher(c)
	if err != nil {
		return respondError(c, err)
	}
	questions, err := h.teachers.Questions(c.Context(), teacher.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(questions)
}
