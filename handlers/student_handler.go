package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Juantrevi/Backend-Learning-Management-System/middleware"
	"github.com/Juantrevi/Backend-Learning-Management-System/services"
)

type StudentHandler struct {
	students *services.StudentService
}

func NewStudentHandler(students *services.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

func (h *StudentHandler) Summary(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	summary, err := h.students.Summary(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

func (h *StudentHandler) Enrollments(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	enrollments, err := h.students.Enrollments(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(enrollments)
}

func (h *StudentHandler) EnrollmentDetail(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	enrollment, err := h.students.EnrollmentDetail(c.Context(), userID, c.Params("enrollment_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(enrollment)
}

type toggleLessonRequest struct {
	CourseID      string `json:"course_id" validate:"required,uuid"`
	VariantItemID string `json:"variant_item_id" validate:"required"`
}

func (h *StudentHandler) ToggleCompletedLesson(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req toggleLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	courseID, _ := uuid.Parse(req.CourseID)

	completed, err := h.students.ToggleCompletedLesson(c.Context(), userID, courseID, req.VariantItemID)
	if err != nil {
		return respondError(c, err)
	}
	message := "Lesson marked as not completed"
	if completed {
		message = "Lesson marked as completed"
	}
	return c.JSON(fiber.Map{"message": message, "completed": completed})
}

func (h *StudentHandler) Notes(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}
	notes, err := h.students.Notes(c.Context(), userID, courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notes)
}

func (h *StudentHandler) CreateNote(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var req services.NoteInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	note, err := h.students.CreateNote(c.Context(), userID, courseID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Note created successfully", "note": note})
}

func (h *StudentHandler) UpdateNote(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req services.NoteInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	note, err := h.students.UpdateNote(c.Context(), userID, c.Params("note_id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Note updated successfully", "note": note})
}

func (h *StudentHandler) DeleteNote(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	if err := h.students.DeleteNote(c.Context(), userID, c.Params("note_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}

func (h *StudentHandler) RateCourse(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var req services.ReviewInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := h.students.RateCourse(c.Context(), userID, courseID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Review submitted successfully", "review": review})
}

func (h *StudentHandler) UpdateReview(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	reviewID, err := uuid.Parse(c.Params("review_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req services.ReviewInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := h.students.UpdateReview(c.Context(), userID, reviewID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review updated successfully", "review": review})
}

func (h *StudentHandler) ToggleWishlist(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	added, err := h.students.ToggleWishlist(c.Context(), userID, courseID)
	if err != nil {
		return respondError(c, err)
	}
	message := "Course removed from wishlist"
	if added {
		message = "Course added to wishlist"
	}
	return c.JSON(fiber.Map{"message": message, "in_wishlist": added})
}

func (h *StudentHandler) Wishlist(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	wishes, err := h.students.Wishlist(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wishes)
}
