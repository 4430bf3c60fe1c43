package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Juantrevi/Backend-Learning-Management-System/services"
)

type CourseHandler struct {
	catalog *services.CatalogService
}

func NewCourseHandler(catalog *services.CatalogService) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.catalog.ListCourses(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(courses)
}

func (h *CourseHandler) Best(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "4"))
	if err != nil || limit < 1 {
		limit = 4
	}
	courses, err := h.catalog.BestCourses(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(courses)
}

func (h *CourseHandler) Search(c *fiber.Ctx) error {
	courses, err := h.catalog.Search(c.Context(), c.Query("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(courses)
}

func (h *CourseHandler) Detail(c *fiber.Ctx) error {
	course, err := h.catalog.CourseDetail(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(course)
}

func (h *CourseHandler) Reviews(c *fiber.Ctx) error {
	reviews, err := h.catalog.CourseReviews(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

func (h *CourseHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}
