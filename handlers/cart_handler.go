package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Juantrevi/Backend-Learning-Management-System/services"
)

type CartHandler struct {
	carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type upsertCartRequest struct {
	CourseID string          `json:"course_id" validate:"required,uuid"`
	UserID   string          `json:"user_id" validate:"omitempty,uuid"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Country  string          `json:"country"`
	CartID   string          `json:"cart_id" validate:"required"`
}

func (h *CartHandler) Upsert(c *fiber.Ctx) error {
	var req upsertCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID, _ := uuid.Parse(req.CourseID)
	in := services.UpsertCartInput{
		CartID:   req.CartID,
		CourseID: courseID,
		Price:    req.Price,
		Country:  req.Country,
	}
	if req.UserID != "" {
		userID, _ := uuid.Parse(req.UserID)
		in.UserID = &userID
	}

	line, created, err := h.carts.Upsert(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	message := "Cart updated successfully"
	if created {
		status = fiber.StatusCreated
		message = "Cart created successfully"
	}
	return c.Status(status).JSON(fiber.Map{"message": message, "cart": line})
}

func (h *CartHandler) List(c *fiber.Ctx) error {
	lines, err := h.carts.List(c.Context(), c.Params("cart_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lines)
}

func (h *CartHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.carts.Stats(c.Context(), c.Params("cart_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *CartHandler) Delete(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid cart item id"})
	}
	if err := h.carts.Delete(c.Context(), c.Params("cart_id"), itemID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart item deleted successfully"})
}
