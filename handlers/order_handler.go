package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Juantrevi/Backend-Learning-Management-System/services"
)

type OrderHandler struct {
	checkout *services.CheckoutService
	coupons  *services.CouponService
}

func NewOrderHandler(checkout *services.CheckoutService, coupons *services.CouponService) *OrderHandler {
	return &OrderHandler{checkout: checkout, coupons: coupons}
}

type createOrderRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Country  string `json:"country" validate:"required"`
	CartID   string `json:"cart_id" validate:"required"`
	UserID   string `json:"user_id" validate:"omitempty,uuid"`
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	in := services.CreateOrderInput{
		FullName: req.FullName,
		Email:    req.Email,
		Country:  req.Country,
		CartID:   req.CartID,
	}
	if req.UserID != "" {
		userID, _ := uuid.Parse(req.UserID)
		in.UserID = &userID
	}

	oid, err := h.checkout.CreateOrder(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order created successfully",
		"order_id": oid,
	})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.checkout.GetOrder(c.Context(), c.Params("oid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

type applyCouponRequest struct {
	OrderOID string `json:"order_oid" validate:"required"`
	Code     string `json:"coupon_code" validate:"required"`
}

func (h *OrderHandler) ApplyCoupon(c *fiber.Ctx) error {
	var req applyCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item, err := h.coupons.Apply(c.Context(), req.OrderOID, req.Code)
	if errors.Is(err, services.ErrAlreadyApplied) {
		return c.JSON(fiber.Map{"message": "Coupon already applied", "icon": "warning"})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Coupon activated", "icon": "success", "item": item})
}
