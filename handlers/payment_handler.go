package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Juantrevi/Backend-Learning-Management-System/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type stripeCheckoutRequest struct {
	OrderOID string `json:"order_oid" validate:"required"`
}

func (h *PaymentHandler) CreateStripeCheckout(c *fiber.Ctx) error {
	var req stripeCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	url, err := h.payments.CreateStripeCheckout(c.Context(), req.OrderOID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"checkout_url": url})
}

type confirmPaymentRequest struct {
	OrderOID  string `json:"order_oid" validate:"required"`
	Provider  string `json:"provider" validate:"required"`
	Reference string `json:"reference" validate:"required"`
}

func (h *PaymentHandler) Confirm(c *fiber.Ctx) error {
	var req confirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := h.payments.Confirm(c.Context(), req.OrderOID, req.Provider, req.Reference)
	if errors.Is(err, services.ErrAlreadyPaid) {
		return c.JSON(fiber.Map{"message": "Already Paid"})
	}
	if err != nil {
		log.Printf("🔥 Payment confirmation failed for order %s: %v", req.OrderOID, err)
		return respondError(c, err)
	}
	log.Printf("✅ Payment confirmed for order %s via %s", req.OrderOID, req.Provider)
	return c.JSON(fiber.Map{"message": "Payment Successful"})
}
