package handlers

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Juantrevi/Backend-Learning-Management-System/middleware"
	"github.com/Juantrevi/Backend-Learning-Management-System/services"
	ws "github.com/Juantrevi/Backend-Learning-Management-System/websocket"
)

// CommunityHandler serves the course Q&A threads over HTTP and keeps a
// live websocket room per thread.
type CommunityHandler struct {
	students *services.StudentService
	hub      *ws.Hub
}

func NewCommunityHandler(students *services.StudentService, hub *ws.Hub) *CommunityHandler {
	return &CommunityHandler{students: students, hub: hub}
}

func (h *CommunityHandler) Questions(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}
	questions, err := h.students.Questions(c.Context(), courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(questions)
}

func (h *CommunityHandler) AskQuestion(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var req services.QuestionInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	question, err := h.students.AskQuestion(c.Context(), userID, courseID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Question posted successfully", "question": question})
}

type postMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

func (h *CommunityHandler) PostMessage(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req postMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	message, err := h.students.PostMessage(c.Context(), userID, c.Params("qa_id"), req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Message posted successfully", "data": message})
}

// Live upgrades the connection and parks it in the thread's room until
// the client goes away.
func (h *CommunityHandler) Live() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := &ws.Client{QAID: conn.Params("qa_id"), Conn: conn}
		h.hub.Register(client)
		defer h.hub.Unregister(client)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				log.Printf("Q&A websocket closed for room %s: %v", client.QAID, err)
				return
			}
		}
	})
}
