package handler

import (
	"errors"

	"github.com/fadilmartias/job-wingman/internal/dto"
	"github.com/fadilmartias/job-wingman/internal/middleware"
	"github.com/fadilmartias/job-wingman/internal/model"
	"github.com/fadilmartias/job-wingman/internal/usecase"
	"github.com/fadilmartias/job-wingman/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	uc     *usecase.ChatUsecase
	logger *zap.Logger
}

func NewChatHandler(uc *usecase.ChatUsecase, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

func (h *ChatHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/chat-history", auth, h.ChatHistory)
	// /chat is kept as an alias of the canonical /api/chat route.
	app.Post("/chat", auth, h.Chat)
	app.Post("/api/chat", auth, h.Chat)
	app.Post("/api/job-requirements", auth, h.SaveJobRequirements)
}

func (h *ChatHandler) ChatHistory(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(uuid.UUID)

	messages, err := h.uc.History(userID)
	if err != nil {
		h.logger.Error("failed to fetch chat history", zap.String("user_id", userID.String()), zap.Error(err))
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error",
		}, err)
	}

	return c.JSON(dto.ChatHistoryResponse{Messages: messages})
}

func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(uuid.UUID)

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	// The client is the source of truth for the requirements used in prompt
	// construction; persisted requirements are only returned at login.
	var requirements model.JobRequirements
	if req.JobRequirements != nil {
		requirements = *req.JobRequirements
	}

	reply, err := h.uc.Reply(c.UserContext(), userID, req.Text(), requirements)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to process message",
		}, err)
	}

	return c.JSON(dto.ChatResponse{Response: reply})
}

func (h *ChatHandler) SaveJobRequirements(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(uuid.UUID)

	var req model.JobRequirements
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	saved, err := h.uc.SaveJobRequirements(userID, req)
	if errors.Is(err, usecase.ErrUserNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "User not found",
		})
	}
	if err != nil {
		h.logger.Error("failed to save job requirements", zap.String("user_id", userID.String()), zap.Error(err))
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error",
		}, err)
	}

	return c.JSON(dto.JobRequirementsResponse{
		Message:         "Job requirements saved successfully",
		JobRequirements: *saved,
	})
}
