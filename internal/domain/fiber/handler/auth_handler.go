package handler

import (
	"errors"

	"github.com/fadilmartias/job-wingman/internal/dto"
	"github.com/fadilmartias/job-wingman/internal/usecase"
	"github.com/fadilmartias/job-wingman/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	uc     *usecase.AuthUsecase
	logger *zap.Logger
}

func NewAuthHandler(uc *usecase.AuthUsecase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.Username == "" || req.Password == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Username and password are required",
		})
	}

	user, err := h.uc.Register(req.Username, req.Password)
	if errors.Is(err, usecase.ErrUsernameTaken) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "Username already taken",
		})
	}
	if err != nil {
		h.logger.Error("registration failed", zap.String("username", req.Username), zap.Error(err))
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error",
		}, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  user.ID.String(),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	result, err := h.uc.Login(req.Username, req.Password)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid username or password",
		})
	}
	if err != nil {
		h.logger.Error("login failed", zap.String("username", req.Username), zap.Error(err))
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error",
		}, err)
	}

	return c.JSON(dto.LoginResponse{
		Token:           result.Token,
		UserID:          result.UserID.String(),
		JobRequirements: result.JobRequirements,
	})
}
