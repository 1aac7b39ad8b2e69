package dto

import "github.com/fadilmartias/job-wingman/internal/model"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token           string                 `json:"token"`
	UserID          string                 `json:"userId"`
	JobRequirements *model.JobRequirements `json:"jobRequirements,omitempty"`
}
