package dto

import "github.com/fadilmartias/job-wingman/internal/model"

// ChatRequest accepts both field spellings seen in the wild: the frontend
// sends recruiterMessage, older clients send message.
type ChatRequest struct {
	RecruiterMessage string                 `json:"recruiterMessage"`
	Message          string                 `json:"message"`
	JobRequirements  *model.JobRequirements `json:"jobRequirements"`
}

func (r *ChatRequest) Text() string {
	if r.RecruiterMessage != "" {
		return r.RecruiterMessage
	}
	return r.Message
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ChatHistoryResponse struct {
	Messages []model.Message `json:"messages"`
}

type JobRequirementsResponse struct {
	Message         string                `json:"message"`
	JobRequirements model.JobRequirements `json:"jobRequirements"`
}
