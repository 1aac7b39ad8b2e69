package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fadilmartias/job-wingman/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func newChatUsecase(completion *fakeCompletion) (*ChatUsecase, *fakeUserRepo, *fakeHistoryRepo) {
	userRepo := newFakeUserRepo()
	historyRepo := newFakeHistoryRepo()
	uc := NewChatUsecase(userRepo, historyRepo, completion, zap.NewNop())
	return uc, userRepo, historyRepo
}

func TestReplyAppendsExchange(t *testing.T) {
	completion := &fakeCompletion{reply: "Thanks for reaching out!"}
	uc, _, historyRepo := newChatUsecase(completion)
	userID := uuid.New()

	requirements := model.JobRequirements{Title: "Backend Engineer", SalaryRange: "100k-120k"}
	reply, err := uc.Reply(context.Background(), userID, "Hi, are you interested in a remote role?", requirements)
	require.NoError(t, err)
	assert.Equal(t, "Thanks for reaching out!", reply)

	stored := historyRepo.histories[userID]
	require.NotNil(t, stored)
	require.Len(t, stored.Messages, 2)
	assert.Equal(t, model.Message{Role: model.RoleUser, Content: "Hi, are you interested in a remote role?"}, stored.Messages[0])
	assert.Equal(t, model.Message{Role: model.RoleAssistant, Content: "Thanks for reaching out!"}, stored.Messages[1])
}

func TestReplyPromptShape(t *testing.T) {
	completion := &fakeCompletion{reply: "ok"}
	uc, _, historyRepo := newChatUsecase(completion)
	userID := uuid.New()

	prior := []model.Message{
		{Role: model.RoleUser, Content: "earlier recruiter message"},
		{Role: model.RoleAssistant, Content: "earlier reply"},
	}
	historyRepo.histories[userID] = &model.ChatHistory{
		UserID:   userID,
		Messages: datatypes.JSONSlice[model.Message](prior),
	}

	requirements := model.JobRequirements{Title: "Backend Engineer", VacationTime: "25 days"}
	_, err := uc.Reply(context.Background(), userID, "new message", requirements)
	require.NoError(t, err)

	// system prompt, prior history, then the new recruiter message
	require.Len(t, completion.prompt, 4)
	assert.Equal(t, model.RoleSystem, completion.prompt[0].Role)
	assert.Contains(t, completion.prompt[0].Content, "Backend Engineer")
	assert.Contains(t, completion.prompt[0].Content, "25 days")
	assert.Contains(t, completion.prompt[0].Content, "not specified")
	assert.Equal(t, prior[0], completion.prompt[1])
	assert.Equal(t, prior[1], completion.prompt[2])
	assert.Equal(t, model.Message{Role: model.RoleUser, Content: "new message"}, completion.prompt[3])
}

func TestReplyRetentionBound(t *testing.T) {
	completion := &fakeCompletion{reply: "latest reply"}
	uc, _, historyRepo := newChatUsecase(completion)
	userID := uuid.New()

	var seeded []model.Message
	for i := 0; i < maxStoredMessages; i++ {
		seeded = append(seeded, model.Message{Role: model.RoleUser, Content: fmt.Sprintf("msg-%d", i)})
	}
	historyRepo.histories[userID] = &model.ChatHistory{
		UserID:   userID,
		Messages: datatypes.JSONSlice[model.Message](seeded),
	}

	_, err := uc.Reply(context.Background(), userID, "latest recruiter message", model.JobRequirements{})
	require.NoError(t, err)

	stored := historyRepo.histories[userID]
	require.Len(t, stored.Messages, maxStoredMessages)
	// the two oldest entries were discarded, the rest keep their order
	assert.Equal(t, "msg-2", stored.Messages[0].Content)
	assert.Equal(t, "latest recruiter message", stored.Messages[maxStoredMessages-2].Content)
	assert.Equal(t, "latest reply", stored.Messages[maxStoredMessages-1].Content)
}

func TestReplyProviderFailureLeavesHistoryUntouched(t *testing.T) {
	completion := &fakeCompletion{err: errors.New("provider exploded")}
	uc, _, historyRepo := newChatUsecase(completion)
	userID := uuid.New()

	historyRepo.histories[userID] = &model.ChatHistory{
		UserID:   userID,
		Messages: datatypes.JSONSlice[model.Message]{{Role: model.RoleUser, Content: "kept"}},
	}

	_, err := uc.Reply(context.Background(), userID, "boom", model.JobRequirements{})
	require.ErrorIs(t, err, ErrCompletionFailed)

	stored := historyRepo.histories[userID]
	require.Len(t, stored.Messages, 1)
	assert.Equal(t, "kept", stored.Messages[0].Content)
	assert.Zero(t, historyRepo.saves)
}

func TestReplyAcceptsEmptyMessage(t *testing.T) {
	completion := &fakeCompletion{reply: "still replies"}
	uc, _, historyRepo := newChatUsecase(completion)
	userID := uuid.New()

	reply, err := uc.Reply(context.Background(), userID, "   ", model.JobRequirements{})
	require.NoError(t, err)
	assert.Equal(t, "still replies", reply)
	assert.Len(t, historyRepo.histories[userID].Messages, 2)
}

func TestHistoryEmptyWithoutRecord(t *testing.T) {
	uc, _, historyRepo := newChatUsecase(&fakeCompletion{})
	userID := uuid.New()

	messages, err := uc.History(userID)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
	// reads never create a record
	assert.Empty(t, historyRepo.histories)
}

func TestSaveJobRequirementsReplacesWholeObject(t *testing.T) {
	uc, userRepo, _ := newChatUsecase(&fakeCompletion{})
	user := &model.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, userRepo.Create(user))

	_, err := uc.SaveJobRequirements(user.ID, model.JobRequirements{Title: "A"})
	require.NoError(t, err)

	_, err = uc.SaveJobRequirements(user.ID, model.JobRequirements{SalaryRange: "B"})
	require.NoError(t, err)

	stored, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.JobRequirements)
	requirements := stored.JobRequirements.Data()
	assert.Empty(t, requirements.Title)
	assert.Equal(t, "B", requirements.SalaryRange)
}

func TestSaveJobRequirementsUnknownUser(t *testing.T) {
	uc, _, _ := newChatUsecase(&fakeCompletion{})

	_, err := uc.SaveJobRequirements(uuid.New(), model.JobRequirements{Title: "A"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
