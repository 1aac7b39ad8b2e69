package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fadilmartias/job-wingman/internal/model"
	"github.com/fadilmartias/job-wingman/internal/repository"
	"github.com/fadilmartias/job-wingman/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCompletionFailed = errors.New("failed to process message")
)

// maxStoredMessages bounds the persisted transcript. After each append only
// the most recent entries are kept; older ones are discarded, not archived.
const maxStoredMessages = 20

const systemPromptTemplate = `You are JobReplyAI, a job seeker's assistant. Recruiters send the job seeker messages about open roles, and you draft the reply that the job seeker sends back.

The job seeker is looking for:
- Desired job title: %s
- Salary range: %s
- Work arrangement: %s
- Minimum vacation time: %s
- Additional instructions: %s

Response strategy: if the role fits these requirements, express interest and ask for the next step. If details are missing, ask about them before committing. If the role clearly does not fit, decline politely and state which requirement it misses. Keep replies professional, warm and concise, and write in the first person as the job seeker. Never reveal that the reply is machine-generated.`

type ChatUsecase struct {
	userRepo    repository.UserRepositoryInterface
	historyRepo repository.ChatHistoryRepositoryInterface
	completion  service.CompletionServiceInterface
	logger      *zap.Logger

	// userLocks serializes the load-append-save sequence per user so two
	// simultaneous requests from the same user cannot lose an append.
	userLocks sync.Map
}

func NewChatUsecase(userRepo repository.UserRepositoryInterface, historyRepo repository.ChatHistoryRepositoryInterface, completion service.CompletionServiceInterface, logger *zap.Logger) *ChatUsecase {
	return &ChatUsecase{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		completion:  completion,
		logger:      logger,
	}
}

func (uc *ChatUsecase) lockUser(userID uuid.UUID) *sync.Mutex {
	lock, _ := uc.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// History returns the user's stored transcript, or an empty sequence when no
// record exists yet. Reading never creates a record.
func (uc *ChatUsecase) History(userID uuid.UUID) ([]model.Message, error) {
	history, err := uc.historyRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return []model.Message{}, nil
	}
	return history.Messages, nil
}

// Reply drafts a reply to a recruiter message and appends the exchange to the
// stored transcript. The caller-supplied requirements steer the prompt; the
// persisted ones are not consulted here. Empty or whitespace-only recruiter
// messages are accepted.
func (uc *ChatUsecase) Reply(ctx context.Context, userID uuid.UUID, recruiterMessage string, requirements model.JobRequirements) (string, error) {
	lock := uc.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	history, err := uc.historyRepo.FindByUserID(userID)
	if err != nil {
		return "", err
	}
	if history == nil {
		history = &model.ChatHistory{
			UserID:   userID,
			Messages: datatypes.JSONSlice[model.Message]{},
		}
	}

	prompt := make([]model.Message, 0, len(history.Messages)+2)
	prompt = append(prompt, model.Message{Role: model.RoleSystem, Content: buildSystemPrompt(requirements)})
	prompt = append(prompt, history.Messages...)
	prompt = append(prompt, model.Message{Role: model.RoleUser, Content: recruiterMessage})

	reply, err := uc.completion.Complete(ctx, prompt)
	if err != nil {
		// Provider detail stays server-side; the stored history is untouched.
		uc.logger.Error("completion provider call failed",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return "", ErrCompletionFailed
	}

	history.Messages = append(history.Messages,
		model.Message{Role: model.RoleUser, Content: recruiterMessage},
		model.Message{Role: model.RoleAssistant, Content: reply},
	)
	if len(history.Messages) > maxStoredMessages {
		history.Messages = history.Messages[len(history.Messages)-maxStoredMessages:]
	}

	if err := uc.historyRepo.Save(history); err != nil {
		return "", err
	}
	return reply, nil
}

// SaveJobRequirements overwrites the user's stored requirements wholesale.
// Omitted fields become absent; there is no field-level merge.
func (uc *ChatUsecase) SaveJobRequirements(userID uuid.UUID, requirements model.JobRequirements) (*model.JobRequirements, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stored := datatypes.NewJSONType(requirements)
	user.JobRequirements = &stored
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return &requirements, nil
}

func buildSystemPrompt(requirements model.JobRequirements) string {
	return fmt.Sprintf(systemPromptTemplate,
		orUnspecified(requirements.Title),
		orUnspecified(requirements.SalaryRange),
		orUnspecified(requirements.WorkArrangement),
		orUnspecified(requirements.VacationTime),
		orUnspecified(requirements.AdditionalInstructions),
	)
}

func orUnspecified(value string) string {
	if value == "" {
		return "not specified"
	}
	return value
}
