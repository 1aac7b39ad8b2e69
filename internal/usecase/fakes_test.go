package usecase

import (
	"context"
	"errors"

	"github.com/fadilmartias/job-wingman/internal/model"
	"github.com/google/uuid"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return errors.New("duplicate username")
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeHistoryRepo struct {
	histories map[uuid.UUID]*model.ChatHistory
	saveErr   error
	saves     int
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{histories: make(map[uuid.UUID]*model.ChatHistory)}
}

func (r *fakeHistoryRepo) FindByUserID(userID uuid.UUID) (*model.ChatHistory, error) {
	h, ok := r.histories[userID]
	if !ok {
		return nil, nil
	}
	copied := *h
	copied.Messages = append(copied.Messages[:0:0], h.Messages...)
	return &copied, nil
}

func (r *fakeHistoryRepo) Save(history *model.ChatHistory) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}
	copied := *history
	copied.Messages = append(copied.Messages[:0:0], history.Messages...)
	r.histories[history.UserID] = &copied
	r.saves++
	return nil
}

type fakeCompletion struct {
	reply  string
	err    error
	prompt []model.Message
}

func (f *fakeCompletion) Complete(ctx context.Context, messages []model.Message) (string, error) {
	f.prompt = append(f.prompt[:0:0], messages...)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
