package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/signup/internal/lib/job"
	"github.com/deppfellow/signup/internal/model"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type storeStub struct {
	created []*model.Account
	err     error
}

func (s *storeStub) Create(_ context.Context, account *model.Account) error {
	if s.err != nil {
		return s.err
	}
	account.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s.created = append(s.created, account)
	return nil
}

type enqueuerMock struct {
	mock.Mock
}

func (m *enqueuerMock) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func newTestAccountService(store AccountStore, tasks TaskEnqueuer) *AccountService {
	s := NewAccountService(store, tasks, nil)
	s.cost = bcrypt.MinCost
	return s
}

func validParams() model.AddAccountParams {
	return model.AddAccountParams{Name: "Ann", Email: " Ann@Example.com ", Password: "s3cret"}
}

func TestAccountService_Add(t *testing.T) {
	store := &storeStub{}
	tasks := &enqueuerMock{}
	tasks.On("EnqueueContext", mock.Anything, mock.Anything).
		Return(&asynq.TaskInfo{ID: "t-1", Queue: "default"}, nil).Once()

	account, err := newTestAccountService(store, tasks).Add(context.Background(), validParams())
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	assert.Same(t, store.created[0], account)

	_, err = uuid.Parse(account.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ann", account.Name)
	assert.Equal(t, "ann@example.com", account.Email)
	assert.False(t, account.CreatedAt.IsZero())
	assert.NotEqual(t, "s3cret", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("s3cret")))

	tasks.AssertExpectations(t)
	task := tasks.Calls[0].Arguments.Get(1).(*asynq.Task)
	assert.Equal(t, job.TaskWelcome, task.Type())

	var payload job.WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, job.WelcomeEmailPayload{To: "ann@example.com", Name: "Ann"}, payload)
}

func TestAccountService_Add_HashNeverSerialized(t *testing.T) {
	account, err := newTestAccountService(&storeStub{}, nil).Add(context.Background(), validParams())
	require.NoError(t, err)

	body, err := json.Marshal(account)
	require.NoError(t, err)

	assert.NotContains(t, string(body), account.PasswordHash)
	assert.NotContains(t, string(body), "password")
}

func TestAccountService_Add_StoreFailure(t *testing.T) {
	tasks := &enqueuerMock{}
	store := &storeStub{err: model.ErrAccountExists}

	account, err := newTestAccountService(store, tasks).Add(context.Background(), validParams())

	assert.Nil(t, account)
	assert.ErrorIs(t, err, model.ErrAccountExists)
	tasks.AssertNotCalled(t, "EnqueueContext", mock.Anything, mock.Anything)
}

func TestAccountService_Add_EnqueueFailureIsNotFatal(t *testing.T) {
	store := &storeStub{}
	tasks := &enqueuerMock{}
	tasks.On("EnqueueContext", mock.Anything, mock.Anything).
		Return(nil, errors.New("redis: connection refused")).Once()

	account, err := newTestAccountService(store, tasks).Add(context.Background(), validParams())

	require.NoError(t, err)
	assert.NotNil(t, account)
	assert.Len(t, store.created, 1)
	tasks.AssertExpectations(t)
}

func TestAccountService_Add_PasswordTooLong(t *testing.T) {
	store := &storeStub{}
	params := validParams()
	params.Password = string(make([]byte, 73))

	account, err := newTestAccountService(store, nil).Add(context.Background(), params)

	assert.Nil(t, account)
	assert.ErrorContains(t, err, "failed to hash password")
	assert.Empty(t, store.created)
}
