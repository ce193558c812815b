package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/signup/internal/lib/job"
	"github.com/deppfellow/signup/internal/model"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AccountStore persists accounts. Create fills server-generated fields
// (CreatedAt) on the passed account.
type AccountStore interface {
	Create(ctx context.Context, account *model.Account) error
}

// TaskEnqueuer schedules background tasks. *asynq.Client satisfies it.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AccountService creates accounts. It implements controller.AddAccount.
type AccountService struct {
	store  AccountStore
	tasks  TaskEnqueuer
	logger *zerolog.Logger
	cost   int
}

// NewAccountService builds an AccountService. tasks may be nil, in which
// case no welcome email is scheduled.
func NewAccountService(store AccountStore, tasks TaskEnqueuer, logger *zerolog.Logger) *AccountService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &AccountService{
		store:  store,
		tasks:  tasks,
		logger: logger,
		cost:   bcrypt.DefaultCost,
	}
}

// Add hashes the password, stores the account and schedules the welcome
// email. Failing to schedule the email does not fail the call.
func (s *AccountService) Add(ctx context.Context, params model.AddAccountParams) (*model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.Account{
		ID:           uuid.NewString(),
		Name:         params.Name,
		Email:        strings.ToLower(strings.TrimSpace(params.Email)),
		PasswordHash: string(hash),
	}

	if err := s.store.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.enqueueWelcome(ctx, account)

	return account, nil
}

func (s *AccountService) enqueueWelcome(ctx context.Context, account *model.Account) {
	if s.tasks == nil {
		return
	}

	log := s.logger.With().Str("account_id", account.ID).Logger()

	task, err := job.NewWelcomeEmailTask(account.Email, account.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to build welcome email task")
		return
	}

	info, err := s.tasks.EnqueueContext(ctx, task)
	if err != nil {
		log.Error().Err(err).Msg("failed to enqueue welcome email task")
		return
	}

	log.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("welcome email task enqueued")
}
