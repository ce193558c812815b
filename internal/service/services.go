package service

import (
	"github.com/deppfellow/signup/internal/lib/job"
	"github.com/deppfellow/signup/internal/repository"
	"github.com/deppfellow/signup/internal/server"
)

type Services struct {
	Account *AccountService
	Job     *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var tasks TaskEnqueuer
	if s.Job != nil {
		tasks = s.Job.Client
	}

	return &Services{
		Account: NewAccountService(repos.Account, tasks, s.Logger),
		Job:     s.Job,
	}, nil
}
