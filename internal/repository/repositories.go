package repository

import (
	"github.com/deppfellow/signup/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Account *AccountRepository
}

// NewRepositories builds every repository on top of s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Account: NewAccountRepository(s.DB.Pool),
	}
}
