package auth

import (
	"context"
	"time"

	"repairshop/internal/domain"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// SessionRepositoryInterface — storage for server-side sessions
type SessionRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByHash(ctx context.Context, hash string) (*domain.Session, error)
	Revoke(ctx context.Context, id int64) error
	DeleteStale(ctx context.Context, now time.Time) (int64, error)
}
