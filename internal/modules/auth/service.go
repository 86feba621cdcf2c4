package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"repairshop/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for authentication and sessions.
type Service struct {
	users    UserRepositoryInterface
	sessions SessionRepositoryInterface
	pepper   string
	ttl      time.Duration
}

type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

func NewService(users UserRepositoryInterface, sessions SessionRepositoryInterface, pepper string, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		pepper:   pepper,
		ttl:      ttl,
	}
}

// Login verifies the credentials and opens a new session. The raw token is
// returned to the caller once and only its hash is persisted.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	raw, hash, err := generateOpaqueToken(s.pepper)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: raw, ExpiresAt: session.ExpiresAt}, nil
}

// ValidateSession resolves a raw token to its active session record.
func (s *Service) ValidateSession(ctx context.Context, raw string) (*domain.Session, error) {
	session, err := s.sessions.GetByHash(ctx, hashTokenWithPepper(raw, s.pepper))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !session.Active(time.Now()) {
		return nil, ErrUnauthorized
	}
	return session, nil
}

// Logout revokes the session behind the raw token. Unknown tokens are not an
// error; logout is idempotent.
func (s *Service) Logout(ctx context.Context, raw string) error {
	session, err := s.sessions.GetByHash(ctx, hashTokenWithPepper(raw, s.pepper))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.sessions.Revoke(ctx, session.ID)
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// CreateUser registers a staff or admin account. Used by the bootstrap
// command and the admin-only user endpoint.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleStaff
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangePassword rotates the caller's own password after verifying the
// current one.
func (s *Service) ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

// CleanupSessions deletes expired and revoked sessions.
func (s *Service) CleanupSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteStale(ctx, time.Now())
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateOpaqueToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashTokenWithPepper(raw, pepper)
	return raw, hash, nil
}

func hashTokenWithPepper(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}
