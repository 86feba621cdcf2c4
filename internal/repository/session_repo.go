package repository

import (
	"context"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	UserID    int64      `gorm:"column:user_id;index;not null"`
	Username  string     `gorm:"column:username;size:80;not null"`
	Role      string     `gorm:"column:role;size:20;not null"`
	TokenHash string     `gorm:"column:token_hash;uniqueIndex;size:64;not null"`
	ExpiresAt time.Time  `gorm:"column:expires_at;not null"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (sessionModel) TableName() string { return "sessions" }

func toDomainSession(m sessionModel) *domain.Session {
	return &domain.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		Role:      domain.UserRole(m.Role),
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
		CreatedAt: m.CreatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	m := sessionModel{
		UserID:    s.UserID,
		Username:  s.Username,
		Role:      string(s.Role),
		TokenHash: s.TokenHash,
		ExpiresAt: s.ExpiresAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSession(m)
	return nil
}

func (r *SessionRepository) GetByHash(ctx context.Context, hash string) (*domain.Session, error) {
	var m sessionModel
	tx := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

func (r *SessionRepository) Revoke(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&sessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now()).Error
}

// DeleteStale removes sessions that are expired or revoked. Returns the
// number of rows deleted.
func (r *SessionRepository) DeleteStale(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at <= ? OR revoked_at IS NOT NULL", now).
		Delete(&sessionModel{})
	return tx.RowsAffected, tx.Error
}
