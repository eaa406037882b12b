// Package identity provides the local identity-provider implementations:
// the anonymous handshake used by intake and a session over the operator
// accounts table used by the triage console.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/treyloggins4-create/tk/internal/domain"
	"github.com/treyloggins4-create/tk/internal/metrics"
	"github.com/treyloggins4-create/tk/internal/triage"
	"github.com/treyloggins4-create/tk/internal/util"
	apperrors "github.com/treyloggins4-create/tk/pkg/errors"
)

// Anonymous performs the pre-insert handshake for intake. The hosted
// deployment acquired an anonymous provider session here; locally it only
// verifies the storage connection is alive. Failures are soft.
type Anonymous struct {
	db *gorm.DB
}

// NewAnonymous creates the anonymous handshake over the database connection.
func NewAnonymous(db *gorm.DB) *Anonymous {
	return &Anonymous{db: db}
}

// SignInAnonymously implements intake.Identity.
func (a *Anonymous) SignInAnonymously(ctx context.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// LocalSession implements triage.Session over the operator accounts table.
type LocalSession struct {
	user *domain.User
}

// Login authenticates an operator and returns a session for the console.
// Staff or admin access is required.
func Login(ctx context.Context, db *gorm.DB, username, password string) (*LocalSession, error) {
	username = strings.TrimSpace(username)

	var user domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		metrics.RecordAuthAttempt(false)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeUnauthorized, "incorrect username or password")
		}
		return nil, err
	}

	if !util.CheckPasswordHash(strings.TrimSpace(password), user.HashedPassword) {
		metrics.RecordAuthAttempt(false)
		return nil, apperrors.New(apperrors.ErrCodeUnauthorized, "incorrect username or password")
	}
	if !user.IsActive {
		metrics.RecordAuthAttempt(false)
		return nil, apperrors.New(apperrors.ErrCodeUnauthorized, "user account is inactive")
	}
	if !user.IsStaff && !user.IsAdmin {
		metrics.RecordAuthAttempt(false)
		return nil, apperrors.New(apperrors.ErrCodeUnauthorized, "staff or admin access required")
	}

	now := time.Now()
	user.LastLogin = &now
	db.WithContext(ctx).Save(&user)

	metrics.RecordAuthAttempt(true)
	return &LocalSession{user: &user}, nil
}

// User returns the authenticated operator, or nil after logout.
func (s *LocalSession) User() *triage.Operator {
	if s.user == nil {
		return nil
	}
	return &triage.Operator{Email: s.user.Email}
}

// Loading implements triage.Session; a local session resolves synchronously.
func (s *LocalSession) Loading() bool {
	return false
}

// Logout terminates the session.
func (s *LocalSession) Logout(ctx context.Context) error {
	s.user = nil
	return nil
}
