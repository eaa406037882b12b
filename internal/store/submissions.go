package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/treyloggins4-create/tk/internal/domain"
	"github.com/treyloggins4-create/tk/internal/metrics"
	apperrors "github.com/treyloggins4-create/tk/pkg/errors"
)

// SubmissionStore is the GORM-backed implementation of the submission
// storage gateway.
type SubmissionStore struct {
	db *gorm.DB
}

// NewSubmissionStore creates a new submission store
func NewSubmissionStore(db *gorm.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// Insert persists a new submission. The BeforeCreate hook assigns the id,
// created_at and the default "new" status.
func (s *SubmissionStore) Insert(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	start := time.Now()
	err := s.db.WithContext(ctx).Create(sub).Error
	metrics.RecordDBQuery("insert", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact submission: %w", err)
	}
	return sub, nil
}

// ListAll returns every submission ordered by created_at descending.
func (s *SubmissionStore) ListAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	var subs []domain.ContactSubmission
	start := time.Now()
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	metrics.RecordDBQuery("list", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact submissions: %w", err)
	}
	return subs, nil
}

// UpdateStatus updates exactly the status field of one submission.
func (s *SubmissionStore) UpdateStatus(ctx context.Context, id, status string) (*domain.ContactSubmission, error) {
	if !domain.ValidStatus(status) {
		return nil, apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("invalid status %q", status))
	}

	var sub domain.ContactSubmission
	start := time.Now()
	err := s.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		metrics.RecordDBQuery("update_status", time.Since(start), err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("submission %s not found", id))
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}

	sub.Status = status
	err = s.db.WithContext(ctx).Model(&sub).Update("status", status).Error
	metrics.RecordDBQuery("update_status", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	metrics.RecordStatusUpdate(status)
	return &sub, nil
}
