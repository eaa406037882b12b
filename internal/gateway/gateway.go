// Package gateway defines the persistence contract for contact submissions.
// The intake form, the triage console and the HTTP service all talk to
// storage through this interface; internal/store provides the GORM-backed
// implementation.
package gateway

import (
	"context"

	"github.com/treyloggins4-create/tk/internal/domain"
)

// Gateway is the storage contract for contact submissions.
type Gateway interface {
	// Insert persists a new submission. Storage assigns the id and
	// created_at, and defaults status to "new" when it is omitted.
	Insert(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error)

	// ListAll returns every submission ordered by created_at descending.
	// There is no pagination; callers filter the full set themselves.
	ListAll(ctx context.Context) ([]domain.ContactSubmission, error)

	// UpdateStatus updates exactly the status field of the submission with
	// the given id. It fails with a not-found error when the id is unknown.
	UpdateStatus(ctx context.Context, id, status string) (*domain.ContactSubmission, error)
}
