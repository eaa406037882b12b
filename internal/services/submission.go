package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"goa.design/goa/v3/security"
	"gorm.io/gorm"

	"github.com/treyloggins4-create/tk/gen/submission"
	"github.com/treyloggins4-create/tk/internal/domain"
	"github.com/treyloggins4-create/tk/internal/gateway"
	"github.com/treyloggins4-create/tk/internal/metrics"
	"github.com/treyloggins4-create/tk/internal/triage"
	"github.com/treyloggins4-create/tk/internal/util"
	apperrors "github.com/treyloggins4-create/tk/pkg/errors"
)

// SubmissionService implements the submission service
type SubmissionService struct {
	db *gorm.DB
	gw gateway.Gateway
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(db *gorm.DB, gw gateway.Gateway) *SubmissionService {
	return &SubmissionService{db: db, gw: gw}
}

// JWTAuth implements the authorization logic for the JWT security scheme
func (s *SubmissionService) JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error) {
	// Validate JWT token and extract claims
	claims, err := util.ValidateToken(token)
	if err != nil {
		return nil, submission.MakeUnauthorized(fmt.Errorf("invalid or expired token"))
	}

	// Get user from database
	var user domain.User
	if err := s.db.Where("username = ?", claims.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, submission.MakeUnauthorized(fmt.Errorf("user not found"))
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Check if user is active
	if !user.IsActive {
		return nil, submission.MakeUnauthorized(fmt.Errorf("user account is inactive"))
	}

	// Check scopes if required
	if schema != nil && len(schema.RequiredScopes) > 0 {
		hasScope := false
		for _, requiredScope := range schema.RequiredScopes {
			if requiredScope == "admin" && user.IsAdmin {
				hasScope = true
				break
			}
			if requiredScope == "staff" && (user.IsStaff || user.IsAdmin) {
				hasScope = true
				break
			}
		}
		if !hasScope {
			return nil, submission.MakeUnauthorized(fmt.Errorf("insufficient permissions"))
		}
	}

	// Add user to context
	ctx = context.WithValue(ctx, "user", &user)
	return ctx, nil
}

// Submit implements the submit method
func (s *SubmissionService) Submit(ctx context.Context, p *submission.SubmitPayload) (*submission.Submitresult, error) {
	log.Printf("[SUBMISSION] Submit request: name=%s, email=%s", strings.TrimSpace(p.Name), strings.TrimSpace(p.Email))

	// Validate selected services
	services := make([]string, 0, len(p.Services))
	for _, svc := range p.Services {
		if svc = strings.TrimSpace(svc); svc != "" {
			services = append(services, svc)
		}
	}
	if len(services) == 0 {
		log.Printf("[SUBMISSION] Submit failed: no services selected")
		return nil, submission.MakeBadRequest(fmt.Errorf("at least one service must be selected"))
	}

	// Status is omitted; storage defaults it to "new"
	sub := &domain.ContactSubmission{
		Name:    strings.TrimSpace(p.Name),
		Email:   strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:   strings.TrimSpace(p.Phone),
		Service: domain.JoinServices(services),
	}
	if p.Message != nil {
		sub.Message = strings.TrimSpace(*p.Message)
	}

	created, err := s.gw.Insert(ctx, sub)
	if err != nil {
		log.Printf("[SUBMISSION] Submit failed: database error: %v", err)
		return nil, fmt.Errorf("failed to save contact submission: %w", err)
	}

	log.Printf("[SUBMISSION] Submit successful: id=%s, name=%s, email=%s", created.ID, created.Name, created.Email)
	metrics.RecordContactSubmission()

	return &submission.Submitresult{
		ID:      created.ID,
		Message: "Thank you! Your message has been sent successfully. We'll get back to you within 24 hours.",
	}, nil
}

// List returns submissions filtered by search term and status (Staff/Admin only)
func (s *SubmissionService) List(ctx context.Context, p *submission.ListSubmissionsPayload) ([]*submission.Submissionresult, error) {
	search := ""
	if p.Search != nil {
		search = *p.Search
	}
	log.Printf("[SUBMISSION] List request: search=%q, status=%s", search, p.Status)

	all, err := s.gw.ListAll(ctx)
	if err != nil {
		log.Printf("[SUBMISSION] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch contact submissions: %w", err)
	}

	filtered := triage.Filter(all, search, p.Status)

	results := make([]*submission.Submissionresult, len(filtered))
	for i := range filtered {
		results[i] = convertSubmissionToResult(&filtered[i])
	}

	log.Printf("[SUBMISSION] List successful: returned %d of %d submissions", len(results), len(all))
	return results, nil
}

// UpdateStatus implements the update_status method (Staff/Admin only)
func (s *SubmissionService) UpdateStatus(ctx context.Context, p *submission.UpdateStatusPayload) (*submission.Submissionresult, error) {
	log.Printf("[SUBMISSION] UpdateStatus request: id=%s, status=%s", p.ID, p.Status)

	updated, err := s.gw.UpdateStatus(ctx, p.ID, p.Status)
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.Printf("[SUBMISSION] UpdateStatus failed: submission id=%s not found", p.ID)
			return nil, submission.MakeNotFound(fmt.Errorf("submission not found"))
		}
		if apperrors.IsValidation(err) {
			log.Printf("[SUBMISSION] UpdateStatus failed: invalid status %q", p.Status)
			return nil, submission.MakeBadRequest(err)
		}
		log.Printf("[SUBMISSION] UpdateStatus failed: database error: %v", err)
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	log.Printf("[SUBMISSION] UpdateStatus successful: id=%s, status=%s", updated.ID, updated.Status)
	return convertSubmissionToResult(updated), nil
}

// Summary returns triage counts across all submissions (Staff/Admin only)
func (s *SubmissionService) Summary(ctx context.Context, p *submission.SummaryPayload) (*submission.Summaryresult, error) {
	all, err := s.gw.ListAll(ctx)
	if err != nil {
		log.Printf("[SUBMISSION] Summary failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch contact submissions: %w", err)
	}

	sum := triage.Summarize(all)
	log.Printf("[SUBMISSION] Summary successful: total=%d, new=%d, active=%d, completed=%d", sum.Total, sum.New, sum.Active, sum.Completed)

	return &submission.Summaryresult{
		Total:     sum.Total,
		New:       sum.New,
		Active:    sum.Active,
		Completed: sum.Completed,
	}, nil
}

// Helper function to convert a ContactSubmission model to a Submissionresult
func convertSubmissionToResult(sub *domain.ContactSubmission) *submission.Submissionresult {
	result := &submission.Submissionresult{
		ID:        sub.ID,
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Service:   sub.Service,
		Status:    sub.Status,
		CreatedAt: sub.CreatedAt.Format(time.RFC3339),
	}

	if sub.Message != "" {
		result.Message = stringPtr(sub.Message)
	}
	if sub.UpdatedAt != nil {
		result.UpdatedAt = stringPtr(sub.UpdatedAt.Format(time.RFC3339))
	}

	return result
}
