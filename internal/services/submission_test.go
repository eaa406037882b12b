package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goa "goa.design/goa/v3/pkg"

	"github.com/treyloggins4-create/tk/gen/submission"
	"github.com/treyloggins4-create/tk/internal/domain"
	apperrors "github.com/treyloggins4-create/tk/pkg/errors"
)

type fakeGateway struct {
	subs      []domain.ContactSubmission
	inserted  []*domain.ContactSubmission
	insertErr error
	listErr   error
	updateErr error
}

func (f *fakeGateway) Insert(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	sub.ID = "stored-id"
	sub.Status = domain.StatusNew
	sub.CreatedAt = time.Now()
	f.inserted = append(f.inserted, sub)
	return sub, nil
}

func (f *fakeGateway) ListAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.subs, nil
}

func (f *fakeGateway) UpdateStatus(ctx context.Context, id, status string) (*domain.ContactSubmission, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.subs {
		if f.subs[i].ID == id {
			f.subs[i].Status = status
			return &f.subs[i], nil
		}
	}
	return nil, apperrors.New(apperrors.ErrCodeNotFound, "submission not found")
}

func stagedSubmissions() []domain.ContactSubmission {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.ContactSubmission{
		{ID: "a", Name: "Alice", Email: "alice@example.com", Phone: "555-0101", Service: "power-washing", Status: domain.StatusNew, CreatedAt: created},
		{ID: "b", Name: "Bob", Email: "bob@example.com", Phone: "555-0202", Service: "sealing", Status: domain.StatusContacted, CreatedAt: created},
		{ID: "c", Name: "Carol", Email: "carol@example.com", Phone: "555-0303", Service: "junk-removal", Status: domain.StatusQuoted, CreatedAt: created},
	}
}

func goaErrorName(t *testing.T, err error) string {
	t.Helper()
	var serr *goa.ServiceError
	require.ErrorAs(t, err, &serr)
	return serr.GoaErrorName()
}

func TestSubmitNormalizesInput(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewSubmissionService(nil, gw)

	msg := " Back patio. "
	res, err := svc.Submit(context.Background(), &submission.SubmitPayload{
		Name:     "  Alice Johnson ",
		Email:    " Alice@Example.COM ",
		Phone:    " 555-0101 ",
		Services: []string{"power-washing", " sealing "},
		Message:  &msg,
	})

	require.NoError(t, err)
	assert.Equal(t, "stored-id", res.ID)
	assert.NotEmpty(t, res.Message)

	require.Len(t, gw.inserted, 1)
	sub := gw.inserted[0]
	assert.Equal(t, "Alice Johnson", sub.Name)
	assert.Equal(t, "alice@example.com", sub.Email)
	assert.Equal(t, "555-0101", sub.Phone)
	assert.Equal(t, "power-washing, sealing", sub.Service)
	assert.Equal(t, "Back patio.", sub.Message)
}

func TestSubmitRejectsEmptyServices(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewSubmissionService(nil, gw)

	_, err := svc.Submit(context.Background(), &submission.SubmitPayload{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "555-0101",
		Services: []string{"  ", ""},
	})

	require.Error(t, err)
	assert.Equal(t, "bad_request", goaErrorName(t, err))
	assert.Empty(t, gw.inserted)
}

func TestListAppliesSearchAndStatus(t *testing.T) {
	gw := &fakeGateway{subs: stagedSubmissions()}
	svc := NewSubmissionService(nil, gw)

	res, err := svc.List(context.Background(), &submission.ListSubmissionsPayload{Status: domain.StatusAll})
	require.NoError(t, err)
	assert.Len(t, res, 3)

	search := "bob"
	res, err = svc.List(context.Background(), &submission.ListSubmissionsPayload{Search: &search, Status: domain.StatusAll})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "b", res[0].ID)
	assert.Equal(t, domain.StatusContacted, res[0].Status)

	res, err = svc.List(context.Background(), &submission.ListSubmissionsPayload{Status: domain.StatusQuoted})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "c", res[0].ID)
}

func TestUpdateStatusMapsNotFound(t *testing.T) {
	gw := &fakeGateway{subs: stagedSubmissions()}
	svc := NewSubmissionService(nil, gw)

	_, err := svc.UpdateStatus(context.Background(), &submission.UpdateStatusPayload{ID: "missing", Status: domain.StatusContacted})

	require.Error(t, err)
	assert.Equal(t, "not_found", goaErrorName(t, err))
}

func TestUpdateStatusMapsValidation(t *testing.T) {
	gw := &fakeGateway{updateErr: apperrors.New(apperrors.ErrCodeValidation, "invalid status")}
	svc := NewSubmissionService(nil, gw)

	_, err := svc.UpdateStatus(context.Background(), &submission.UpdateStatusPayload{ID: "a", Status: "archived"})

	require.Error(t, err)
	assert.Equal(t, "bad_request", goaErrorName(t, err))
}

func TestUpdateStatusSuccess(t *testing.T) {
	gw := &fakeGateway{subs: stagedSubmissions()}
	svc := NewSubmissionService(nil, gw)

	res, err := svc.UpdateStatus(context.Background(), &submission.UpdateStatusPayload{ID: "a", Status: domain.StatusCompleted})

	require.NoError(t, err)
	assert.Equal(t, "a", res.ID)
	assert.Equal(t, domain.StatusCompleted, res.Status)
}

func TestSummaryCounts(t *testing.T) {
	gw := &fakeGateway{subs: stagedSubmissions()}
	svc := NewSubmissionService(nil, gw)

	res, err := svc.Summary(context.Background(), &submission.SummaryPayload{})

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.New)
	assert.Equal(t, 2, res.Active)
	assert.Equal(t, 0, res.Completed)
}

func TestListPropagatesGatewayError(t *testing.T) {
	gw := &fakeGateway{listErr: errors.New("connection reset")}
	svc := NewSubmissionService(nil, gw)

	_, err := svc.List(context.Background(), &submission.ListSubmissionsPayload{Status: domain.StatusAll})
	assert.Error(t, err)
}
