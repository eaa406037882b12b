package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treyloggins4-create/tk/internal/domain"
	apperrors "github.com/treyloggins4-create/tk/pkg/errors"
)

type fakeGateway struct {
	inserted  []*domain.ContactSubmission
	insertErr error
	onInsert  func()
}

func (f *fakeGateway) Insert(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	if f.onInsert != nil {
		f.onInsert()
	}
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if sub.ID == "" {
		sub.ID = "stored-id"
	}
	f.inserted = append(f.inserted, sub)
	return sub, nil
}

func (f *fakeGateway) ListAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	return nil, nil
}

func (f *fakeGateway) UpdateStatus(ctx context.Context, id, status string) (*domain.ContactSubmission, error) {
	return nil, nil
}

type fakeIdentity struct {
	called bool
	err    error
}

func (f *fakeIdentity) SignInAnonymously(ctx context.Context) error {
	f.called = true
	return f.err
}

func fillValid(f *Form) {
	f.Name = "  Alice Johnson "
	f.Email = " Alice@Example.COM "
	f.Phone = " 555-0101 "
	f.Message = " Back patio and driveway. "
	f.ToggleService("power-washing")
	f.ToggleService("sealing")
}

func TestFormToggleService(t *testing.T) {
	form := NewForm(&fakeGateway{}, nil)

	form.ToggleService("power-washing")
	form.ToggleService("sealing")
	assert.Equal(t, []string{"power-washing", "sealing"}, form.SelectedServices())

	// toggling again removes, later additions keep selection order
	form.ToggleService("power-washing")
	assert.Equal(t, []string{"sealing"}, form.SelectedServices())
	form.ToggleService("leaf-cleanup")
	assert.Equal(t, []string{"sealing", "leaf-cleanup"}, form.SelectedServices())
}

func TestFormSubmitRequiresService(t *testing.T) {
	gw := &fakeGateway{}
	form := NewForm(gw, nil)
	form.Name = "Alice"
	form.Email = "alice@example.com"
	form.Phone = "555-0101"

	err := form.Submit(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	// nothing touches storage before the services check passes
	assert.Empty(t, gw.inserted)
	assert.Equal(t, NoticeError, form.Notice().Kind)
	assert.Equal(t, "Please select at least one service.", form.Notice().Message)
}

func TestFormSubmitRequiresFields(t *testing.T) {
	gw := &fakeGateway{}
	form := NewForm(gw, nil)
	form.ToggleService("power-washing")
	form.Name = "Alice"
	form.Phone = "   "

	err := form.Submit(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, gw.inserted)
	assert.Equal(t, "Please fill in all required fields.", form.Notice().Message)
}

func TestFormSubmitSuccess(t *testing.T) {
	gw := &fakeGateway{}
	identity := &fakeIdentity{}
	form := NewForm(gw, identity)
	fillValid(form)

	err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.True(t, identity.called)
	require.Len(t, gw.inserted, 1)

	sub := gw.inserted[0]
	assert.Equal(t, "Alice Johnson", sub.Name)
	assert.Equal(t, "alice@example.com", sub.Email)
	assert.Equal(t, "555-0101", sub.Phone)
	assert.Equal(t, "power-washing, sealing", sub.Service)
	assert.Equal(t, "Back patio and driveway.", sub.Message)
	// status is omitted so storage defaults it
	assert.Empty(t, sub.Status)

	// a successful submit clears the draft
	assert.Empty(t, form.Name)
	assert.Empty(t, form.Email)
	assert.Empty(t, form.Phone)
	assert.Empty(t, form.Message)
	assert.Empty(t, form.SelectedServices())
	assert.Equal(t, NoticeSuccess, form.Notice().Kind)
}

func TestFormSubmitFailurePreservesDraft(t *testing.T) {
	gw := &fakeGateway{insertErr: errors.New("row level security policy violated")}
	form := NewForm(gw, nil)
	fillValid(form)

	err := form.Submit(context.Background())

	require.Error(t, err)
	// the draft survives so the visitor can retry
	assert.Equal(t, "  Alice Johnson ", form.Name)
	assert.Equal(t, []string{"power-washing", "sealing"}, form.SelectedServices())
	assert.Equal(t, NoticeError, form.Notice().Kind)
	assert.Equal(t, "row level security policy violated", form.Notice().Message)
}

func TestFormSubmitIdentityFailureIsSoft(t *testing.T) {
	gw := &fakeGateway{}
	identity := &fakeIdentity{err: errors.New("identity provider down")}
	form := NewForm(gw, identity)
	fillValid(form)

	err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Len(t, gw.inserted, 1)
}

func TestFormSubmitSingleInFlight(t *testing.T) {
	gw := &fakeGateway{}
	form := NewForm(gw, nil)
	fillValid(form)

	var reentrant error
	gw.onInsert = func() {
		reentrant = form.Submit(context.Background())
	}

	require.NoError(t, form.Submit(context.Background()))
	assert.ErrorIs(t, reentrant, ErrSubmitInFlight)
	assert.Len(t, gw.inserted, 1)
}

func TestFormSubmitWithoutIdentity(t *testing.T) {
	gw := &fakeGateway{}
	form := NewForm(gw, nil)
	fillValid(form)

	require.NoError(t, form.Submit(context.Background()))
	assert.Len(t, gw.inserted, 1)
}
