package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treyloggins4-create/tk/internal/domain"
)

// fakeGateway records the order of storage calls so tests can assert the
// update-then-refetch sequencing.
type fakeGateway struct {
	subs      []domain.ContactSubmission
	calls     []string
	listErr   error
	updateErr error
}

func (f *fakeGateway) Insert(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	f.calls = append(f.calls, "insert")
	f.subs = append(f.subs, *sub)
	return sub, nil
}

func (f *fakeGateway) ListAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.ContactSubmission, len(f.subs))
	copy(out, f.subs)
	return out, nil
}

func (f *fakeGateway) UpdateStatus(ctx context.Context, id, status string) (*domain.ContactSubmission, error) {
	f.calls = append(f.calls, "update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.subs {
		if f.subs[i].ID == id {
			f.subs[i].Status = status
			return &f.subs[i], nil
		}
	}
	return nil, errors.New("not found")
}

type fakeSession struct {
	user      *Operator
	loggedOut bool
}

func (s *fakeSession) User() *Operator { return s.user }
func (s *fakeSession) Loading() bool   { return false }
func (s *fakeSession) Logout(ctx context.Context) error {
	s.user = nil
	s.loggedOut = true
	return nil
}

func newTestConsole(subs []domain.ContactSubmission) (*Console, *fakeGateway, *fakeSession) {
	gw := &fakeGateway{subs: subs}
	session := &fakeSession{user: &Operator{Email: "staff@tkprimeservices.com"}}
	return NewConsole(gw, session), gw, session
}

func TestConsoleLoadRequiresSession(t *testing.T) {
	gw := &fakeGateway{}
	console := NewConsole(gw, &fakeSession{})

	err := console.Load(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, gw.calls)
}

func TestConsoleLoadDefaultsToAllStatuses(t *testing.T) {
	console, _, _ := newTestConsole(sampleSubmissions())

	require.NoError(t, console.Load(context.Background()))

	assert.Len(t, console.Visible(), 5)
	assert.Len(t, console.All(), 5)
	assert.NoError(t, console.Err())
}

func TestConsoleLoadFailureKeepsPriorList(t *testing.T) {
	console, gw, _ := newTestConsole(sampleSubmissions())
	require.NoError(t, console.Load(context.Background()))

	gw.listErr = errors.New("connection reset")
	err := console.Load(context.Background())

	require.Error(t, err)
	// the stale list stays visible and the error is retained for display
	assert.Len(t, console.Visible(), 5)
	assert.Error(t, console.Err())
}

func TestConsoleFilterRecomputesWithoutFetching(t *testing.T) {
	console, gw, _ := newTestConsole(sampleSubmissions())
	require.NoError(t, console.Load(context.Background()))
	fetches := len(gw.calls)

	console.SetStatusFilter(domain.StatusNew)
	assert.Len(t, console.Visible(), 1)

	console.SetSearch("bob")
	assert.Empty(t, console.Visible())

	console.SetStatusFilter(domain.StatusAll)
	assert.Len(t, console.Visible(), 1)

	assert.Len(t, gw.calls, fetches)
}

func TestConsoleSummaryIgnoresFilter(t *testing.T) {
	console, _, _ := newTestConsole(sampleSubmissions())
	require.NoError(t, console.Load(context.Background()))

	console.SetStatusFilter(domain.StatusCompleted)

	sum := console.Summary()
	assert.Equal(t, 5, sum.Total)
	assert.Equal(t, 2, sum.Active)
}

func TestConsoleUpdateStatusRefetchesAfterUpdate(t *testing.T) {
	console, gw, _ := newTestConsole(sampleSubmissions())
	require.NoError(t, console.Load(context.Background()))
	gw.calls = nil

	err := console.UpdateStatus(context.Background(), "1", domain.StatusContacted)

	require.NoError(t, err)
	// the re-fetch is issued only after the update has resolved
	assert.Equal(t, []string{"update", "list"}, gw.calls)

	for _, sub := range console.All() {
		if sub.ID == "1" {
			assert.Equal(t, domain.StatusContacted, sub.Status)
		}
	}
}

func TestConsoleUpdateStatusFailureSkipsRefetch(t *testing.T) {
	console, gw, _ := newTestConsole(sampleSubmissions())
	require.NoError(t, console.Load(context.Background()))
	gw.calls = nil
	gw.updateErr = errors.New("write failed")

	err := console.UpdateStatus(context.Background(), "1", domain.StatusContacted)

	require.Error(t, err)
	assert.Equal(t, []string{"update"}, gw.calls)
	// the stale row stays visible and the failure is surfaced
	assert.Error(t, console.Err())
	for _, sub := range console.Visible() {
		if sub.ID == "1" {
			assert.Equal(t, domain.StatusNew, sub.Status)
		}
	}
}

func TestConsoleUpdateStatusRequiresSession(t *testing.T) {
	gw := &fakeGateway{subs: sampleSubmissions()}
	console := NewConsole(gw, &fakeSession{})

	err := console.UpdateStatus(context.Background(), "1", domain.StatusContacted)

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, gw.calls)
}

func TestConsoleLogout(t *testing.T) {
	console, _, session := newTestConsole(sampleSubmissions())
	require.NoError(t, console.Load(context.Background()))

	require.NoError(t, console.Logout(context.Background()))

	assert.True(t, session.loggedOut)
	assert.ErrorIs(t, console.Load(context.Background()), ErrNotAuthenticated)
}
