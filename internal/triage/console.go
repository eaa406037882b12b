package triage

import (
	"context"
	"errors"
	"log"

	"github.com/treyloggins4-create/tk/internal/domain"
	"github.com/treyloggins4-create/tk/internal/gateway"
)

// ErrNotAuthenticated is returned when a console operation is attempted
// without an authenticated session. Callers map it to a login redirect.
var ErrNotAuthenticated = errors.New("not authenticated")

// Operator is the authenticated identity the console displays.
type Operator struct {
	Email string
}

// Session is the identity-provider session the console is constructed with.
// It is injected explicitly rather than read from ambient state.
type Session interface {
	// User returns the authenticated operator, or nil.
	User() *Operator
	// Loading reports whether the session state is still being resolved.
	Loading() bool
	// Logout terminates the session.
	Logout(ctx context.Context) error
}

// Console lists, filters and triages stored submissions. The authoritative
// state lives in storage; the console only holds its own view state. A
// console instance is not safe for concurrent use.
type Console struct {
	gw      gateway.Gateway
	session Session

	all      []domain.ContactSubmission
	filtered []domain.ContactSubmission
	term     string
	status   string
	lastErr  error
}

// NewConsole creates a triage console bound to a storage gateway and an
// authenticated session.
func NewConsole(gw gateway.Gateway, session Session) *Console {
	return &Console{
		gw:      gw,
		session: session,
		status:  domain.StatusAll,
	}
}

// Load fetches the full submission set, newest first. On failure the
// previously loaded list stays visible and the error is retained for Err.
func (c *Console) Load(ctx context.Context) error {
	if c.session.User() == nil {
		return ErrNotAuthenticated
	}

	subs, err := c.gw.ListAll(ctx)
	if err != nil {
		log.Printf("[TRIAGE] List fetch failed: %v", err)
		c.lastErr = err
		return err
	}

	c.all = subs
	c.lastErr = nil
	c.refresh()
	return nil
}

// SetSearch updates the free-text search term and recomputes the view.
func (c *Console) SetSearch(term string) {
	c.term = term
	c.refresh()
}

// SetStatusFilter updates the status selector and recomputes the view.
func (c *Console) SetStatusFilter(status string) {
	c.status = status
	c.refresh()
}

func (c *Console) refresh() {
	c.filtered = Filter(c.all, c.term, c.status)
}

// Visible returns the currently filtered view.
func (c *Console) Visible() []domain.ContactSubmission {
	return c.filtered
}

// All returns the full loaded set.
func (c *Console) All() []domain.ContactSubmission {
	return c.all
}

// Summary returns the derived counts over the full loaded set.
func (c *Console) Summary() Summary {
	return Summarize(c.all)
}

// Err returns the most recent gateway error, or nil. Failed status updates
// land here so the operator sees the row is stale instead of failing
// silently.
func (c *Console) Err() error {
	return c.lastErr
}

// UpdateStatus moves one submission to a new triage status. There is no
// optimistic local update: on success the full set is re-fetched, and that
// re-fetch is issued only after the update call has resolved. On failure the
// stale row stays visible and the error is surfaced via Err.
func (c *Console) UpdateStatus(ctx context.Context, id, status string) error {
	if c.session.User() == nil {
		return ErrNotAuthenticated
	}

	if _, err := c.gw.UpdateStatus(ctx, id, status); err != nil {
		log.Printf("[TRIAGE] Status update failed: id=%s, status=%s: %v", id, status, err)
		c.lastErr = err
		return err
	}

	return c.Load(ctx)
}

// Logout terminates the session.
func (c *Console) Logout(ctx context.Context) error {
	return c.session.Logout(ctx)
}
