package intake

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/treyloggins4-create/tk/internal/domain"
	"github.com/treyloggins4-create/tk/internal/gateway"
	"github.com/treyloggins4-create/tk/internal/metrics"
	apperrors "github.com/treyloggins4-create/tk/pkg/errors"
)

// Identity is the soft dependency consulted before an insert. A handshake
// failure is logged but never blocks the submission.
type Identity interface {
	SignInAnonymously(ctx context.Context) error
}

// ErrSubmitInFlight is returned when a submit is attempted while a previous
// one is still running. The form allows a single in-flight request.
var ErrSubmitInFlight = errors.New("submit already in progress")

// User-facing notice texts.
const (
	successMessage      = "Thank you! Your message has been sent successfully. We'll get back to you within 24 hours."
	serviceRequiredMsg  = "Please select at least one service."
	requiredFieldsMsg   = "Please fill in all required fields."
	genericErrorMessage = "Something went wrong. Please try again."
)

// NoticeKind classifies the form notice.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is the inline message shown after a submit attempt.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Form is the contact form state machine. Field values survive a failed
// submit so the visitor can retry; a successful submit clears everything.
// A form instance is not safe for concurrent use.
type Form struct {
	gw       gateway.Gateway
	identity Identity

	Name    string
	Email   string
	Phone   string
	Message string

	services   []string
	submitting bool
	notice     Notice
}

// NewForm creates a contact form bound to a storage gateway. The identity
// handshake is optional; pass nil to skip it.
func NewForm(gw gateway.Gateway, identity Identity) *Form {
	return &Form{gw: gw, identity: identity}
}

// ToggleService adds the tag to the selected set, or removes it when already
// selected. Selection order is preserved.
func (f *Form) ToggleService(tag string) {
	for i, s := range f.services {
		if s == tag {
			f.services = append(f.services[:i], f.services[i+1:]...)
			return
		}
	}
	f.services = append(f.services, tag)
}

// SelectedServices returns the currently selected service tags.
func (f *Form) SelectedServices() []string {
	return f.services
}

// Notice returns the current inline notice.
func (f *Form) Notice() Notice {
	return f.notice
}

// Submit validates the draft and forwards it to storage. The services set
// must be non-empty before anything touches the gateway; required fields are
// checked the same way a native form would block an empty submit. Status is
// omitted from the payload so storage defaults it to "new".
func (f *Form) Submit(ctx context.Context) error {
	if f.submitting {
		return ErrSubmitInFlight
	}

	if len(f.services) == 0 {
		f.notice = Notice{Kind: NoticeError, Message: serviceRequiredMsg}
		return apperrors.New(apperrors.ErrCodeValidation, "at least one service must be selected")
	}

	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.Phone) == "" {
		f.notice = Notice{Kind: NoticeError, Message: requiredFieldsMsg}
		return apperrors.New(apperrors.ErrCodeValidation, "name, email and phone are required")
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	if f.identity != nil {
		if err := f.identity.SignInAnonymously(ctx); err != nil {
			log.Printf("[INTAKE] Warning: anonymous sign-in failed: %v", err)
		}
	}

	sub := &domain.ContactSubmission{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.ToLower(strings.TrimSpace(f.Email)),
		Phone:   strings.TrimSpace(f.Phone),
		Service: domain.JoinServices(f.services),
		Message: strings.TrimSpace(f.Message),
	}

	stored, err := f.gw.Insert(ctx, sub)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericErrorMessage
		}
		f.notice = Notice{Kind: NoticeError, Message: msg}
		return err
	}

	log.Printf("[INTAKE] Submission stored: id=%s", stored.ID)
	metrics.RecordContactSubmission()

	f.reset()
	f.notice = Notice{Kind: NoticeSuccess, Message: successMessage}
	return nil
}

func (f *Form) reset() {
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Message = ""
	f.services = nil
}
