package notify

import (
	"context"

	"github.com/mkiplagat/bursary-intake/internal/entity"
)

// Notifier sends applicant-facing notifications. Implementations must be
// safe for concurrent use. Sending is always best effort at call sites: a
// failed email never fails the operation that triggered it.
type Notifier interface {
	SendSubmissionConfirmation(ctx context.Context, to string, app *entity.Application) error
	SendStatusChange(ctx context.Context, to string, app *entity.Application) error
}

// Noop discards all notifications. Used when email is disabled.
type Noop struct{}

func (Noop) SendSubmissionConfirmation(context.Context, string, *entity.Application) error {
	return nil
}

func (Noop) SendStatusChange(context.Context, string, *entity.Application) error {
	return nil
}
