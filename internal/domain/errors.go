// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Kind is the machine-checkable classification of a gate or entitlement
// failure. Every failure surfaced by the authz package carries exactly one.
type Kind string

const (
	KindUnauthenticated   Kind = "unauthenticated"
	KindNotAMember        Kind = "not_a_member"
	KindInsufficientRole  Kind = "insufficient_role"
	KindNoActivePlan      Kind = "no_active_plan"
	KindPlanExpired       Kind = "plan_expired"
	KindPlanNotActive     Kind = "plan_not_active"
	KindPaymentIncomplete Kind = "payment_incomplete"
	KindInsufficientPlan  Kind = "insufficient_plan"
	KindQuotaExceeded     Kind = "quota_exceeded"
	KindStoreError        Kind = "store_error"
)

// Error pairs a Kind with a human-readable message. StoreError additionally
// wraps the underlying persistence failure so callers can inspect and decide
// whether to retry; every other kind is terminal for the request.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a terminal classified error.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewErrorf builds a terminal classified error with a formatted message.
func NewErrorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapStore classifies an underlying persistence failure. The cause is kept
// verbatim; the gate never retries.
func WrapStore(message string, err error) *Error {
	return &Error{Kind: KindStoreError, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or "" when err is not a classified error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMembershipNotFound   = errors.New("membership not found")
	ErrAlreadyMember        = errors.New("user is already a member of this organization")
	ErrOwnerCannotLeave     = errors.New("the organization owner cannot be removed")

	// Plan-related errors
	ErrPlanNotFound  = errors.New("plan not found")
	ErrNotADowngrade = errors.New("target plan is not a downgrade")
)
