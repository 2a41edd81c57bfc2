package model

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrValidation      = goerr.New("invalid request")
	ErrRepoExists      = goerr.New("repository already exists")
	ErrRepoCreate      = goerr.New("failed to create repository")
	ErrAuth            = goerr.New("authorization check failed")
	ErrOwnerResolution = goerr.New("owner not found")
	ErrTimeout         = goerr.New("external call timed out")
)

// ValidationError carries a reason that is safe to show to the requester as is.
type ValidationError struct {
	Reason string
}

func (x *ValidationError) Error() string { return x.Reason }

func (x *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError returns an error matching ErrValidation.
func NewValidationError(reason string, values ...goerr.Option) error {
	return goerr.Wrap(&ValidationError{Reason: reason}, "invalid request", values...)
}

// OwnerResolutionError names an owner that matched no team or user.
type OwnerResolutionError struct {
	Owner string
}

func (x *OwnerResolutionError) Error() string {
	return fmt.Sprintf("couldn't find a team or user named %q", x.Owner)
}

func (x *OwnerResolutionError) Is(target error) bool { return target == ErrOwnerResolution }

// WithKind tags err with one of the sentinel kinds above while keeping the
// original error in the chain.
func WithKind(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}

type ErrorKind string

const (
	ErrorKindNone            ErrorKind = ""
	ErrorKindValidation      ErrorKind = "validation"
	ErrorKindRepoExists      ErrorKind = "repo_exists"
	ErrorKindRepoCreate      ErrorKind = "repo_create"
	ErrorKindAuth            ErrorKind = "auth"
	ErrorKindOwnerResolution ErrorKind = "owner_resolution"
	ErrorKindTimeout         ErrorKind = "timeout"
	ErrorKindUnknown         ErrorKind = "unknown"
)

// Classify maps an error to its kind. Timeout wins over everything else
// because a timed out create or lookup is still a timeout to the requester.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrTimeout):
		return ErrorKindTimeout
	case errors.Is(err, ErrValidation):
		return ErrorKindValidation
	case errors.Is(err, ErrRepoExists):
		return ErrorKindRepoExists
	case errors.Is(err, ErrOwnerResolution):
		return ErrorKindOwnerResolution
	case errors.Is(err, ErrAuth):
		return ErrorKindAuth
	case errors.Is(err, ErrRepoCreate):
		return ErrorKindRepoCreate
	default:
		return ErrorKindUnknown
	}
}

// UserMessage returns the text relayed to the requester. Provider details are
// never included; they only go to the log.
func UserMessage(err error) string {
	switch Classify(err) {
	case ErrorKindNone:
		return ""
	case ErrorKindValidation:
		var v *ValidationError
		if errors.As(err, &v) {
			return v.Reason
		}
		return "Invalid request"
	case ErrorKindRepoExists:
		return "Repo name already exists! Please try again."
	case ErrorKindOwnerResolution:
		var o *OwnerResolutionError
		if errors.As(err, &o) {
			return fmt.Sprintf("Couldn't find a team or user named %q for CODEOWNERS", o.Owner)
		}
		return "Couldn't find a team or user for CODEOWNERS"
	case ErrorKindAuth:
		return "Authorization check failed, please try again later"
	case ErrorKindTimeout:
		return "The request timed out, please try again later"
	default:
		return "Something went wrong! Please try again later"
	}
}
