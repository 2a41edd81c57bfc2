package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Visibility is the access level of a repository. GitHub's create APIs only
// accept a private flag, so internal is applied with a follow-up edit.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityInternal Visibility = "internal"
)

// Visibilities returns all levels in the order they are offered to users.
func Visibilities() []Visibility {
	return []Visibility{VisibilityPublic, VisibilityPrivate, VisibilityInternal}
}

func ParseVisibility(v string) (Visibility, error) {
	switch vis := Visibility(strings.ToLower(strings.TrimSpace(v))); vis {
	case VisibilityPublic, VisibilityPrivate, VisibilityInternal:
		return vis, nil
	default:
		return "", goerr.Wrap(ErrInvalidOption, "invalid visibility", goerr.V("visibility", v))
	}
}

// Private reports the value of the private flag sent on creation.
func (x Visibility) Private() bool {
	return x == VisibilityPrivate || x == VisibilityInternal
}

// NativelySupported is false for levels that need a patch after creation.
func (x Visibility) NativelySupported() bool {
	return x != VisibilityInternal
}

// Nearest returns the level the repository has right after creation.
func (x Visibility) Nearest() Visibility {
	if x.Private() {
		return VisibilityPrivate
	}
	return VisibilityPublic
}

func (x Visibility) String() string {
	return string(x)
}
