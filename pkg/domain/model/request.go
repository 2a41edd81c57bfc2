package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/types"
)

const (
	// TemplateNone selects a blank, auto-initialized repository.
	TemplateNone = "none"

	// OwnerNone is what the form sends when no owner was picked.
	OwnerNone = "none"

	DefaultReviewerCount = 1

	maxRepoNameLength = 100
)

var ptnValidRepoName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// RepositoryRequest is a submitted "new repository" form.
type RepositoryRequest struct {
	Name        string           `json:"name"`
	Template    string           `json:"template"`
	Visibility  types.Visibility `json:"visibility"`
	Owner       string           `json:"owner"`
	Description string           `json:"description"`

	// RequestedBy is the requester's email, set by the caller after
	// authorization. It is only recorded for audit.
	RequestedBy string `json:"-"`
}

// Validate checks the request and normalizes visibility and template. It must
// pass before any remote mutation so a bad request never leaves a repository
// behind.
func (x *RepositoryRequest) Validate() error {
	x.Name = strings.TrimSpace(x.Name)
	x.Owner = strings.TrimSpace(x.Owner)
	x.Template = strings.TrimSpace(x.Template)

	if x.Name == "" {
		return NewValidationError("Repository name is required")
	}
	if len(x.Name) > maxRepoNameLength {
		return NewValidationError("Repository name is too long", goerr.V("name", x.Name))
	}
	if !ptnValidRepoName.MatchString(x.Name) || x.Name == "." || x.Name == ".." {
		return NewValidationError("Repository name may only contain letters, digits, '.', '-' and '_'",
			goerr.V("name", x.Name))
	}

	if x.Template == "" {
		return NewValidationError("Template is required, choose \"none\" for a blank repository")
	}
	if x.IsBlank() {
		x.Template = TemplateNone
	}

	vis, err := types.ParseVisibility(string(x.Visibility))
	if err != nil {
		return NewValidationError("Visibility must be one of public, private or internal",
			goerr.V("visibility", x.Visibility))
	}
	x.Visibility = vis

	if x.Owner == "" || strings.EqualFold(x.Owner, OwnerNone) {
		return NewValidationError("An owning team or user is required")
	}

	return nil
}

// IsBlank reports whether the request asks for a repository without a template.
func (x *RepositoryRequest) IsBlank() bool {
	return strings.EqualFold(x.Template, TemplateNone)
}

// TemplateRef is a template repository split into owner and name.
type TemplateRef struct {
	Owner string
	Repo  string
}

func (x TemplateRef) String() string {
	return x.Owner + "/" + x.Repo
}

// ParseTemplateRef accepts "owner/repo" or a bare repository name, which is
// looked up in defaultOwner.
func ParseTemplateRef(v, defaultOwner string) (TemplateRef, error) {
	v = strings.TrimSpace(v)
	parts := strings.Split(v, "/")
	switch {
	case len(parts) == 1 && parts[0] != "":
		return TemplateRef{Owner: defaultOwner, Repo: parts[0]}, nil
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return TemplateRef{Owner: parts[0], Repo: parts[1]}, nil
	default:
		return TemplateRef{}, NewValidationError("Template must be a repository name or owner/name",
			goerr.V("template", v))
	}
}
