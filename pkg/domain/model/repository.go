package model

import (
	"github.com/secmon-lab/newgit/pkg/domain/types"
)

// RepositoryHandle references a repository created by a provisioning
// workflow. Nothing is persisted locally; GitHub is the source of truth.
type RepositoryHandle struct {
	Owner         string
	Name          string
	HTMLURL       string
	CloneURL      string
	DefaultBranch string
	Visibility    types.Visibility
}

func (x *RepositoryHandle) FullName() string {
	return x.Owner + "/" + x.Name
}
