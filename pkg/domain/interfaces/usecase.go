package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/newgit/pkg/domain/model"
)

type UseCase interface {
	Authorize(ctx context.Context, email string) (*model.AuthorizationDecision, error)
	Provision(ctx context.Context, req *model.RepositoryRequest) (*model.ProvisionResult, error)
	SearchOwners(ctx context.Context, prefix string) []string
	Templates() []string
}
