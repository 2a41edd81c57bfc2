package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/model"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

// Authorize implements interfaces.UseCase. A denial is a decision, not an
// error; errors mean the check itself could not be completed.
func (x *UseCase) Authorize(ctx context.Context, email string) (*model.AuthorizationDecision, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, model.NewValidationError("Requester email is required")
	}

	if x.isTrustedDomain(email) {
		logging.From(ctx).Debug("authorized by trusted domain", "email", email)
		return model.Allow(model.ReasonTrustedDomain), nil
	}

	idp := x.clients.IdentityProvider()
	if idp == nil || x.requiredGroup == "" {
		logging.From(ctx).Warn("authorization denied, no identity provider configured", "email", email)
		return model.Deny(model.ReasonNotConfigured), nil
	}

	token, err := callWithTimeout(ctx, x.callTimeout, idp.AcquireToken)
	if err != nil {
		return nil, model.WithKind(model.ErrAuth, goerr.Wrap(err, "failed to acquire directory token"))
	}

	groups, err := callWithTimeout(ctx, x.callTimeout, func(ctx context.Context) ([]types.AzureGroupID, error) {
		return idp.TransitiveMemberOf(ctx, token, email)
	})
	if err != nil {
		return nil, model.WithKind(model.ErrAuth, goerr.Wrap(err, "failed to check group membership", goerr.V("email", email)))
	}

	for _, group := range groups {
		if group == x.requiredGroup {
			logging.From(ctx).Info("authorized by group membership", "email", email, "group", group)
			return model.Allow(model.ReasonGroupMember), nil
		}
	}

	logging.From(ctx).Info("authorization denied", "email", email, "group", x.requiredGroup)
	return model.Deny(model.ReasonNotMember), nil
}

func (x *UseCase) isTrustedDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	for _, trusted := range x.trustedDomains {
		if strings.EqualFold(domain, strings.TrimPrefix(strings.TrimSpace(trusted), "@")) {
			return true
		}
	}
	return false
}
