package model

// AuthorizationDecision is computed for every request and never stored.
type AuthorizationDecision struct {
	Authorized bool   `json:"authorized"`
	Reason     string `json:"reason"`
}

const (
	ReasonTrustedDomain = "trusted domain"
	ReasonGroupMember   = "member of required group"
	ReasonNotMember     = "You are not authorized to use the new git bot"
	ReasonNotConfigured = "authorization is not configured"
)

func Allow(reason string) *AuthorizationDecision {
	return &AuthorizationDecision{Authorized: true, Reason: reason}
}

func Deny(reason string) *AuthorizationDecision {
	return &AuthorizationDecision{Authorized: false, Reason: reason}
}
