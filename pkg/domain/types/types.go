package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	GitHubOrg           string

	AzureTenantID    string
	AzureClientID    string
	AzureGroupID     string
	AzureThumbprint  string
	AzureCertificate string
	AzurePrivateKey  string
	AccessToken      string

	APIToken string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string

	RequestID string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubOrg) String() string       { return string(x) }
func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x AzurePrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AzurePrivateKey) String() string {
	return "***********"
}

func (x AccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AccessToken) String() string {
	return "***********"
}

func (x APIToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x APIToken) String() string {
	return "***********"
}
