package infra

import (
	"net/http"

	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
)

type Clients struct {
	github     interfaces.GitHub
	identity   interfaces.IdentityProvider
	gitRemote  interfaces.GitRemote
	bqClient   interfaces.BigQuery
	httpClient interfaces.HTTPClient
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) IdentityProvider() interfaces.IdentityProvider {
	return x.identity
}
func (x *Clients) GitRemote() interfaces.GitRemote {
	return x.gitRemote
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) HTTPClient() interfaces.HTTPClient {
	return x.httpClient
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithIdentityProvider(client interfaces.IdentityProvider) Option {
	return func(x *Clients) {
		x.identity = client
	}
}

func WithGitRemote(client interfaces.GitRemote) Option {
	return func(x *Clients) {
		x.gitRemote = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
