package azuread

import (
	"context"
	"crypto"
	"crypto/sha1" // #nosec G505 certificate thumbprints are SHA-1 by definition
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/confidential"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/utils/safe"
)

const (
	defaultAuthorityHost = "https://login.microsoftonline.com"
	defaultGraphURL      = "https://graph.microsoft.com"
	graphScope           = "https://graph.microsoft.com/.default"

	// Graph pages are followed until exhausted; this only stops a
	// misbehaving server from looping forever.
	maxGraphPages = 100
)

// Client authenticates with a client certificate and queries Microsoft Graph
// for group membership.
type Client struct {
	tenantID types.AzureTenantID
	clientID types.AzureClientID
	certs    []*x509.Certificate
	key      crypto.PrivateKey

	authorityHost string
	graphURL      string
	httpClient    interfaces.HTTPClient
}

var _ interfaces.IdentityProvider = (*Client)(nil)

type Option func(*Client)

func WithAuthorityHost(host string) Option {
	return func(x *Client) {
		x.authorityHost = strings.TrimSuffix(host, "/")
	}
}

func WithGraphURL(graphURL string) Option {
	return func(x *Client) {
		x.graphURL = strings.TrimSuffix(graphURL, "/")
	}
}

func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// New parses the certificate and key and checks the configured thumbprint
// against the certificate.
func New(tenantID types.AzureTenantID, clientID types.AzureClientID, cert types.AzureCertificate, key types.AzurePrivateKey, thumbprint types.AzureThumbprint, options ...Option) (*Client, error) {
	if tenantID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "tenant ID is empty")
	}
	if clientID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "client ID is empty")
	}

	pemData := strings.TrimSpace(string(cert)) + "\n" + strings.TrimSpace(string(key)) + "\n"
	certs, privKey, err := confidential.CertFromPEM([]byte(pemData), "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse client certificate", goerr.V("clientID", clientID))
	}
	if len(certs) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no certificate found in PEM", goerr.V("clientID", clientID))
	}

	if thumbprint != "" {
		actual := Thumbprint(certs[0])
		if normalizeThumbprint(string(thumbprint)) != actual {
			return nil, goerr.Wrap(types.ErrInvalidOption, "certificate thumbprint mismatch",
				goerr.V("expected", thumbprint),
				goerr.V("actual", actual),
			)
		}
	}

	client := &Client{
		tenantID:      tenantID,
		clientID:      clientID,
		certs:         certs,
		key:           privKey,
		authorityHost: defaultAuthorityHost,
		graphURL:      defaultGraphURL,
		httpClient:    http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// Thumbprint returns the upper-case hex SHA-1 digest of the DER certificate.
func Thumbprint(cert *x509.Certificate) string {
	sum := sha1.Sum(cert.Raw) // #nosec G401
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func normalizeThumbprint(v string) string {
	v = strings.ReplaceAll(v, ":", "")
	v = strings.ReplaceAll(v, " ", "")
	return strings.ToUpper(v)
}

// AcquireToken implements interfaces.IdentityProvider. A new confidential
// client is built on each call so no token outlives a single check.
func (x *Client) AcquireToken(ctx context.Context) (types.AccessToken, error) {
	cred, err := confidential.NewCredFromCert(x.certs, x.key)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build certificate credential")
	}

	authority := x.authorityHost + "/" + string(x.tenantID)
	app, err := confidential.New(authority, string(x.clientID), cred)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create confidential client", goerr.V("authority", authority))
	}

	result, err := app.AcquireTokenByCredential(ctx, []string{graphScope})
	if err != nil {
		return "", goerr.Wrap(err, "failed to acquire token", goerr.V("authority", authority))
	}

	return types.AccessToken(result.AccessToken), nil
}

type memberOfPage struct {
	Value []struct {
		ID string `json:"id"`
	} `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

// TransitiveMemberOf implements interfaces.IdentityProvider. Any non-200
// response is an error, never an empty membership.
func (x *Client) TransitiveMemberOf(ctx context.Context, token types.AccessToken, email string) ([]types.AzureGroupID, error) {
	next := x.graphURL + "/v1.0/users/" + url.QueryEscape(email) + "/transitiveMemberOf?$select=id"

	var groups []types.AzureGroupID
	for i := 0; next != ""; i++ {
		if i >= maxGraphPages {
			return nil, goerr.New("too many membership pages", goerr.V("email", email))
		}

		page, err := x.getMemberOfPage(ctx, token, next)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list group membership", goerr.V("email", email))
		}

		for _, v := range page.Value {
			groups = append(groups, types.AzureGroupID(v.ID))
		}
		next = page.NextLink
	}

	return groups, nil
}

func (x *Client) getMemberOfPage(ctx context.Context, token types.AccessToken, pageURL string) (*memberOfPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", pageURL))
	}
	req.Header.Set("Authorization", "Bearer "+string(token))
	req.Header.Set("Accept", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send request", goerr.V("url", pageURL))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, goerr.New("unexpected status code from Graph",
			goerr.V("url", pageURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	var page memberOfPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, goerr.Wrap(err, "failed to decode Graph response", goerr.V("url", pageURL))
	}

	return &page, nil
}
