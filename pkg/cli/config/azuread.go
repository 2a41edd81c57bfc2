package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/infra/azuread"
	"github.com/urfave/cli/v3"
)

const (
	certDirKeyPath  = "key/key.pem"
	certDirCertPath = "cert/cert.pem"
)

// AzureAD holds the client certificate credential used for Graph membership
// queries. The certificate and key are given either as PEM values or as a
// directory holding key/key.pem and cert/cert.pem.
type AzureAD struct {
	tenantID    types.AzureTenantID
	clientID    types.AzureClientID
	thumbprint  types.AzureThumbprint
	certificate types.AzureCertificate
	privateKey  types.AzurePrivateKey `masq:"secret"`
	certDir     string
}

func (x *AzureAD) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "azure-tenant-id",
			Usage:       "Azure AD tenant ID",
			Category:    "Azure AD",
			Destination: (*string)(&x.tenantID),
			Sources:     cli.EnvVars("NEWGIT_AZURE_TENANT_ID"),
		},
		&cli.StringFlag{
			Name:        "azure-client-id",
			Usage:       "Azure AD application (client) ID",
			Category:    "Azure AD",
			Destination: (*string)(&x.clientID),
			Sources:     cli.EnvVars("NEWGIT_AZURE_CLIENT_ID"),
		},
		&cli.StringFlag{
			Name:        "azure-thumbprint",
			Usage:       "SHA-1 thumbprint of the client certificate",
			Category:    "Azure AD",
			Destination: (*string)(&x.thumbprint),
			Sources:     cli.EnvVars("NEWGIT_AZURE_THUMBPRINT"),
		},
		&cli.StringFlag{
			Name:        "azure-certificate",
			Usage:       "Client certificate (PEM)",
			Category:    "Azure AD",
			Destination: (*string)(&x.certificate),
			Sources:     cli.EnvVars("NEWGIT_AZURE_CERTIFICATE"),
		},
		&cli.StringFlag{
			Name:        "azure-private-key",
			Usage:       "Private key of the client certificate (PEM)",
			Category:    "Azure AD",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("NEWGIT_AZURE_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "azure-cert-dir",
			Usage:       "Directory with key/key.pem and cert/cert.pem, used when PEM values are not given",
			Category:    "Azure AD",
			Destination: &x.certDir,
			Sources:     cli.EnvVars("NEWGIT_AZURE_CERT_DIR"),
		},
	}
}

// Enabled reports whether a tenant is configured. Without it the identity
// gate only honors trusted domains.
func (x AzureAD) Enabled() bool {
	return x.tenantID != ""
}

func (x AzureAD) credential() (types.AzureCertificate, types.AzurePrivateKey, error) {
	if x.certificate != "" || x.privateKey != "" || x.certDir == "" {
		return x.certificate, x.privateKey, nil
	}

	key, err := os.ReadFile(filepath.Join(x.certDir, certDirKeyPath))
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to read private key", goerr.V("dir", x.certDir))
	}
	cert, err := os.ReadFile(filepath.Join(x.certDir, certDirCertPath))
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to read certificate", goerr.V("dir", x.certDir))
	}

	return types.AzureCertificate(cert), types.AzurePrivateKey(key), nil
}

// New returns nil without error when no tenant is configured.
func (x AzureAD) New() (*azuread.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}

	cert, key, err := x.credential()
	if err != nil {
		return nil, err
	}

	return azuread.New(x.tenantID, x.clientID, cert, key, x.thumbprint)
}

func (x AzureAD) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("TenantID", string(x.tenantID)),
		slog.String("ClientID", string(x.clientID)),
		slog.String("Thumbprint", string(x.thumbprint)),
		slog.Int("certificate.len", len(x.certificate)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("CertDir", x.certDir),
	)
}
