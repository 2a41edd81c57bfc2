package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/newgit/pkg/utils/safe"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const gcsScheme = "gs://"

// Catalog is the list of template repositories offered to requesters. It is
// read from a YAML file, local or in Cloud Storage, and extended by flags.
type Catalog struct {
	path      string
	templates []string
}

type catalogFile struct {
	GitHub struct {
		Templates []string `yaml:"templates"`
	} `yaml:"github"`
}

func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Template catalog YAML, a local path or gs://bucket/object",
			Category:    "Catalog",
			Destination: &x.path,
			Sources:     cli.EnvVars("NEWGIT_CATALOG"),
		},
		&cli.StringSliceFlag{
			Name:        "template",
			Usage:       "Template repository (owner/name) to offer in addition to the catalog file",
			Category:    "Catalog",
			Destination: &x.templates,
			Sources:     cli.EnvVars("NEWGIT_TEMPLATES"),
		},
	}
}

// Load returns the catalog file entries followed by the flag entries.
func (x Catalog) Load(ctx context.Context) ([]string, error) {
	var templates []string

	if x.path != "" {
		raw, err := readCatalog(ctx, x.path)
		if err != nil {
			return nil, err
		}

		fromFile, err := ParseCatalog(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse catalog", goerr.V("path", x.path))
		}
		templates = append(templates, fromFile...)
	}

	for _, t := range x.templates {
		if t = strings.TrimSpace(t); t != "" {
			templates = append(templates, t)
		}
	}

	return templates, nil
}

// ParseCatalog reads the `github.templates` list, skipping blank entries.
func ParseCatalog(raw []byte) ([]string, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "invalid catalog YAML")
	}

	var templates []string
	for _, t := range file.GitHub.Templates {
		if t = strings.TrimSpace(t); t != "" {
			templates = append(templates, t)
		}
	}
	return templates, nil
}

func readCatalog(ctx context.Context, path string) ([]byte, error) {
	if !strings.HasPrefix(path, gcsScheme) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
		}
		return raw, nil
	}

	bucket, object, ok := strings.Cut(strings.TrimPrefix(path, gcsScheme), "/")
	if !ok || bucket == "" || object == "" {
		return nil, goerr.New("catalog URL must be gs://bucket/object", goerr.V("path", path))
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}
	defer safe.Close(client)

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open catalog object", goerr.V("bucket", bucket), goerr.V("object", object))
	}
	defer safe.Close(r)

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog object", goerr.V("bucket", bucket), goerr.V("object", object))
	}
	return raw, nil
}

func (x Catalog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Path", x.path),
		slog.Any("Templates", x.templates),
	)
}
