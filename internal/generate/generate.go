// Package generate writes a fresh set of Caddy, users and Xray configs from
// the transport templates, substituting the {domain} and {path} placeholders.
package generate

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"xrayctl/internal/storage"
	"xrayctl/templates"

	"go.uber.org/zap"
)

// Transports lists the supported stream transport modes.
var Transports = []string{"ws", "xhttp"}

func ValidTransport(transport string) bool {
	for _, t := range Transports {
		if t == transport {
			return true
		}
	}
	return false
}

type Generator struct {
	store     *storage.Store
	templates fs.FS
}

func New(store *storage.Store) *Generator {
	return &Generator{store: store, templates: templates.FS}
}

// Run renders the templates for the given transport and writes the Caddyfile,
// an empty users config and the Xray config. Existing files are overwritten.
func (g *Generator) Run(domain, transport string) error {
	if !ValidTransport(transport) {
		return fmt.Errorf("unsupported transport %q (expected one of: %s)",
			transport, strings.Join(Transports, ", "))
	}

	urlPath, err := randomPath()
	if err != nil {
		return err
	}

	replacer := strings.NewReplacer("{domain}", domain, "{path}", urlPath)

	caddyfile, err := g.template(transport, "Caddyfile")
	if err != nil {
		return err
	}
	if err := g.store.WriteFile(g.store.CaddyfilePath(), []byte(replacer.Replace(string(caddyfile)))); err != nil {
		return fmt.Errorf("write Caddyfile: %w", err)
	}

	if err := g.store.WriteFile(g.store.UsersPath(), []byte("{}\n")); err != nil {
		return fmt.Errorf("write users config: %w", err)
	}

	xrayConfig, err := g.template(transport, "config.json")
	if err != nil {
		return err
	}
	if err := g.store.WriteFile(g.store.XrayConfigPath(), []byte(replacer.Replace(string(xrayConfig)))); err != nil {
		return fmt.Errorf("write xray config: %w", err)
	}

	zap.S().Infow("configs generated",
		"domain", domain,
		"transport", transport,
		"base_dir", g.store.BaseDir())

	return nil
}

// template prefers an on-disk template under <base-dir>/templates and falls
// back to the embedded copy.
func (g *Generator) template(transport, name string) ([]byte, error) {
	diskPath := filepath.Join(g.store.TemplatesDir(), transport, name)
	if g.store.Exists(diskPath) {
		return g.store.ReadFile(diskPath)
	}

	data, err := fs.ReadFile(g.templates, path.Join(transport, name))
	if err != nil {
		return nil, fmt.Errorf("load template %s/%s: %w", transport, name, err)
	}
	return data, nil
}

// randomPath returns a fresh secret URL path like /hoOcmR6S9JcT... built from
// 32 random bytes.
func randomPath() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "/" + base64.RawURLEncoding.EncodeToString(buf), nil
}
