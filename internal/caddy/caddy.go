// Package caddy extracts the site domain from a Caddyfile.
package caddy

import (
	"errors"
	"regexp"
)

// A site block starts with "<domain> {" on its own line and ends with a
// closing brace.
var siteRe = regexp.MustCompile(`(?m)^(.+) \{(?s:.*)\}`)

func Domain(caddyfile []byte) (string, error) {
	m := siteRe.FindSubmatch(caddyfile)
	if m == nil {
		return "", errors.New("no site domain found in the Caddyfile")
	}
	return string(m[1]), nil
}
