// Package templates embeds the default config templates. On-disk templates
// under <base-dir>/templates take precedence when present.
package templates

import "embed"

//go:embed ws xhttp
var FS embed.FS
