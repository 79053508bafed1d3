// Package web embeds the static chat page. The page is plain HTML/JS over
// the session API; all screening logic lives server-side.
package web

import "embed"

//go:embed index.html
var FS embed.FS
