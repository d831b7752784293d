package suggest

import (
	_ "embed"
	"strings"
)

// Placeholder marks where edit summaries are substituted into the template.
const Placeholder = "<events>"

// Prompt is the default instruction template.
//
//go:embed prompt.txt
var Prompt string

// BuildRequest composes the request text: the instructions followed by a
// blank line and the full document.
//
// With omitEdits set the template is sent verbatim, placeholder included,
// and summaries are ignored.
func BuildRequest(template string, summaries []string, documentText string, omitEdits bool) string {
	instructions := template
	if !omitEdits {
		instructions = strings.ReplaceAll(template, Placeholder, strings.Join(summaries, "\n"))
	}
	return strings.TrimRight(instructions, "\n") + "\n\n" + documentText
}
