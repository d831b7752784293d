// Package amend edits a file in the terminal while a language model proposes
// fixes for the lines just typed. The work happens in the buffer, editor and
// suggest packages; this package carries the release version.
package amend

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// SemVer 2.0.0, no leading "v".
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// ValidVersion reports whether v is a SemVer version without the tag prefix.
func ValidVersion(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
