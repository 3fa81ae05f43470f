package richarea

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// The release number lives in the VERSION file so tooling and the library
// read the same source of truth.
//
//go:embed VERSION
var embeddedVersion string

// Version reports the richarea release number, without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version with the `v` prefix that git tags carry.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a valid SemVer 2.0.0 string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver checks that the embedded release number parses as SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
