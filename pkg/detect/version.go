package detect

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionToken matches the first embedded MAJOR.MINOR[.PATCH] numeric token
// inside a constraint string.
var versionToken = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// wildcard sentinels that carry no version information at all.
var wildcardVersions = map[string]bool{
	"*":      true,
	"x":      true,
	"latest": true,
}

// NormalizeVersion extracts a best-effort concrete version from a raw
// constraint string (semver range, PEP 440 specifier, Cargo range, Maven
// property, Composer constraint).
//
// The function is deliberately lossy: it reports an indicative version, not
// an exact resolved one, since no parser performs dependency resolution.
// The rules are:
//
//   - empty input yields [Unspecified]
//   - a wildcard sentinel ("*", "x", "latest") yields "unknown"
//   - a string that already parses as a plain semver version is returned
//     unchanged, which makes normalization idempotent
//   - otherwise leading range operators are stripped and the first
//     MAJOR.MINOR[.PATCH] token is extracted
//   - if no numeric token exists (e.g. an unresolved Maven property like
//     "${spring.version}"), the trimmed original is returned
func NormalizeVersion(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Unspecified
	}
	if wildcardVersions[strings.ToLower(s)] {
		return "unknown"
	}
	if _, err := semver.StrictNewVersion(s); err == nil {
		return s
	}

	stripped := strings.TrimLeft(s, "^~><=! v")
	if tok := versionToken.FindString(stripped); tok != "" {
		return tok
	}
	return s
}

// NormalizeAll applies NormalizeVersion to every value of a raw
// name-to-constraint map, producing a fresh DependencyMap.
func NormalizeAll(raw map[string]string) DependencyMap {
	out := make(DependencyMap, len(raw))
	for name, constraint := range raw {
		out[name] = NormalizeVersion(constraint)
	}
	return out
}
