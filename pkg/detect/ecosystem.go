package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/matzehuels/stackscout/pkg/errors"
)

// manifestCandidate is one entry of the ordered sniffing table. Patterns are
// checked in listed order; a pattern containing glob metacharacters is
// matched against the root's directory listing, anything else is a literal
// filename.
type manifestCandidate struct {
	patterns   []string
	ecosystem  Ecosystem
	confidence Confidence
}

// manifestOrder encodes detection priority. The first tuple with at least
// one existing file wins and lower-priority tuples are never consulted, even
// if their files also exist: a project can contain leftover manifests from
// an abandoned toolchain migration, and the first-declared ecosystem is
// treated as authoritative.
var manifestOrder = []manifestCandidate{
	{[]string{"package.json"}, JavaScript, ConfidenceHigh},
	{[]string{"pyproject.toml"}, Python, ConfidenceHigh},
	{[]string{"Cargo.toml"}, Rust, ConfidenceHigh},
	{[]string{"go.mod"}, Go, ConfidenceHigh},
	{[]string{"pom.xml", "build.gradle", "build.gradle.kts"}, Java, ConfidenceHigh},
	{[]string{"composer.json"}, PHP, ConfidenceHigh},
	{[]string{"requirements.txt", "setup.py", "Pipfile"}, Python, ConfidenceMedium},
	{[]string{"Gemfile"}, Ruby, ConfidenceHigh},
	{[]string{"*.gemspec"}, Ruby, ConfidenceMedium},
}

// DetectEcosystem examines the project root for known manifest filenames and
// returns which ecosystem applies, with a confidence level and the manifest
// file(s) found. It fails with NO_ECOSYSTEM when no recognized manifest
// exists at the root.
func DetectEcosystem(root string) (*EcosystemDetection, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "project root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "project root %s is not a directory", root)
	}

	for _, cand := range manifestOrder {
		var matched []string
		for _, pattern := range cand.patterns {
			matched = append(matched, matchPattern(root, pattern)...)
		}
		if len(matched) > 0 {
			return &EcosystemDetection{
				Ecosystem:    cand.ecosystem,
				Confidence:   cand.confidence,
				MatchedFiles: matched,
				Reason:       fmt.Sprintf("found %s", strings.Join(matched, ", ")),
			}, nil
		}
	}

	return nil, errors.New(errors.ErrCodeNoEcosystem, "no recognized manifest file at %s", root)
}

// matchPattern returns the base names of files at root matching pattern.
// Literal filenames are checked with a single stat; glob patterns
// (e.g. "*.gemspec") are matched against the root's entries.
func matchPattern(root, pattern string) []string {
	if !strings.ContainsAny(pattern, "*?[") {
		if fileExists(filepath.Join(root, pattern)) {
			return []string{pattern}
		}
		return nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var matched []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := doublestar.Match(pattern, entry.Name()); ok {
			matched = append(matched, entry.Name())
		}
	}
	return matched
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
