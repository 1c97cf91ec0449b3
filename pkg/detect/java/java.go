// Package java analyzes JVM projects. Maven's pom.xml is the structured
// primary manifest; Gradle build scripts are handled with a line-pattern
// fallback since evaluating Groovy or Kotlin DSL is out of reach.
//
// Dependency keys are Maven coordinates in "groupId:artifactId" form.
package java

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

// Adapter implements detect.Adapter for the Java ecosystem.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Ecosystem() detect.Ecosystem { return detect.Java }

func (a *Adapter) FilePatterns() detect.FilePatterns {
	return detect.FilePatterns{
		IgnoreDirs: []string{"target", "build", ".gradle", "out"},
		SourceExts: []string{".java", ".kt", ".scala"},
	}
}

// ParseManifest prefers pom.xml and falls back to a Gradle build script.
func (a *Adapter) ParseManifest(root string) (*detect.ManifestResult, error) {
	if _, err := os.Stat(filepath.Join(root, "pom.xml")); err == nil {
		return a.parsePom(root)
	}
	for _, script := range []string{"build.gradle", "build.gradle.kts"} {
		if _, err := os.Stat(filepath.Join(root, script)); err == nil {
			return a.parseGradle(root, script)
		}
	}
	return nil, errors.New(errors.ErrCodeManifestNotFound, "no pom.xml or gradle build script found")
}

// matchCoordinate resolves rule triggers against coordinate keys. A trigger
// ending in ":" is a groupId prefix and matches any artifact in that group;
// otherwise matching is exact.
func matchCoordinate(deps detect.DependencyMap, trigger string) (string, bool) {
	if !strings.HasSuffix(trigger, ":") {
		if _, ok := deps[trigger]; ok {
			return trigger, true
		}
		return "", false
	}
	best := ""
	for key := range deps {
		if strings.HasPrefix(key, trigger) && (best == "" || key < best) {
			best = key
		}
	}
	return best, best != ""
}

var _ detect.Adapter = (*Adapter)(nil)
