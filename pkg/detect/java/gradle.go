package java

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

// dependencyLineRe matches one dependency declaration in either Gradle
// dialect: Groovy (implementation 'g:a:v') and Kotlin (implementation("g:a:v")).
var dependencyLineRe = regexp.MustCompile(`(?m)^\s*(implementation|api|compileOnly|runtimeOnly|testImplementation|testRuntimeOnly|annotationProcessor|developmentOnly)\s*\(?\s*["']([^"']+)["']`)

var (
	dependenciesBlockRe = regexp.MustCompile(`(?m)^\s*dependencies\s*\{`)
	rootProjectNameRe   = regexp.MustCompile(`rootProject\.name\s*=\s*["']([^"']+)["']`)
)

// parseGradle extracts dependency coordinates from a build script by line
// pattern. Declarations using version catalogs or variable references are
// invisible to it; a dependencies block that yields no coordinates at all is
// treated as malformed rather than reported as an empty project.
func (a *Adapter) parseGradle(root, script string) (*detect.ManifestResult, error) {
	data, err := os.ReadFile(filepath.Join(root, script))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "%s not readable", script)
	}
	src := string(data)

	result := &detect.ManifestResult{
		Dependencies:      detect.DependencyMap{},
		DevDependencies:   detect.DependencyMap{},
		BuildDependencies: detect.DependencyMap{},
		PackageManager:    "gradle",
		Name:              gradleProjectName(root),
	}

	matches := dependencyLineRe.FindAllStringSubmatch(src, -1)
	if len(matches) == 0 && dependenciesBlockRe.MatchString(src) {
		return nil, errors.New(errors.ErrCodeManifestMalformed, "%s has a dependencies block but no parseable coordinates", script)
	}

	for _, m := range matches {
		configuration, coordinate := m[1], m[2]
		key, version, ok := splitCoordinate(coordinate)
		if !ok {
			continue
		}
		switch configuration {
		case "testImplementation", "testRuntimeOnly":
			result.DevDependencies[key] = version
		case "compileOnly", "annotationProcessor", "developmentOnly":
			result.BuildDependencies[key] = version
		default:
			result.Dependencies[key] = version
		}
	}
	return result, nil
}

// splitCoordinate parses "group:artifact[:version]". A coordinate without a
// version is managed elsewhere (a BOM or plugin) and records the
// unconstrained sentinel.
func splitCoordinate(coordinate string) (string, string, bool) {
	parts := strings.Split(coordinate, ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	key := parts[0] + ":" + parts[1]
	version := ""
	if len(parts) >= 3 {
		version = parts[2]
	}
	return key, detect.NormalizeVersion(version), true
}

func gradleProjectName(root string) string {
	for _, settings := range []string{"settings.gradle", "settings.gradle.kts"} {
		data, err := os.ReadFile(filepath.Join(root, settings))
		if err != nil {
			continue
		}
		if m := rootProjectNameRe.FindStringSubmatch(string(data)); m != nil {
			return m[1]
		}
	}
	return ""
}
