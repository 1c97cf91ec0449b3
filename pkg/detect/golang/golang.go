// Package golang analyzes Go modules via their go.mod file. go.mod is
// line-oriented rather than a structured format, so the parser is a small
// directive scanner instead of a codec.
package golang

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

// Adapter implements detect.Adapter for the Go ecosystem.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Ecosystem() detect.Ecosystem { return detect.Go }

func (a *Adapter) FilePatterns() detect.FilePatterns {
	return detect.FilePatterns{
		IgnoreDirs: []string{"vendor", "testdata"},
		SourceExts: []string{".go"},
	}
}

// ParseManifest reads go.mod at root. Directly required modules land in
// Dependencies; modules marked "// indirect" are not deliberate choices and
// land in BuildDependencies. The go directive is the toolchain constraint.
func (a *Adapter) ParseManifest(root string) (*detect.ManifestResult, error) {
	path := filepath.Join(root, "go.mod")
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "go.mod not readable")
	}
	defer f.Close()

	result := &detect.ManifestResult{
		Dependencies:      detect.DependencyMap{},
		BuildDependencies: detect.DependencyMap{},
		Engines:           map[string]string{},
		PackageManager:    "go",
	}

	inRequire := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if inRequire {
			if line == ")" {
				inRequire = false
				continue
			}
			addRequirement(result, line)
			continue
		}

		switch {
		case strings.HasPrefix(line, "module "):
			result.Name = strings.TrimSpace(strings.TrimPrefix(line, "module "))
		case strings.HasPrefix(line, "go "):
			result.Engines["go"] = strings.TrimSpace(strings.TrimPrefix(line, "go "))
		case line == "require (":
			inRequire = true
		case strings.HasPrefix(line, "require "):
			addRequirement(result, strings.TrimPrefix(line, "require "))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestMalformed, err, "failed reading go.mod")
	}

	if result.Name == "" {
		return nil, errors.New(errors.ErrCodeManifestMalformed, "go.mod has no module directive")
	}
	return result, nil
}

// addRequirement parses one "path version [// indirect]" requirement line.
func addRequirement(result *detect.ManifestResult, line string) {
	indirect := false
	if idx := strings.Index(line, "//"); idx >= 0 {
		indirect = strings.Contains(line[idx:], "indirect")
		line = strings.TrimSpace(line[:idx])
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	modPath, version := fields[0], detect.NormalizeVersion(fields[1])
	if indirect {
		result.BuildDependencies[modPath] = version
		return
	}
	result.Dependencies[modPath] = version
}

// matchModule is the trigger matcher for module paths: a trigger matches its
// exact path and any major-version or subpackage suffix below it, so
// "github.com/go-chi/chi" also matches "github.com/go-chi/chi/v5".
func matchModule(deps detect.DependencyMap, trigger string) (string, bool) {
	if _, ok := deps[trigger]; ok {
		return trigger, true
	}
	prefix := trigger + "/"
	best := ""
	for key := range deps {
		if strings.HasPrefix(key, prefix) && (best == "" || key < best) {
			best = key
		}
	}
	return best, best != ""
}

var _ detect.Adapter = (*Adapter)(nil)
