// Package python analyzes Python projects. The primary manifest is
// pyproject.toml in either the standard [project] table or the Poetry
// dialect; requirements.txt, Pipfile, and setup.py are legacy fallbacks.
package python

import (
	"strings"

	"github.com/matzehuels/stackscout/pkg/detect"
)

// Adapter implements detect.Adapter for the Python ecosystem.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Ecosystem() detect.Ecosystem { return detect.Python }

func (a *Adapter) FilePatterns() detect.FilePatterns {
	return detect.FilePatterns{
		IgnoreDirs: []string{".venv", "venv", "__pycache__", ".tox", ".mypy_cache", ".pytest_cache", "dist", "build"},
		SourceExts: []string{".py", ".pyi"},
	}
}

// normalizeName canonicalizes a distribution name. PyPI treats names
// case-insensitively and folds underscores and dots into hyphens.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	return name
}

var _ detect.Adapter = (*Adapter)(nil)
