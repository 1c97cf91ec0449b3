// Package javascript implements detection for npm-style projects.
//
// The manifest is package.json. The package manager is taken from the
// packageManager field when present, otherwise inferred from which lockfile
// exists. Workspaces come from the workspaces field (flat list or object
// form) with pnpm-workspace.yaml as a fallback.
package javascript

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

// Adapter implements detect.Adapter for the JavaScript/npm ecosystem.
type Adapter struct{}

// New returns the JavaScript adapter.
func New() *Adapter { return &Adapter{} }

func (a *Adapter) Ecosystem() detect.Ecosystem { return detect.JavaScript }

func (a *Adapter) FilePatterns() detect.FilePatterns {
	return detect.FilePatterns{
		IgnoreDirs: []string{"node_modules", "dist", "build", ".next", ".nuxt", ".svelte-kit", "coverage", ".turbo"},
		SourceExts: []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs", ".vue", ".svelte"},
	}
}

var _ detect.Adapter = (*Adapter)(nil)
