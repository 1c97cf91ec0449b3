// Package rust analyzes Rust crates via Cargo.toml.
package rust

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

// Adapter implements detect.Adapter for the Rust ecosystem.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Ecosystem() detect.Ecosystem { return detect.Rust }

func (a *Adapter) FilePatterns() detect.FilePatterns {
	return detect.FilePatterns{
		IgnoreDirs: []string{"target"},
		SourceExts: []string{".rs"},
	}
}

// cargoFile mirrors the Cargo.toml tables the analyzer consumes. Dependency
// values are decoded lazily because they come in two shapes: a bare version
// string or a table with a version key (possibly absent for git and path
// sources).
type cargoFile struct {
	Package struct {
		Name        string `toml:"name"`
		Version     string `toml:"version"`
		RustVersion string `toml:"rust-version"`
	} `toml:"package"`
	Workspace struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
	Dependencies      map[string]toml.Primitive `toml:"dependencies"`
	DevDependencies   map[string]toml.Primitive `toml:"dev-dependencies"`
	BuildDependencies map[string]toml.Primitive `toml:"build-dependencies"`
}

// ParseManifest reads Cargo.toml at root. A pure virtual workspace manifest
// (no [package] table) is valid and yields member paths with an empty
// dependency map.
func (a *Adapter) ParseManifest(root string) (*detect.ManifestResult, error) {
	path := filepath.Join(root, "Cargo.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "Cargo.toml not readable")
	}

	var file cargoFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestMalformed, err, "Cargo.toml is not valid TOML")
	}

	result := &detect.ManifestResult{
		Name:              file.Package.Name,
		Version:           file.Package.Version,
		Dependencies:      cargoDeps(&md, file.Dependencies),
		DevDependencies:   cargoDeps(&md, file.DevDependencies),
		BuildDependencies: cargoDeps(&md, file.BuildDependencies),
		Engines:           map[string]string{},
		Workspaces:        file.Workspace.Members,
	}
	if file.Package.RustVersion != "" {
		result.Engines["rust"] = file.Package.RustVersion
	}
	if _, err := os.Stat(filepath.Join(root, "Cargo.lock")); err == nil {
		result.PackageManager = "cargo"
	}
	return result, nil
}

func cargoDeps(md *toml.MetaData, deps map[string]toml.Primitive) detect.DependencyMap {
	out := detect.DependencyMap{}
	for name, prim := range deps {
		var version string
		var str string
		if err := md.PrimitiveDecode(prim, &str); err == nil {
			version = str
		} else {
			var table struct {
				Version string `toml:"version"`
			}
			if err := md.PrimitiveDecode(prim, &table); err == nil {
				version = table.Version
			}
		}
		out[name] = detect.NormalizeVersion(version)
	}
	return out
}

var _ detect.Adapter = (*Adapter)(nil)
