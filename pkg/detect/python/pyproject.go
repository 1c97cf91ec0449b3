package python

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

// pyprojectFile mirrors the two dependency dialects found in the wild: the
// standard [project] table with PEP 508 requirement strings, and the Poetry
// table with its own version syntax. A file may carry both; [project] wins
// for metadata and both dependency sets are merged.
type pyprojectFile struct {
	Project struct {
		Name                 string              `toml:"name"`
		Version              string              `toml:"version"`
		RequiresPython       string              `toml:"requires-python"`
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name            string                    `toml:"name"`
			Version         string                    `toml:"version"`
			Dependencies    map[string]toml.Primitive `toml:"dependencies"`
			DevDependencies map[string]toml.Primitive `toml:"dev-dependencies"`
			Group           map[string]struct {
				Dependencies map[string]toml.Primitive `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func (a *Adapter) parsePyproject(root string) (*detect.ManifestResult, error) {
	path := filepath.Join(root, "pyproject.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "pyproject.toml not readable")
	}

	var file pyprojectFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestMalformed, err, "pyproject.toml is not valid TOML")
	}

	result := &detect.ManifestResult{
		Name:            file.Project.Name,
		Version:         file.Project.Version,
		Dependencies:    detect.DependencyMap{},
		DevDependencies: detect.DependencyMap{},
		Engines:         map[string]string{},
	}
	if result.Name == "" {
		result.Name = file.Tool.Poetry.Name
	}
	if result.Version == "" {
		result.Version = file.Tool.Poetry.Version
	}
	if file.Project.RequiresPython != "" {
		result.Engines["python"] = file.Project.RequiresPython
	}

	for _, req := range file.Project.Dependencies {
		name, version := parseRequirement(req)
		if name != "" {
			result.Dependencies[name] = version
		}
	}
	for _, reqs := range file.Project.OptionalDependencies {
		for _, req := range reqs {
			name, version := parseRequirement(req)
			if name != "" {
				result.DevDependencies[name] = version
			}
		}
	}

	addPoetryDeps(&md, file.Tool.Poetry.Dependencies, result.Dependencies, result.Engines)
	addPoetryDeps(&md, file.Tool.Poetry.DevDependencies, result.DevDependencies, nil)
	for _, group := range file.Tool.Poetry.Group {
		addPoetryDeps(&md, group.Dependencies, result.DevDependencies, nil)
	}

	result.PackageManager = pythonPackageManager(root)
	return result, nil
}

// addPoetryDeps folds one Poetry dependency table into dst. Values are either
// bare version strings or tables with a version key (git and path sources
// have no version and record the unconstrained sentinel). The "python"
// pseudo-dependency is a runtime constraint, not a package.
func addPoetryDeps(md *toml.MetaData, deps map[string]toml.Primitive, dst detect.DependencyMap, engines map[string]string) {
	for rawName, prim := range deps {
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

		if strings.EqualFold(rawName, "python") {
			if engines != nil && version != "" {
				engines["python"] = version
			}
			continue
		}
		dst[normalizeName(rawName)] = detect.NormalizeVersion(version)
	}
}

// parseRequirement splits a PEP 508 requirement string into a canonical name
// and a normalized version. Extras and environment markers are discarded.
func parseRequirement(req string) (string, string) {
	req = strings.TrimSpace(req)
	if req == "" || strings.HasPrefix(req, "#") {
		return "", ""
	}
	if marker := strings.Index(req, ";"); marker >= 0 {
		req = req[:marker]
	}

	cut := len(req)
	for i, r := range req {
		if strings.ContainsRune(" ([<>=!~", r) {
			cut = i
			break
		}
	}
	name := normalizeName(req[:cut])
	if name == "" {
		return "", ""
	}

	spec := strings.Trim(req[cut:], " ()")
	if idx := strings.Index(spec, "["); idx == 0 {
		// Extras directly after the name: requests[security]>=2.28
		if end := strings.Index(spec, "]"); end >= 0 {
			spec = strings.Trim(spec[end+1:], " ()")
		}
	}
	if comma := strings.Index(spec, ","); comma >= 0 {
		spec = spec[:comma]
	}
	return name, detect.NormalizeVersion(spec)
}

// pythonPackageManager infers the tool managing the environment from the
// lockfile present at root.
func pythonPackageManager(root string) string {
	for _, lf := range []struct{ file, manager string }{
		{"poetry.lock", "poetry"},
		{"uv.lock", "uv"},
		{"Pipfile.lock", "pipenv"},
		{"pdm.lock", "pdm"},
	} {
		if _, err := os.Stat(filepath.Join(root, lf.file)); err == nil {
			return lf.manager
		}
	}
	return ""
}
