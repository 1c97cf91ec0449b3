package python

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

// ParseManifest reads the most authoritative manifest present at root.
// pyproject.toml wins over the legacy formats; a malformed primary manifest
// is an error even when a parseable fallback exists.
func (a *Adapter) ParseManifest(root string) (*detect.ManifestResult, error) {
	for _, m := range []struct {
		file  string
		parse func(string) (*detect.ManifestResult, error)
	}{
		{"pyproject.toml", a.parsePyproject},
		{"requirements.txt", a.parseRequirementsTxt},
		{"Pipfile", a.parsePipfile},
		{"setup.py", a.parseSetupPy},
	} {
		if _, err := os.Stat(filepath.Join(root, m.file)); err == nil {
			return m.parse(root)
		}
	}
	return nil, errors.New(errors.ErrCodeManifestNotFound, "no python manifest found")
}

func (a *Adapter) parseRequirementsTxt(root string) (*detect.ManifestResult, error) {
	path := filepath.Join(root, "requirements.txt")
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "requirements.txt not readable")
	}
	defer f.Close()

	result := &detect.ManifestResult{
		Dependencies:   detect.DependencyMap{},
		PackageManager: pythonPackageManager(root),
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		name, version := parseRequirement(line)
		if name != "" {
			result.Dependencies[name] = version
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestMalformed, err, "failed reading requirements.txt")
	}

	devPath := filepath.Join(root, "requirements-dev.txt")
	if data, err := os.ReadFile(devPath); err == nil {
		result.DevDependencies = detect.DependencyMap{}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
				continue
			}
			name, version := parseRequirement(line)
			if name != "" {
				result.DevDependencies[name] = version
			}
		}
	}
	return result, nil
}

// pipfileFile is the TOML structure of a Pipfile. Package values are either
// version strings ("*", "==1.4") or tables with a version key.
type pipfileFile struct {
	Packages    map[string]toml.Primitive `toml:"packages"`
	DevPackages map[string]toml.Primitive `toml:"dev-packages"`
	Requires    struct {
		PythonVersion string `toml:"python_version"`
	} `toml:"requires"`
}

func (a *Adapter) parsePipfile(root string) (*detect.ManifestResult, error) {
	data, err := os.ReadFile(filepath.Join(root, "Pipfile"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "Pipfile not readable")
	}

	var file pipfileFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestMalformed, err, "Pipfile is not valid TOML")
	}

	result := &detect.ManifestResult{
		Dependencies:    detect.DependencyMap{},
		DevDependencies: detect.DependencyMap{},
		Engines:         map[string]string{},
		PackageManager:  "pipenv",
	}
	if file.Requires.PythonVersion != "" {
		result.Engines["python"] = file.Requires.PythonVersion
	}
	addPoetryDeps(&md, file.Packages, result.Dependencies, nil)
	addPoetryDeps(&md, file.DevPackages, result.DevDependencies, nil)
	return result, nil
}

var (
	installRequiresRe = regexp.MustCompile(`(?s)install_requires\s*=\s*\[(.*?)\]`)
	setupNameRe       = regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`)
	setupVersionRe    = regexp.MustCompile(`version\s*=\s*["']([^"']+)["']`)
	quotedStringRe    = regexp.MustCompile(`["']([^"']+)["']`)
)

// parseSetupPy extracts declared metadata from setup.py with regular
// expressions. Dynamic setup scripts that compute their requirement list
// yield an empty dependency map, not an error.
func (a *Adapter) parseSetupPy(root string) (*detect.ManifestResult, error) {
	data, err := os.ReadFile(filepath.Join(root, "setup.py"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "setup.py not readable")
	}
	src := string(data)

	result := &detect.ManifestResult{
		Dependencies:   detect.DependencyMap{},
		PackageManager: pythonPackageManager(root),
	}
	if m := setupNameRe.FindStringSubmatch(src); m != nil {
		result.Name = m[1]
	}
	if m := setupVersionRe.FindStringSubmatch(src); m != nil {
		result.Version = m[1]
	}
	if m := installRequiresRe.FindStringSubmatch(src); m != nil {
		for _, entry := range quotedStringRe.FindAllStringSubmatch(m[1], -1) {
			name, version := parseRequirement(entry[1])
			if name != "" {
				result.Dependencies[name] = version
			}
		}
	}
	return result, nil
}
