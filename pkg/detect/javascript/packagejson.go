package javascript

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

const manifestName = "package.json"

// lockfileManagers maps lockfile names to the package manager they imply.
// Only the file's presence matters, never its content.
var lockfileManagers = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
	{"bun.lock", "bun"},
	{"package-lock.json", "npm"},
}

type packageFile struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
	Scripts          map[string]string `json:"scripts"`
	Engines          map[string]string `json:"engines"`
	PackageManager   string            `json:"packageManager"`
	Workspaces       json.RawMessage   `json:"workspaces"`
}

// ParseManifest reads package.json at root into the uniform result.
func (a *Adapter) ParseManifest(root string) (*detect.ManifestResult, error) {
	path := filepath.Join(root, manifestName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeManifestNotFound, "%s not found at %s", manifestName, root)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "reading %s", path)
	}

	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestMalformed, err, "invalid JSON in %s", path)
	}

	result := &detect.ManifestResult{
		Name:              pkg.Name,
		Version:           pkg.Version,
		Dependencies:      detect.NormalizeAll(pkg.Dependencies),
		DevDependencies:   detect.NormalizeAll(pkg.DevDependencies),
		BuildDependencies: detect.NormalizeAll(pkg.PeerDependencies),
		Scripts:           pkg.Scripts,
		Engines:           pkg.Engines,
		PackageManager:    packageManager(pkg.PackageManager, root),
		Workspaces:        workspaces(pkg.Workspaces, root),
	}
	return result, nil
}

// packageManager resolves the active package manager: the packageManager
// field wins (trimmed of its version suffix), else lockfile presence decides.
func packageManager(field, root string) string {
	if field != "" {
		if at := strings.Index(field, "@"); at > 0 {
			return field[:at]
		}
		return field
	}
	for _, lf := range lockfileManagers {
		if _, err := os.Stat(filepath.Join(root, lf.file)); err == nil {
			return lf.manager
		}
	}
	return ""
}

// workspaces normalizes the two legal shapes of the workspaces field, a
// flat list of path globs or an object with a nested "packages" list, into
// one list, falling back to pnpm-workspace.yaml.
func workspaces(raw json.RawMessage, root string) []string {
	if len(raw) > 0 {
		var flat []string
		if err := json.Unmarshal(raw, &flat); err == nil {
			return flat
		}
		var obj struct {
			Packages []string `json:"packages"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil && len(obj.Packages) > 0 {
			return obj.Packages
		}
	}
	return pnpmWorkspaces(root)
}

func pnpmWorkspaces(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "pnpm-workspace.yaml"))
	if err != nil {
		return nil
	}
	var ws struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil
	}
	return ws.Packages
}
