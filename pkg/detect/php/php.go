// Package php analyzes PHP projects via composer.json. The composer require
// table mixes real packages with platform constraints: the "php" key is the
// runtime version requirement and "ext-*" keys declare native extensions.
package php

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

// Adapter implements detect.Adapter for the PHP ecosystem.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Ecosystem() detect.Ecosystem { return detect.PHP }

func (a *Adapter) FilePatterns() detect.FilePatterns {
	return detect.FilePatterns{
		IgnoreDirs: []string{"vendor", "storage", "bootstrap/cache"},
		SourceExts: []string{".php"},
	}
}

type composerFile struct {
	Name       string                     `json:"name"`
	Version    string                     `json:"version"`
	Require    map[string]string          `json:"require"`
	RequireDev map[string]string          `json:"require-dev"`
	Scripts    map[string]json.RawMessage `json:"scripts"`
}

// infraExtensions are the native extensions that signal a technology choice
// (a cache or database backend). All other ext-* constraints are platform
// plumbing and are dropped.
var infraExtensions = map[string]struct{}{
	"ext-redis":     {},
	"ext-memcached": {},
	"ext-amqp":      {},
	"ext-mongodb":   {},
	"ext-pdo_pgsql": {},
	"ext-pdo_mysql": {},
}

// ParseManifest reads composer.json at root.
func (a *Adapter) ParseManifest(root string) (*detect.ManifestResult, error) {
	data, err := os.ReadFile(filepath.Join(root, "composer.json"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "composer.json not readable")
	}

	var file composerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestMalformed, err, "composer.json is not valid JSON")
	}

	result := &detect.ManifestResult{
		Name:            file.Name,
		Version:         file.Version,
		Dependencies:    detect.DependencyMap{},
		DevDependencies: detect.DependencyMap{},
		Engines:         map[string]string{},
		Scripts:         composerScripts(file.Scripts),
		PackageManager:  "composer",
	}

	addComposerDeps(file.Require, result.Dependencies, result.Engines)
	addComposerDeps(file.RequireDev, result.DevDependencies, nil)
	return result, nil
}

func addComposerDeps(require map[string]string, dst detect.DependencyMap, engines map[string]string) {
	for name, constraint := range require {
		name = strings.ToLower(name)
		if name == "php" {
			if engines != nil {
				engines["php"] = constraint
			}
			continue
		}
		if strings.HasPrefix(name, "ext-") {
			if _, keep := infraExtensions[name]; !keep {
				continue
			}
			dst[name] = detect.Unspecified
			continue
		}
		dst[name] = detect.NormalizeVersion(constraint)
	}
}

// composerScripts flattens the scripts table, whose values are either a
// single command string or a list of commands.
func composerScripts(raw map[string]json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	scripts := make(map[string]string, len(raw))
	for name, value := range raw {
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			scripts[name] = single
			continue
		}
		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			scripts[name] = strings.Join(list, " && ")
		}
	}
	return scripts
}

var _ detect.Adapter = (*Adapter)(nil)
