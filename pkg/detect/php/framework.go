package php

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

var frameworkOrder = []struct {
	key  string
	name string
}{
	{"laravel/framework", "Laravel"},
	{"symfony/framework-bundle", "Symfony"},
	{"slim/slim", "Slim"},
	{"laminas/laminas-mvc", "Laminas"},
	{"cakephp/cakephp", "CakePHP"},
}

var frameworkKeys = func() []string {
	keys := make([]string, len(frameworkOrder))
	for i, f := range frameworkOrder {
		keys[i] = f.key
	}
	return keys
}()

// DetectFramework returns the first matching framework. A project made only
// of symfony/* components without the framework bundle is using Symfony
// libraries, not the framework, and reports none.
func (a *Adapter) DetectFramework(manifest *detect.ManifestResult, _ *detect.StructureFacts) *detect.FrameworkInfo {
	all := manifest.AllDependencies()
	for _, f := range frameworkOrder {
		version, ok := all[f.key]
		if !ok {
			continue
		}
		info := &detect.FrameworkInfo{Name: f.name}
		if version != detect.Unspecified {
			info.Version = version
		}
		return info
	}
	return nil
}
