package python

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

var frameworkOrder = []struct {
	key  string
	name string
}{
	{"django", "Django"},
	{"fastapi", "FastAPI"},
	{"flask", "Flask"},
	{"tornado", "Tornado"},
	{"aiohttp", "aiohttp"},
	{"starlette", "Starlette"},
}

var frameworkKeys = func() []string {
	keys := make([]string, len(frameworkOrder))
	for i, f := range frameworkOrder {
		keys[i] = f.key
	}
	return keys
}()

// DetectFramework returns the first matching web framework. FastAPI is
// checked before its Starlette foundation so both being present reports
// FastAPI.
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
