package rust

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

var frameworkOrder = []struct {
	key  string
	name string
}{
	{"actix-web", "Actix Web"},
	{"axum", "Axum"},
	{"rocket", "Rocket"},
	{"warp", "Warp"},
	{"poem", "Poem"},
}

var frameworkKeys = func() []string {
	keys := make([]string, len(frameworkOrder))
	for i, f := range frameworkOrder {
		keys[i] = f.key
	}
	return keys
}()

// DetectFramework returns the first matching web framework from the ordered
// table, or nil.
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
