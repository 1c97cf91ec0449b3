package javascript

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

// frameworkOrder encodes precedence: a full-stack meta-framework is checked
// before the UI library it is built on, so a project using both Next.js and
// React reports Next.js.
var frameworkOrder = []struct {
	key  string
	name string
}{
	{"next", "Next.js"},
	{"nuxt", "Nuxt"},
	{"@remix-run/react", "Remix"},
	{"astro", "Astro"},
	{"@sveltejs/kit", "SvelteKit"},
	{"@angular/core", "Angular"},
	{"vue", "Vue"},
	{"react", "React"},
	{"@nestjs/core", "NestJS"},
	{"fastify", "Fastify"},
	{"express", "Express"},
}

// frameworkKeys lists every dependency key the framework table can claim,
// for bucket accounting in the classifier.
var frameworkKeys = func() []string {
	keys := make([]string, len(frameworkOrder))
	for i, f := range frameworkOrder {
		keys[i] = f.key
	}
	return keys
}()

// DetectFramework returns the first matching framework from the ordered
// table, or nil. The Next.js routing variant is read from structure facts.
func (a *Adapter) DetectFramework(manifest *detect.ManifestResult, facts *detect.StructureFacts) *detect.FrameworkInfo {
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
		if f.name == "Next.js" {
			info.Variant = nextVariant(facts)
		}
		return info
	}
	return nil
}

func nextVariant(facts *detect.StructureFacts) string {
	if facts == nil {
		return ""
	}
	switch {
	case facts.HasAppDir:
		return "app-router"
	case facts.HasPagesDir:
		return "pages-router"
	}
	return ""
}
