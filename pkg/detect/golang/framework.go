package golang

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

var frameworkOrder = []struct {
	key  string
	name string
}{
	{"github.com/gin-gonic/gin", "Gin"},
	{"github.com/labstack/echo", "Echo"},
	{"github.com/gofiber/fiber", "Fiber"},
	{"github.com/go-chi/chi", "chi"},
	{"github.com/gorilla/mux", "Gorilla Mux"},
}

var frameworkKeys = func() []string {
	keys := make([]string, len(frameworkOrder))
	for i, f := range frameworkOrder {
		keys[i] = f.key
	}
	return keys
}()

// DetectFramework returns the first matching HTTP framework. Matching is
// prefix-aware so versioned module paths (echo/v4, fiber/v2, chi/v5)
// resolve to their base entry.
func (a *Adapter) DetectFramework(manifest *detect.ManifestResult, _ *detect.StructureFacts) *detect.FrameworkInfo {
	all := manifest.AllDependencies()
	for _, f := range frameworkOrder {
		raw, ok := matchModule(all, f.key)
		if !ok {
			continue
		}
		info := &detect.FrameworkInfo{Name: f.name}
		if v := all[raw]; v != detect.Unspecified {
			info.Version = v
		}
		return info
	}
	return nil
}
