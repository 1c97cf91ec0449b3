package java

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

// frameworkOrder uses groupId-prefix triggers: any artifact from the Spring
// Boot group identifies the framework regardless of which starter is used.
var frameworkOrder = []struct {
	trigger string
	name    string
}{
	{"org.springframework.boot:", "Spring Boot"},
	{"io.quarkus:", "Quarkus"},
	{"io.micronaut:", "Micronaut"},
	{"org.springframework:", "Spring"},
	{"io.vertx:", "Vert.x"},
	{"io.dropwizard:", "Dropwizard"},
}

var frameworkKeys = func() []string {
	keys := make([]string, len(frameworkOrder))
	for i, f := range frameworkOrder {
		keys[i] = f.trigger
	}
	return keys
}()

// DetectFramework returns the first matching framework. For Spring Boot the
// variant distinguishes the reactive stack from servlet MVC based on which
// web starter is declared.
func (a *Adapter) DetectFramework(manifest *detect.ManifestResult, _ *detect.StructureFacts) *detect.FrameworkInfo {
	all := manifest.AllDependencies()
	for _, f := range frameworkOrder {
		raw, ok := matchCoordinate(all, f.trigger)
		if !ok {
			continue
		}
		info := &detect.FrameworkInfo{Name: f.name}
		if v := all[raw]; v != detect.Unspecified {
			info.Version = v
		}
		if f.name == "Spring Boot" {
			info.Variant = springBootVariant(all)
		}
		return info
	}
	return nil
}

func springBootVariant(all detect.DependencyMap) string {
	if _, ok := all["org.springframework.boot:spring-boot-starter-webflux"]; ok {
		return "webflux"
	}
	if _, ok := all["org.springframework.boot:spring-boot-starter-web"]; ok {
		return "mvc"
	}
	return ""
}
