package detect

import (
	"sort"

	"github.com/matzehuels/stackscout/pkg/errors"
)

// Adapter is the uniform contract every ecosystem implements: parse the
// manifest, detect the framework, classify the stack, report file patterns.
// Implementations live in the per-ecosystem subpackages and are selected at
// runtime by a [Registry].
type Adapter interface {
	// Ecosystem returns the identifier this adapter serves.
	Ecosystem() Ecosystem

	// ParseManifest reads the ecosystem's manifest file(s) at root and
	// produces the uniform result. It fails with MANIFEST_NOT_FOUND if the
	// expected file is absent and MANIFEST_MALFORMED if it cannot be parsed;
	// no partial result is ever returned.
	ParseManifest(root string) (*ManifestResult, error)

	// DetectFramework returns the identified application framework or nil.
	// Variant detection consults facts only; the filesystem is never walked.
	DetectFramework(manifest *ManifestResult, facts *StructureFacts) *FrameworkInfo

	// ClassifyStack applies the ecosystem's ordered rule table to the
	// dependency map. Empty results are valid for minimal projects.
	ClassifyStack(manifest *ManifestResult, facts *StructureFacts) *DetectedStack

	// FilePatterns reports directories to ignore and source extensions.
	FilePatterns() FilePatterns
}

// Registry maps ecosystems to their adapters. Construction is cheap and the
// lookup is pure; no caching is involved.
type Registry struct {
	adapters map[Ecosystem]Adapter
}

// NewRegistry builds a registry from the given adapters. A later adapter for
// the same ecosystem replaces an earlier one.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[Ecosystem]Adapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Ecosystem()] = a
	}
	return r
}

// Resolve returns the adapter for eco. It fails with UNSUPPORTED_ECOSYSTEM,
// carrying the ecosystem name, when the detector recognized an ecosystem no
// adapter is registered for.
func (r *Registry) Resolve(eco Ecosystem) (Adapter, error) {
	a, ok := r.adapters[eco]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedEcosystem, "no adapter registered for ecosystem %q", eco)
	}
	return a, nil
}

// Ecosystems returns the registered ecosystems in sorted order.
func (r *Registry) Ecosystems() []Ecosystem {
	out := make([]Ecosystem, 0, len(r.adapters))
	for eco := range r.adapters {
		out = append(out, eco)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
