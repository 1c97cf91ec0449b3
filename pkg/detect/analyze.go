package detect

import (
	"time"

	"github.com/google/uuid"
)

// Report is the serialized hand-off unit for downstream consumers. It
// bundles everything one analysis produced. Reports are created fresh per
// invocation and never mutated.
type Report struct {
	ID          string             `json:"id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Root        string             `json:"root"`
	Detection   EcosystemDetection `json:"detection"`
	Manifest    *ManifestResult    `json:"manifest"`
	Framework   *FrameworkInfo     `json:"framework,omitempty"`
	Stack       *DetectedStack     `json:"stack"`
}

// Analyze runs the full detection flow for one project root: ecosystem
// sniffing, adapter resolution, manifest parsing, framework detection, and
// stack classification.
//
// facts may be nil, in which case the root's structure is scanned here.
// All detection errors are terminal; absence of a framework or of any
// recognized technology is a valid, non-error outcome.
func Analyze(root string, registry *Registry, facts *StructureFacts) (*Report, error) {
	detection, err := DetectEcosystem(root)
	if err != nil {
		return nil, err
	}

	adapter, err := registry.Resolve(detection.Ecosystem)
	if err != nil {
		return nil, err
	}

	if facts == nil {
		facts, err = ScanStructure(root)
		if err != nil {
			return nil, err
		}
	}

	manifest, err := adapter.ParseManifest(root)
	if err != nil {
		return nil, err
	}

	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Root:        root,
		Detection:   *detection,
		Manifest:    manifest,
		Framework:   adapter.DetectFramework(manifest, facts),
		Stack:       adapter.ClassifyStack(manifest, facts),
	}, nil
}
