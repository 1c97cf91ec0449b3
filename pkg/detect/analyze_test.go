package detect

import (
	"testing"

	"github.com/matzehuels/stackscout/pkg/errors"
)

func TestAnalyze(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json")

	adapter := &mockAdapter{
		eco: JavaScript,
		manifest: &ManifestResult{
			Name:         "demo",
			Dependencies: DependencyMap{"react": "18.2.0"},
		},
		framework: &FrameworkInfo{Name: "React", Version: "18.2.0"},
		stack: &DetectedStack{
			Recognized:   map[string]RecognizedTech{},
			Unrecognized: []string{},
		},
	}

	report, err := Analyze(root, NewRegistry(adapter), nil)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if report.ID == "" {
		t.Error("report ID should be set")
	}
	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be set")
	}
	if report.Detection.Ecosystem != JavaScript {
		t.Errorf("Detection.Ecosystem = %q, want javascript", report.Detection.Ecosystem)
	}
	if report.Manifest.Name != "demo" {
		t.Errorf("Manifest.Name = %q, want demo", report.Manifest.Name)
	}
	if report.Framework == nil || report.Framework.Name != "React" {
		t.Errorf("Framework = %+v, want React", report.Framework)
	}
}

func TestAnalyzeFreshIDs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod")

	adapter := &mockAdapter{
		eco:      Go,
		manifest: &ManifestResult{Dependencies: DependencyMap{}, DevDependencies: DependencyMap{}},
		stack:    &DetectedStack{Recognized: map[string]RecognizedTech{}, Unrecognized: []string{}},
	}
	reg := NewRegistry(adapter)

	a, err := Analyze(root, reg, &StructureFacts{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Analyze(root, reg, &StructureFacts{})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Error("each analysis must get a fresh report ID")
	}
}

func TestAnalyzeUnsupportedEcosystem(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Gemfile")

	_, err := Analyze(root, NewRegistry(), nil)
	if !errors.Is(err, errors.ErrCodeUnsupportedEcosystem) {
		t.Errorf("error code = %q, want UNSUPPORTED_ECOSYSTEM", errors.GetCode(err))
	}
}

func TestAnalyzeNoEcosystem(t *testing.T) {
	_, err := Analyze(t.TempDir(), NewRegistry(), nil)
	if !errors.Is(err, errors.ErrCodeNoEcosystem) {
		t.Errorf("error code = %q, want NO_ECOSYSTEM", errors.GetCode(err))
	}
}

func TestAnalyzeParseFailureIsTerminal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json")

	adapter := &mockAdapter{
		eco:      JavaScript,
		parseErr: errors.New(errors.ErrCodeManifestMalformed, "invalid JSON"),
	}

	report, err := Analyze(root, NewRegistry(adapter), nil)
	if report != nil {
		t.Error("no partial report may be returned for a malformed manifest")
	}
	if !errors.Is(err, errors.ErrCodeManifestMalformed) {
		t.Errorf("error code = %q, want MANIFEST_MALFORMED", errors.GetCode(err))
	}
}
