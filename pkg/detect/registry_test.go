package detect

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/stackscout/pkg/errors"
)

// mockAdapter is a minimal Adapter for registry and orchestration tests.
type mockAdapter struct {
	eco       Ecosystem
	manifest  *ManifestResult
	parseErr  error
	framework *FrameworkInfo
	stack     *DetectedStack
}

func (m *mockAdapter) Ecosystem() Ecosystem { return m.eco }

func (m *mockAdapter) ParseManifest(root string) (*ManifestResult, error) {
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	return m.manifest, nil
}

func (m *mockAdapter) DetectFramework(_ *ManifestResult, _ *StructureFacts) *FrameworkInfo {
	return m.framework
}

func (m *mockAdapter) ClassifyStack(_ *ManifestResult, _ *StructureFacts) *DetectedStack {
	return m.stack
}

func (m *mockAdapter) FilePatterns() FilePatterns {
	return FilePatterns{IgnoreDirs: []string{"node_modules"}, SourceExts: []string{".js"}}
}

func TestRegistryResolve(t *testing.T) {
	js := &mockAdapter{eco: JavaScript}
	py := &mockAdapter{eco: Python}
	reg := NewRegistry(js, py)

	got, err := reg.Resolve(JavaScript)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != Adapter(js) {
		t.Error("Resolve() returned wrong adapter")
	}
}

func TestRegistryResolveUnsupported(t *testing.T) {
	reg := NewRegistry(&mockAdapter{eco: JavaScript})

	_, err := reg.Resolve(Ruby)
	if err == nil {
		t.Fatal("Resolve() expected error for unregistered ecosystem")
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedEcosystem) {
		t.Errorf("error code = %q, want UNSUPPORTED_ECOSYSTEM", errors.GetCode(err))
	}
	// The message must carry the ecosystem name so callers can report it.
	if msg := errors.UserMessage(err); !strings.Contains(msg, string(Ruby)) {
		t.Errorf("error message %q should name the ecosystem", msg)
	}
}

func TestRegistryEcosystemsSorted(t *testing.T) {
	reg := NewRegistry(
		&mockAdapter{eco: Rust},
		&mockAdapter{eco: Go},
		&mockAdapter{eco: JavaScript},
	)

	got := reg.Ecosystems()
	want := []Ecosystem{Go, JavaScript, Rust}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ecosystems() = %v, want %v", got, want)
	}
}
