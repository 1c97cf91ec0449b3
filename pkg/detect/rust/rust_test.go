package rust

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

func writeCargo(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseManifest(t *testing.T) {
	root := t.TempDir()
	writeCargo(t, root, `
[package]
name = "apiserver"
version = "0.5.1"
rust-version = "1.75"

[dependencies]
axum = "0.7"
serde = { version = "1.0", features = ["derive"] }
internal = { path = "../internal" }

[dev-dependencies]
mockall = "0.12"

[build-dependencies]
prost-build = "0.12"
`)
	if err := os.WriteFile(filepath.Join(root, "Cargo.lock"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := New().ParseManifest(root)
	if err != nil {
		t.Fatalf("ParseManifest() error: %v", err)
	}

	if m.Name != "apiserver" || m.Version != "0.5.1" {
		t.Errorf("Name/Version = %q/%q", m.Name, m.Version)
	}
	if m.Engines["rust"] != "1.75" {
		t.Errorf("Engines[rust] = %q, want 1.75", m.Engines["rust"])
	}
	if m.Dependencies["axum"] != "0.7" {
		t.Errorf("axum = %q, want 0.7 (string form)", m.Dependencies["axum"])
	}
	if m.Dependencies["serde"] != "1.0" {
		t.Errorf("serde = %q, want 1.0 (table form)", m.Dependencies["serde"])
	}
	if m.Dependencies["internal"] != detect.Unspecified {
		t.Errorf("internal = %q, want unspecified (path source)", m.Dependencies["internal"])
	}
	if m.DevDependencies["mockall"] != "0.12" {
		t.Errorf("mockall = %q, want 0.12", m.DevDependencies["mockall"])
	}
	if m.BuildDependencies["prost-build"] != "0.12" {
		t.Errorf("prost-build = %q, want 0.12", m.BuildDependencies["prost-build"])
	}
	if m.PackageManager != "cargo" {
		t.Errorf("PackageManager = %q, want cargo", m.PackageManager)
	}
}

func TestParseManifestVirtualWorkspace(t *testing.T) {
	root := t.TempDir()
	writeCargo(t, root, `
[workspace]
members = ["crates/core", "crates/cli"]
`)

	m, err := New().ParseManifest(root)
	if err != nil {
		t.Fatalf("ParseManifest() error: %v", err)
	}
	want := []string{"crates/core", "crates/cli"}
	if !reflect.DeepEqual(m.Workspaces, want) {
		t.Errorf("Workspaces = %v, want %v", m.Workspaces, want)
	}
	if len(m.Dependencies) != 0 {
		t.Errorf("Dependencies = %v, want empty", m.Dependencies)
	}
}

func TestParseManifestMissing(t *testing.T) {
	_, err := New().ParseManifest(t.TempDir())
	if !errors.Is(err, errors.ErrCodeManifestNotFound) {
		t.Errorf("error code = %q, want MANIFEST_NOT_FOUND", errors.GetCode(err))
	}
}

func TestParseManifestMalformed(t *testing.T) {
	root := t.TempDir()
	writeCargo(t, root, "[package\nname = broken")

	_, err := New().ParseManifest(root)
	if !errors.Is(err, errors.ErrCodeManifestMalformed) {
		t.Errorf("error code = %q, want MANIFEST_MALFORMED", errors.GetCode(err))
	}
}

func TestDetectFramework(t *testing.T) {
	tests := []struct {
		name string
		deps map[string]string
		want string
	}{
		{"actix first", map[string]string{"actix-web": "4.5", "axum": "0.7"}, "Actix Web"},
		{"axum alone", map[string]string{"axum": "0.7"}, "Axum"},
		{"none", map[string]string{"serde": "1.0"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New().DetectFramework(&detect.ManifestResult{Dependencies: tt.deps}, nil)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("DetectFramework() = %v, want nil", got)
				}
				return
			}
			if got == nil || got.Name != tt.want {
				t.Fatalf("DetectFramework() = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyStack(t *testing.T) {
	stack := New().ClassifyStack(&detect.ManifestResult{
		Dependencies: map[string]string{
			"axum":       "0.7.4",
			"tokio":      "1.36.0",
			"serde":      "1.0.197",
			"serde_json": "1.0.114",
			"sqlx":       "0.7.4",
			"tracing":    "0.1.40",
			"cfg-if":     "1.0.0",
			"some-crate": "0.3.0",
		},
		DevDependencies: map[string]string{
			"mockall": "0.12.1",
		},
	}, nil)

	for _, name := range []string{"Tokio", "Serde", "SQLx", "Tracing", "Mockall"} {
		if _, ok := stack.Recognized[name]; !ok {
			t.Errorf("missing %q in %v", name, stack.Recognized)
		}
	}
	if got := stack.Recognized["Serde"].Version; got != "1.0.197" {
		t.Errorf("Serde version = %q, want 1.0.197 (from the core crate)", got)
	}
	if _, ok := stack.Recognized["Axum"]; ok {
		t.Error("framework key classified as a stack technology")
	}
	if want := []string{"some-crate"}; !reflect.DeepEqual(stack.Unrecognized, want) {
		t.Errorf("Unrecognized = %v, want %v", stack.Unrecognized, want)
	}
}
