package golang

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

func writeGoMod(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseManifest(t *testing.T) {
	root := t.TempDir()
	writeGoMod(t, root, `module github.com/acme/apiserver

go 1.22.1

// direct requirements
require (
	github.com/gin-gonic/gin v1.9.1
	gorm.io/gorm v1.25.9
)

require github.com/stretchr/testify v1.9.0

require (
	github.com/davecgh/go-spew v1.1.1 // indirect
	golang.org/x/sys v0.18.0 // indirect
)
`)

	m, err := New().ParseManifest(root)
	if err != nil {
		t.Fatalf("ParseManifest() error: %v", err)
	}

	if m.Name != "github.com/acme/apiserver" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Engines["go"] != "1.22.1" {
		t.Errorf("Engines[go] = %q, want 1.22.1", m.Engines["go"])
	}
	if m.Dependencies["github.com/gin-gonic/gin"] != "1.9.1" {
		t.Errorf("gin = %q, want 1.9.1 (v prefix stripped)", m.Dependencies["github.com/gin-gonic/gin"])
	}
	if m.Dependencies["github.com/stretchr/testify"] != "1.9.0" {
		t.Errorf("testify = %q, want 1.9.0 (single-line require)", m.Dependencies["github.com/stretchr/testify"])
	}
	if _, ok := m.Dependencies["github.com/davecgh/go-spew"]; ok {
		t.Error("indirect module appeared among direct dependencies")
	}
	if m.BuildDependencies["golang.org/x/sys"] != "0.18.0" {
		t.Errorf("x/sys = %q, want 0.18.0 in the indirect bucket", m.BuildDependencies["golang.org/x/sys"])
	}
	if m.PackageManager != "go" {
		t.Errorf("PackageManager = %q, want go", m.PackageManager)
	}
}

func TestParseManifestMissing(t *testing.T) {
	_, err := New().ParseManifest(t.TempDir())
	if !errors.Is(err, errors.ErrCodeManifestNotFound) {
		t.Errorf("error code = %q, want MANIFEST_NOT_FOUND", errors.GetCode(err))
	}
}

func TestParseManifestNoModuleDirective(t *testing.T) {
	root := t.TempDir()
	writeGoMod(t, root, "go 1.22\n")

	_, err := New().ParseManifest(root)
	if !errors.Is(err, errors.ErrCodeManifestMalformed) {
		t.Errorf("error code = %q, want MANIFEST_MALFORMED", errors.GetCode(err))
	}
}

func TestMatchModule(t *testing.T) {
	deps := detect.DependencyMap{
		"github.com/go-chi/chi/v5": "5.0.12",
		"github.com/spf13/cobra":   "1.8.0",
	}

	tests := []struct {
		trigger string
		wantKey string
		wantOK  bool
	}{
		{"github.com/spf13/cobra", "github.com/spf13/cobra", true},
		{"github.com/go-chi/chi", "github.com/go-chi/chi/v5", true},
		{"github.com/go-chi/chiba", "", false},
		{"github.com/absent/mod", "", false},
	}

	for _, tt := range tests {
		key, ok := matchModule(deps, tt.trigger)
		if key != tt.wantKey || ok != tt.wantOK {
			t.Errorf("matchModule(%q) = (%q, %v), want (%q, %v)", tt.trigger, key, ok, tt.wantKey, tt.wantOK)
		}
	}
}

func TestDetectFramework(t *testing.T) {
	tests := []struct {
		name string
		deps map[string]string
		want string
	}{
		{"gin first", map[string]string{"github.com/gin-gonic/gin": "1.9.1", "github.com/go-chi/chi/v5": "5.0.12"}, "Gin"},
		{"echo versioned path", map[string]string{"github.com/labstack/echo/v4": "4.11.4"}, "Echo"},
		{"chi versioned path", map[string]string{"github.com/go-chi/chi/v5": "5.0.12"}, "chi"},
		{"none", map[string]string{"github.com/spf13/cobra": "1.8.0"}, ""},
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
			"github.com/go-chi/chi/v5":     "5.0.12",
			"gorm.io/gorm":                 "1.25.9",
			"github.com/jackc/pgx/v5":      "5.5.5",
			"github.com/redis/go-redis/v9": "9.5.1",
			"go.uber.org/zap":              "1.27.0",
			"github.com/stretchr/testify":  "1.9.0",
			"github.com/acme/private-sdk":  "0.4.0",
			"golang.org/x/sys":             "0.18.0",
			"github.com/davecgh/go-spew":   "1.1.1",
		},
	}, nil)

	for _, name := range []string{"GORM", "PostgreSQL", "Redis", "Zap", "Testify"} {
		if _, ok := stack.Recognized[name]; !ok {
			t.Errorf("missing %q in %v", name, stack.Recognized)
		}
	}
	if got := stack.Recognized["Redis"].Version; got != "9.5.1" {
		t.Errorf("Redis version = %q, want 9.5.1 (versioned module path)", got)
	}
	if _, ok := stack.Recognized["chi"]; ok {
		t.Error("framework key classified as a stack technology")
	}
	if want := []string{"github.com/acme/private-sdk"}; !reflect.DeepEqual(stack.Unrecognized, want) {
		t.Errorf("Unrecognized = %v, want %v", stack.Unrecognized, want)
	}
}
