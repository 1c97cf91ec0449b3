package php

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

func writeComposer(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, "composer.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseManifest(t *testing.T) {
	root := t.TempDir()
	writeComposer(t, root, `{
		"name": "acme/shop",
		"require": {
			"php": "^8.2",
			"laravel/framework": "^11.0",
			"guzzlehttp/guzzle": "^7.8",
			"ext-redis": "*",
			"ext-json": "*",
			"ext-mbstring": "*"
		},
		"require-dev": {
			"phpunit/phpunit": "^11.0"
		},
		"scripts": {
			"test": "phpunit",
			"check": ["phpstan analyse", "pint --test"]
		}
	}`)

	m, err := New().ParseManifest(root)
	if err != nil {
		t.Fatalf("ParseManifest() error: %v", err)
	}

	if m.Name != "acme/shop" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Engines["php"] != "^8.2" {
		t.Errorf("Engines[php] = %q, want ^8.2", m.Engines["php"])
	}
	if _, ok := m.Dependencies["php"]; ok {
		t.Error("php runtime constraint leaked into the dependency map")
	}
	if m.Dependencies["laravel/framework"] != "11.0" {
		t.Errorf("laravel = %q, want 11.0", m.Dependencies["laravel/framework"])
	}
	if m.Dependencies["ext-redis"] != detect.Unspecified {
		t.Errorf("ext-redis = %q, want kept as unspecified (infra extension)", m.Dependencies["ext-redis"])
	}
	if _, ok := m.Dependencies["ext-json"]; ok {
		t.Error("platform extension ext-json should be dropped")
	}
	if m.DevDependencies["phpunit/phpunit"] != "11.0" {
		t.Errorf("phpunit = %q, want 11.0", m.DevDependencies["phpunit/phpunit"])
	}
	if m.Scripts["test"] != "phpunit" {
		t.Errorf("Scripts[test] = %q", m.Scripts["test"])
	}
	if m.Scripts["check"] != "phpstan analyse && pint --test" {
		t.Errorf("Scripts[check] = %q, want joined command list", m.Scripts["check"])
	}
	if m.PackageManager != "composer" {
		t.Errorf("PackageManager = %q, want composer", m.PackageManager)
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
	writeComposer(t, root, `{"name": "broken"`)

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
		{"laravel", map[string]string{"laravel/framework": "11.0"}, "Laravel"},
		{"symfony bundle", map[string]string{"symfony/framework-bundle": "7.0.5"}, "Symfony"},
		{"symfony components only", map[string]string{"symfony/console": "7.0.5"}, ""},
		{"slim", map[string]string{"slim/slim": "4.13.0"}, "Slim"},
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
			"laravel/framework": "11.0",
			"laravel/sanctum":   "4.0.1",
			"guzzlehttp/guzzle": "7.8.1",
			"predis/predis":     "2.2.2",
			"ext-redis":         detect.Unspecified,
			"symfony/console":   "7.0.5",
			"acme/internal-sdk": "2.0.0",
		},
		DevDependencies: map[string]string{
			"phpunit/phpunit": "11.0.4",
			"laravel/pint":    "1.15.1",
		},
	}, nil)

	for _, name := range []string{"Sanctum", "Guzzle", "Redis", "PHPUnit", "Pint"} {
		if _, ok := stack.Recognized[name]; !ok {
			t.Errorf("missing %q in %v", name, stack.Recognized)
		}
	}
	if got := stack.Recognized["Redis"].Version; got != "2.2.2" {
		t.Errorf("Redis version = %q, want 2.2.2 (client library, not extension)", got)
	}
	if _, ok := stack.Recognized["Laravel"]; ok {
		t.Error("framework key classified as a stack technology")
	}
	if len(stack.Unrecognized) != 1 || stack.Unrecognized[0] != "acme/internal-sdk" {
		t.Errorf("Unrecognized = %v, want [acme/internal-sdk]", stack.Unrecognized)
	}
}
