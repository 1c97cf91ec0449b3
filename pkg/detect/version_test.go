package detect

import "testing"

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", Unspecified},
		{"   ", Unspecified},
		{"*", "unknown"},
		{"x", "unknown"},
		{"X", "unknown"},
		{"latest", "unknown"},
		{"^2.3.1", "2.3.1"},
		{"~1.4", "1.4"},
		{">=2.3,<3", "2.3"},
		{">= 1.21", "1.21"},
		{"==2.28.1", "2.28.1"},
		{"1.2.3", "1.2.3"},
		{"1.2", "1.2"},
		{"v1.9.0", "1.9.0"},
		{"1.0.0-beta.1", "1.0.0-beta.1"},
		{"${spring.version}", "${spring.version}"},
		{"workspace:*", "workspace:*"},
		{"^0.34.6", "0.34.6"},
		{"5.x", "5.x"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeVersion(tt.raw); got != tt.want {
				t.Errorf("NormalizeVersion(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeVersionIdempotent(t *testing.T) {
	inputs := []string{"^2.3.1", "~0.9", "*", ">=3.11", "1.2.3", "${prop}", "", "latest"}

	for _, raw := range inputs {
		once := NormalizeVersion(raw)
		twice := NormalizeVersion(once)
		if once != twice {
			t.Errorf("NormalizeVersion not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	raw := map[string]string{
		"react":    "^18.2.0",
		"lodash":   "",
		"fastify":  "*",
		"left-pad": "1.3.0",
	}

	got := NormalizeAll(raw)

	want := DependencyMap{
		"react":    "18.2.0",
		"lodash":   Unspecified,
		"fastify":  "unknown",
		"left-pad": "1.3.0",
	}
	if len(got) != len(want) {
		t.Fatalf("NormalizeAll() returned %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("NormalizeAll()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
