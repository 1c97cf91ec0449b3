package detect

// Ecosystem identifies a programming-language dependency convention.
type Ecosystem string

// Supported ecosystems. Ruby is recognized by the detector but has no
// adapter yet; resolving it yields an UNSUPPORTED_ECOSYSTEM error.
const (
	JavaScript Ecosystem = "javascript"
	Python     Ecosystem = "python"
	Rust       Ecosystem = "rust"
	Go         Ecosystem = "go"
	Java       Ecosystem = "java"
	PHP        Ecosystem = "php"
	Ruby       Ecosystem = "ruby"
)

// Confidence indicates how authoritative an ecosystem match is, based on
// which manifest filename triggered it.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Unspecified is the sentinel version for dependencies declared without a
// version constraint.
const Unspecified = "unspecified"

// DependencyMap maps a dependency identifier (npm package name, PyPI name,
// crate name, Go module path, Maven group:artifact, Composer package name)
// to a normalized version string or [Unspecified]. Produced fresh on every
// parse and never mutated after construction.
type DependencyMap map[string]string

// Has reports whether the map contains the given key.
func (m DependencyMap) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// ManifestResult is the uniform parse output shared by all ecosystems.
// It is owned exclusively by the call that produced it and is immutable
// afterward.
type ManifestResult struct {
	// Name is the project name as declared in the manifest, if any.
	Name string `json:"name,omitempty"`
	// Version is the project's own version, if declared.
	Version string `json:"version,omitempty"`
	// Dependencies are runtime dependencies.
	Dependencies DependencyMap `json:"dependencies"`
	// DevDependencies are development-only dependencies.
	DevDependencies DependencyMap `json:"dev_dependencies"`
	// BuildDependencies holds peer/build/indirect dependencies; the exact
	// meaning is ecosystem-specific (npm peerDependencies, Cargo
	// build-dependencies, Go indirect requirements, Maven provided scope).
	BuildDependencies DependencyMap `json:"build_dependencies,omitempty"`
	// Scripts maps command names to invocation strings.
	Scripts map[string]string `json:"scripts,omitempty"`
	// Engines maps runtime/toolchain names to version constraints
	// (node, python, php, go, rust).
	Engines map[string]string `json:"engines,omitempty"`
	// PackageManager is the detected package manager, when inferable.
	PackageManager string `json:"package_manager,omitempty"`
	// Workspaces lists workspace/member sub-paths, when declared.
	Workspaces []string `json:"workspaces,omitempty"`
}

// AllDependencies returns a merged view of runtime and dev dependencies.
// Runtime entries win on key collision. The receiver is not modified.
func (m *ManifestResult) AllDependencies() DependencyMap {
	merged := make(DependencyMap, len(m.Dependencies)+len(m.DevDependencies))
	for k, v := range m.DevDependencies {
		merged[k] = v
	}
	for k, v := range m.Dependencies {
		merged[k] = v
	}
	return merged
}

// FrameworkInfo describes the identified application framework.
// At most one framework is reported per project; absence is represented by
// a nil pointer, never by a placeholder value.
type FrameworkInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	// Variant tags a framework flavor, e.g. the Next.js routing paradigm.
	Variant string `json:"variant,omitempty"`
}

// Category tags a recognized technology's role in the stack.
type Category string

// Common categories. The set is open; adapters may introduce their own.
const (
	CategoryORM           Category = "orm"
	CategoryDatabase      Category = "database"
	CategoryCache         Category = "cache"
	CategoryAuth          Category = "auth"
	CategoryTesting       Category = "testing"
	CategoryStyling       Category = "styling"
	CategoryState         Category = "state"
	CategoryAPI           Category = "api"
	CategoryHTTP          Category = "http"
	CategoryUI            Category = "ui"
	CategoryBuild         Category = "build"
	CategoryLint          Category = "lint"
	CategoryValidation    Category = "validation"
	CategoryMessaging     Category = "messaging"
	CategoryLogging       Category = "logging"
	CategorySerialization Category = "serialization"
	CategoryTemplating    Category = "templating"
	CategoryCLI           Category = "cli"
	CategoryConfig        Category = "config"
	CategoryObservability Category = "observability"
	CategoryRuntime       Category = "runtime"
)

// RecognizedTech is one detected technology. The canonical name is unique
// within a single analysis: the first rule to claim it wins and later rules
// for the same name are skipped.
type RecognizedTech struct {
	Name     string   `json:"name"`
	Version  string   `json:"version,omitempty"`
	Category Category `json:"category"`
}

// DetectedStack is the classifier output. Every raw dependency key from the
// manifest lands in exactly one bucket: a recognized rule's trigger set, the
// framework key set, the known-noise set, or Unrecognized.
type DetectedStack struct {
	Recognized   map[string]RecognizedTech `json:"recognized"`
	Unrecognized []string                  `json:"unrecognized"`
}

// EcosystemDetection is the result of ecosystem sniffing.
type EcosystemDetection struct {
	Ecosystem    Ecosystem  `json:"ecosystem"`
	Confidence   Confidence `json:"confidence"`
	MatchedFiles []string   `json:"matched_files"`
	Reason       string     `json:"reason"`
}

// FilePatterns describes, per ecosystem, which directories to skip during a
// filesystem walk and which file extensions count as source code.
type FilePatterns struct {
	IgnoreDirs []string `json:"ignore_dirs"`
	SourceExts []string `json:"source_exts"`
}

// StructureFacts is a read-only fact sheet about which directories and
// marker files exist at the project root. Framework detectors and classifier
// condition functions consume it; they never walk the filesystem themselves.
type StructureFacts struct {
	HasComponentsDir bool `json:"has_components_dir"`
	HasAppDir        bool `json:"has_app_dir"`
	HasPagesDir      bool `json:"has_pages_dir"`
	HasSrcDir        bool `json:"has_src_dir"`
	HasMigrationsDir bool `json:"has_migrations_dir"`
	HasTestsDir      bool `json:"has_tests_dir"`
	HasDockerfile    bool `json:"has_dockerfile"`
	HasEnvExample    bool `json:"has_env_example"`
}
