// Package detect implements multi-ecosystem technology detection.
//
// Given a project root, the package sniffs which programming-language
// ecosystem the project belongs to from the manifest files present, parses
// that ecosystem's manifest format(s) into a uniform dependency map,
// identifies the application framework in use, and classifies every
// dependency into a canonical technology name and category using ordered
// rule tables.
//
// # Architecture
//
// Each ecosystem is served by one [Adapter] implementation living in its own
// subpackage (javascript, python, rust, golang, java, php). Adapters are
// independent implementations of one explicit interface; there is no shared
// base with overridable defaults, which keeps each ecosystem's quirks
// isolated. A [Registry] resolves the adapter for a detected ecosystem.
//
// # Flow
//
//	detection, err := detect.DetectEcosystem(root)
//	adapter, err := registry.Resolve(detection.Ecosystem)
//	manifest, err := adapter.ParseManifest(root)
//	framework := adapter.DetectFramework(manifest, facts)
//	stack := adapter.ClassifyStack(manifest, facts)
//
// Or all at once via [Analyze], which also stamps the result with an ID and
// timestamp for downstream consumers.
//
// All results are created fresh per invocation and are read-only once
// constructed; concurrent analyses of different projects share no state.
package detect
