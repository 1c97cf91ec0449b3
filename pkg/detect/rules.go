package detect

import (
	"sort"
	"strings"
)

// Rule is one declarative classification record. Ecosystem rule tables are
// ordered lists of these; adding a technology is a data addition, not a
// control-flow change.
type Rule struct {
	// Triggers are the raw dependency keys that identify this technology.
	Triggers []string
	// Name is the canonical technology name recorded on a match.
	Name string
	// Category tags the technology's role.
	Category Category
	// RequireAll demands that every trigger key be present. Used by umbrella
	// rules (e.g. a design-system wrapper) that must not fire on a single
	// shared low-level dependency.
	RequireAll bool
	// Condition, when set, must return true for the rule to fire. Used for
	// rules that need corroborating evidence beyond dependency presence.
	Condition func(manifest *ManifestResult, facts *StructureFacts) bool
	// VersionFrom designates which trigger key's version to report.
	// Defaults to the first present trigger.
	VersionFrom string
}

// NoiseList identifies dependencies that are not meaningful technology
// choices: transitively-pulled low-level packages, type-only or polyfill
// packages, build-tool self-references. Noise keys are excluded from both
// recognized and unrecognized reporting.
type NoiseList struct {
	Exact    map[string]struct{}
	Prefixes []string
}

// NewNoiseList builds a NoiseList from exact names and prefixes.
func NewNoiseList(exact []string, prefixes []string) NoiseList {
	set := make(map[string]struct{}, len(exact))
	for _, name := range exact {
		set[name] = struct{}{}
	}
	return NoiseList{Exact: set, Prefixes: prefixes}
}

// Matches reports whether key is known noise.
func (n NoiseList) Matches(key string) bool {
	if _, ok := n.Exact[key]; ok {
		return true
	}
	for _, p := range n.Prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// KeyMatcher resolves a rule trigger against the dependency map, returning
// the raw key that satisfied it. The default matcher is exact equality; the
// Go adapter supplies a hierarchical matcher where a trigger also matches
// path-with-trailing-subpath module keys.
type KeyMatcher func(deps DependencyMap, trigger string) (string, bool)

func exactMatch(deps DependencyMap, trigger string) (string, bool) {
	if _, ok := deps[trigger]; ok {
		return trigger, true
	}
	return "", false
}

// RuleSet bundles an ecosystem's ordered rules with its noise list and the
// set of framework package keys, which count as their own bucket when
// accounting for every raw dependency.
type RuleSet struct {
	Rules         []Rule
	Noise         NoiseList
	FrameworkKeys []string
	// MatchKey overrides trigger matching; nil means exact equality.
	MatchKey KeyMatcher
}

// Classify applies the rule table to the manifest's dependencies.
//
// The loop is inherently sequential: each rule depends on the claim state
// left by the rules before it. First rule wins per canonical name, and all
// of a matching rule's present triggers are claimed together so a low-level
// dependency implied by an umbrella match cannot later produce its own,
// less specific entry.
func (rs RuleSet) Classify(manifest *ManifestResult, facts *StructureFacts) *DetectedStack {
	match := rs.MatchKey
	if match == nil {
		match = exactMatch
	}

	all := manifest.AllDependencies()
	claimed := make(map[string]struct{})
	recognized := make(map[string]RecognizedTech)

	for _, rule := range rs.Rules {
		if _, done := recognized[rule.Name]; done {
			continue
		}

		present := make([]string, 0, len(rule.Triggers))
		unclaimedCount := 0
		for _, trigger := range rule.Triggers {
			raw, ok := match(all, trigger)
			if !ok {
				continue
			}
			present = append(present, raw)
			if _, c := claimed[raw]; !c {
				unclaimedCount++
			}
		}

		if len(present) == 0 {
			continue
		}
		if rule.RequireAll && len(present) < len(rule.Triggers) {
			continue
		}
		if unclaimedCount == 0 {
			continue
		}
		if rule.Condition != nil && !rule.Condition(manifest, facts) {
			continue
		}

		version := versionFor(rule, all, present, match)
		recognized[rule.Name] = RecognizedTech{
			Name:     rule.Name,
			Version:  version,
			Category: rule.Category,
		}
		for _, raw := range present {
			claimed[raw] = struct{}{}
		}
	}

	unrecognized := rs.residual(all, claimed, match)

	return &DetectedStack{
		Recognized:   recognized,
		Unrecognized: unrecognized,
	}
}

// versionFor picks the reported version: the designated VersionFrom trigger
// if present, otherwise the first present trigger. The sentinel for
// unconstrained dependencies is dropped from the report.
func versionFor(rule Rule, all DependencyMap, present []string, match KeyMatcher) string {
	key := present[0]
	if rule.VersionFrom != "" {
		if raw, ok := match(all, rule.VersionFrom); ok {
			key = raw
		}
	}
	v := all[key]
	if v == Unspecified {
		return ""
	}
	return v
}

// residual collects every raw key not claimed by a rule, not a framework
// package, and not known noise. Keys are emitted in sorted order so two runs
// over the same map produce identical output.
func (rs RuleSet) residual(all DependencyMap, claimed map[string]struct{}, match KeyMatcher) []string {
	frameworkClaimed := make(map[string]struct{})
	for _, key := range rs.FrameworkKeys {
		if raw, ok := match(all, key); ok {
			frameworkClaimed[raw] = struct{}{}
		}
	}

	unrecognized := []string{}
	for key := range all {
		if _, c := claimed[key]; c {
			continue
		}
		if _, f := frameworkClaimed[key]; f {
			continue
		}
		if rs.Noise.Matches(key) {
			continue
		}
		unrecognized = append(unrecognized, key)
	}
	sort.Strings(unrecognized)
	return unrecognized
}
