package config

import (
	"github.com/zhubert/pfp/internal/expand"
	"github.com/zhubert/pfp/internal/scan"
)

// Resolve merges each include entry with the global defaults and compiles
// it into a scan.RuleSet: chaining applied, patterns compiled, paths
// expanded. The classifier then runs against one resolved value instead of
// consulting two configuration levels at match time. Any invalid pattern
// or unresolvable path fails here, before traversal starts.
func (c *Config) Resolve() ([]scan.RuleSet, error) {
	rules := make([]scan.RuleSet, 0, len(c.Include))
	for i := range c.Include {
		entry := &c.Include[i]

		markerExact := entry.Markers.Exact
		markerPattern := entry.Markers.Pattern
		if entry.chainRootMarkers() {
			markerExact = append(markerExact[:len(markerExact):len(markerExact)], c.Markers.Exact...)
			markerPattern = append(markerPattern[:len(markerPattern):len(markerPattern)], c.Markers.Pattern...)
		}
		markers, err := scan.NewMatcher(markerExact, markerPattern)
		if err != nil {
			return nil, err
		}

		ignoreExact := entry.Ignore.Exact
		ignorePattern := entry.Ignore.Pattern
		if entry.chainRootIgnore() {
			ignoreExact = append(ignoreExact[:len(ignoreExact):len(ignoreExact)], c.Ignore.Exact...)
			ignorePattern = append(ignorePattern[:len(ignorePattern):len(ignorePattern)], c.Ignore.Pattern...)
		}
		ignore, err := scan.NewMatcher(ignoreExact, ignorePattern)
		if err != nil {
			return nil, err
		}

		mode, err := scan.ParseMode(entry.Mode)
		if err != nil {
			return nil, err
		}

		paths, err := expand.All(entry.Paths)
		if err != nil {
			return nil, err
		}

		rules = append(rules, scan.RuleSet{
			Paths:               paths,
			Mode:                mode,
			Markers:             markers,
			Ignore:              ignore,
			Depth:               entry.depth(),
			IncludeIntermediate: entry.includeIntermediate(),
			YieldOnMarker:       entry.yieldOnMarker(c.YieldOnMarker),
			TraverseHidden:      entry.traverseHidden(c.TraverseHidden),
		})
	}
	return rules, nil
}
