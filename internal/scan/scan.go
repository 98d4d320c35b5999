// Package scan implements the directory-tree classifier behind the project
// picker. Given a resolved rule set it walks each root depth-first and
// collects the paths that qualify: directories containing a marker name in
// DirectoryMarker mode, or plain files in FileListing mode. Inclusion
// propagates upward so the picker can show the chain from a root down to
// every match.
package scan

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zhubert/pfp/internal/errors"
	"github.com/zhubert/pfp/internal/logger"
)

// Mode selects the traversal strategy.
type Mode int

const (
	// DirectoryMarker yields directories whose direct children include a
	// marker name.
	DirectoryMarker Mode = iota
	// FileListing yields every non-ignored, non-hidden file; markers are
	// not consulted.
	FileListing
)

// ParseMode maps the configuration spelling of a mode to its value.
// The empty string means DirectoryMarker.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "markers":
		return DirectoryMarker, nil
	case "files":
		return FileListing, nil
	default:
		return 0, errors.ConfigInvalid("unknown mode " + strconv.Quote(s))
	}
}

// RuleSet is one fully resolved include entry: chaining with the global
// defaults has already happened and all paths are expanded. It is immutable
// for the duration of a scan.
type RuleSet struct {
	Paths               []string
	Mode                Mode
	Markers             Matcher
	Ignore              Matcher
	Depth               uint8
	IncludeIntermediate bool
	YieldOnMarker       bool
	TraverseHidden      bool
}

// Result is an insertion-ordered set of qualifying paths. Multiple rule
// sets may share one Result; a path reachable through overlapping roots is
// recorded once.
type Result struct {
	paths []string
	seen  map[string]struct{}
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{seen: make(map[string]struct{})}
}

// Add records path unless it is already present.
func (r *Result) Add(path string) {
	if _, ok := r.seen[path]; ok {
		return
	}
	r.seen[path] = struct{}{}
	r.paths = append(r.paths, path)
}

// Contains reports whether path has been recorded.
func (r *Result) Contains(path string) bool {
	_, ok := r.seen[path]
	return ok
}

// Len returns the number of recorded paths.
func (r *Result) Len() int {
	return len(r.paths)
}

// Paths returns the recorded paths in insertion order.
func (r *Result) Paths() []string {
	return r.paths
}

// Join returns the recorded paths newline-joined, the form the selector
// consumes.
func (r *Result) Join() string {
	return strings.Join(r.paths, "\n")
}

// Run scans every root of rules into out. Roots are scanned to completion
// one after another; a root configured with IncludeIntermediate is pushed
// unconditionally before its scan so it is always browsable, even when
// nothing under it matches.
func Run(rules RuleSet, out *Result) error {
	s := &scanner{rules: rules, out: out}
	for _, root := range rules.Paths {
		if rules.IncludeIntermediate {
			out.Add(root)
		}
		if _, err := s.classify(root, 0); err != nil {
			return err
		}
	}
	return nil
}

// scanner holds the per-scan state threaded through the recursion.
type scanner struct {
	rules RuleSet
	out   *Result
}

// classify reports whether path qualifies for inclusion, directly or via a
// qualifying descendant, recording qualifying paths into the output along
// the way. The returned flag always reflects qualification even when the
// rule set withholds the recording, so propagation and recording stay
// decoupled.
func (s *scanner) classify(path string, depth uint8) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		// Permission-denied and race-deleted directories are excluded,
		// not fatal.
		logger.Debug("unreadable directory %s: %v", path, err)
		return false, nil
	}

	for _, entry := range entries {
		if !utf8.ValidString(entry.Name()) {
			return false, errors.ScanBadName(path)
		}
	}

	markerMatched := false
	if s.rules.Mode == DirectoryMarker {
		for _, entry := range entries {
			if s.rules.Markers.Match(entry.Name()) {
				logger.Debug("marker %s matched in %s", entry.Name(), path)
				markerMatched = true
				if s.rules.YieldOnMarker {
					// Short-circuit: the subtree is not explored.
					s.out.Add(path)
					return true, nil
				}
				break
			}
		}
	}

	if depth >= s.rules.Depth {
		// A marker matched at the depth limit is still recorded.
		if markerMatched {
			s.out.Add(path)
		}
		return markerMatched, nil
	}

	yields := markerMatched
	for _, entry := range entries {
		name := entry.Name()
		if s.rules.Ignore.Match(name) {
			continue
		}
		if !s.rules.TraverseHidden && strings.HasPrefix(name, ".") {
			continue
		}

		childPath := filepath.Join(path, name)
		isDir, isFile := s.resolveType(childPath, entry)
		switch {
		case isDir:
			childYields, err := s.classify(childPath, depth+1)
			if err != nil {
				return false, err
			}
			if childYields {
				yields = true
			}
		case isFile && s.rules.Mode == FileListing:
			s.out.Add(childPath)
			yields = true
		}
	}

	if s.rules.IncludeIntermediate {
		if yields {
			s.out.Add(path)
		}
	} else if markerMatched {
		// Leaf-only recording: the path qualifies by its own marker;
		// ancestors that qualify only through descendants are withheld.
		s.out.Add(path)
	}
	return yields, nil
}

// resolveType resolves a directory entry to (directory, regular file) after
// following symlinks. Broken symlinks resolve to neither. A symlink whose
// target is an ancestor of the link would recurse forever, so it also
// resolves to neither.
func (s *scanner) resolveType(path string, entry os.DirEntry) (isDir, isFile bool) {
	mode := entry.Type()
	if mode&os.ModeSymlink == 0 {
		return mode.IsDir(), mode.IsRegular()
	}

	info, err := os.Stat(path)
	if err != nil {
		logger.Debug("skipping broken symlink %s: %v", path, err)
		return false, false
	}
	if !info.IsDir() {
		return false, info.Mode().IsRegular()
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		logger.Debug("skipping unresolvable symlink %s: %v", path, err)
		return false, false
	}
	parent, err := filepath.EvalSymlinks(filepath.Dir(path))
	if err != nil {
		return false, false
	}
	if isAncestor(target, parent) {
		logger.Debug("skipping cyclic symlink %s -> %s", path, target)
		return false, false
	}
	return true, false
}

// isAncestor reports whether dir equals path or contains it.
func isAncestor(dir, path string) bool {
	if dir == path {
		return true
	}
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return strings.HasPrefix(path, dir)
}
