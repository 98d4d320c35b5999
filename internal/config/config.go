// Package config holds the pfp configuration: global marker/ignore
// defaults, the include entries describing what to scan, and the
// predefined sessions for the start command. The on-disk format is JSONC.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/zhubert/pfp/internal/errors"
	"github.com/zhubert/pfp/internal/scan"
)

// DefaultPath is the config location used when --config is not given.
// It is expanded before use.
const DefaultPath = "${XDG_CONFIG_HOME}/pfp/config.json"

// NameSet is a set of exact names plus regular-expression patterns, used
// for both markers and ignore lists.
type NameSet struct {
	Exact   []string `json:"exact"`
	Pattern []string `json:"pattern"`
}

// IncludeEntry describes one scanned location. Absent fields fall back to
// the top-level values (pointer fields) or to documented defaults.
type IncludeEntry struct {
	Paths               []string `json:"paths"`
	Mode                string   `json:"mode,omitempty"`
	Markers             NameSet  `json:"markers,omitempty"`
	ChainRootMarkers    *bool    `json:"chain_root_markers,omitempty"`
	Ignore              NameSet  `json:"ignore,omitempty"`
	ChainRootIgnore     *bool    `json:"chain_root_ignore,omitempty"`
	TraverseHidden      *bool    `json:"traverse_hidden,omitempty"`
	YieldOnMarker       *bool    `json:"yield_on_marker,omitempty"`
	IncludeIntermediate *bool    `json:"include_intermediate_paths,omitempty"`
	Depth               *uint8   `json:"depth,omitempty"`
}

// Session is a predefined tmux session for the start command: a name and
// the working directories of its windows.
type Session struct {
	Name    string   `json:"name"`
	Windows []string `json:"windows"`
}

// String renders the session for the selector's preview pane.
func (s Session) String() string {
	return fmt.Sprintf("%s: %s", s.Name, strings.Join(s.Windows, ", "))
}

// Config is the root configuration document.
type Config struct {
	Markers        NameSet        `json:"markers"`
	Ignore         NameSet        `json:"ignore"`
	TraverseHidden bool           `json:"traverse_hidden"`
	YieldOnMarker  bool           `json:"yield_on_marker"`
	Include        []IncludeEntry `json:"include"`
	Sessions       []Session      `json:"sessions,omitempty"`
}

// Default markers are version-control and build-manifest sentinel names;
// default ignores are common vendor and build directories.
var (
	defaultMarkers = []string{".git", "Cargo.toml", "package.json", "go.mod"}
	defaultIgnore  = []string{
		"node_modules", "venv", "bin", "target", "debug",
		"src", "test", "tests", "lib", "docs", "pkg",
	}
)

// Default returns the configuration used when no config file exists:
// marker-mode scan of $HOME with the default markers and ignores.
func Default() *Config {
	return &Config{
		Markers:       NameSet{Exact: defaultMarkers},
		Ignore:        NameSet{Exact: defaultIgnore},
		YieldOnMarker: true,
		Include:       []IncludeEntry{{Paths: []string{"$HOME"}}},
	}
}

// Load reads and parses the JSONC config at path. Absent top-level fields
// keep their defaults; include entries are taken as written.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Unmarshal over the defaults so absent fields keep them.
	cfg := Default()
	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural constraints that Resolve does not cover.
func (c *Config) Validate() error {
	for i, entry := range c.Include {
		if len(entry.Paths) == 0 {
			return errors.ConfigInvalid(fmt.Sprintf("include entry %d has no paths", i))
		}
		if _, err := scan.ParseMode(entry.Mode); err != nil {
			return err
		}
	}
	for i, s := range c.Sessions {
		if s.Name == "" {
			return errors.ConfigInvalid(fmt.Sprintf("session %d has no name", i))
		}
	}
	return nil
}

// Per-entry fallbacks.

func (e *IncludeEntry) chainRootMarkers() bool {
	return e.ChainRootMarkers == nil || *e.ChainRootMarkers
}

func (e *IncludeEntry) chainRootIgnore() bool {
	return e.ChainRootIgnore == nil || *e.ChainRootIgnore
}

func (e *IncludeEntry) traverseHidden(global bool) bool {
	if e.TraverseHidden == nil {
		return global
	}
	return *e.TraverseHidden
}

func (e *IncludeEntry) yieldOnMarker(global bool) bool {
	if e.YieldOnMarker == nil {
		return global
	}
	return *e.YieldOnMarker
}

func (e *IncludeEntry) includeIntermediate() bool {
	return e.IncludeIntermediate == nil || *e.IncludeIntermediate
}

func (e *IncludeEntry) depth() uint8 {
	if e.Depth == nil {
		return ^uint8(0)
	}
	return *e.Depth
}
