// Package picker composes the scanner and the selector: it resolves the
// configured rule sets, classifies every root, and hands the resulting
// list to fzf.
package picker

import (
	"strings"

	"github.com/zhubert/pfp/internal/config"
	"github.com/zhubert/pfp/internal/fzf"
	"github.com/zhubert/pfp/internal/logger"
	"github.com/zhubert/pfp/internal/scan"
)

// Candidates returns the qualifying paths for every include entry, in a
// single deduplicated, insertion-ordered result.
func Candidates(cfg *config.Config) (*scan.Result, error) {
	rules, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	out := scan.NewResult()
	for _, rs := range rules {
		if err := scan.Run(rs, out); err != nil {
			return nil, err
		}
	}
	logger.Debug("classified %d candidate paths", out.Len())
	return out, nil
}

// PickProject scans per the config and lets the user choose one path.
func PickProject(cfg *config.Config) (string, error) {
	candidates, err := Candidates(cfg)
	if err != nil {
		return "", err
	}

	pick, err := fzf.Select(candidates.Join(), fzf.Options{
		Header:        "Projects:",
		Layout:        "reverse",
		Preview:       "tree -C {}",
		PreviewWindow: "right:nohidden",
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pick), nil
}
