package tmux

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// displayPrefixWidth is how many cells of the parent segment survive in a
// window name.
const displayPrefixWidth = 4

// DisplayName derives a short window name from a path: the last two
// segments with the first truncated to 4 cells, so
// /Users/alice/projects/my-app becomes proj/my-app. Paths with fewer than
// two segments pass through unchanged.
func DisplayName(path string) string {
	parts := strings.Split(strings.TrimRight(path, "/"), "/")
	if len(parts) < 3 {
		// No parent segment to abbreviate.
		return path
	}
	parent := parts[len(parts)-2]
	base := parts[len(parts)-1]
	return runewidth.Truncate(parent, displayPrefixWidth, "") + "/" + base
}

// SessionName derives a tmux session name from a display name by stripping
// dots: tmux reinterprets a dot in a target as window syntax.
func SessionName(displayName string) string {
	return strings.ReplaceAll(displayName, ".", "")
}
