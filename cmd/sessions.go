package cmd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/pfp/internal/fzf"
	"github.com/zhubert/pfp/internal/tmux"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Pick an active session to switch to",
	RunE:  runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	current, err := tmux.CurrentWindow()
	if err != nil {
		return err
	}
	lines, err := tmux.ListSessions("#S:#I,#{session_id}")
	if err != nil {
		return err
	}
	targets := sortSessionTargets(lines)
	pos := cursorIndex(targets, current)

	pick, err := fzf.Select(strings.Join(targets, "\n"), fzf.Options{
		Header:        "Sessions:",
		Layout:        "reverse",
		Preview:       "tmux capture-pane -ept {}",
		PreviewWindow: "right:nohidden",
		Sync:          true,
		InitialPos:    pos + 1,
	})
	if err != nil {
		return err
	}
	return tmux.SwitchTo(strings.TrimSpace(pick))
}

// sortSessionTargets takes "session:window,$id" lines and returns the
// session:window targets ordered by session id, which is creation order
// rather than tmux's alphabetical default.
func sortSessionTargets(lines []string) []string {
	type entry struct {
		target string
		id     int
	}
	entries := make([]entry, 0, len(lines))
	for _, line := range lines {
		target, rawID, found := strings.Cut(line, ",")
		if !found {
			entries = append(entries, entry{target: line})
			continue
		}
		id, _ := strconv.Atoi(strings.TrimPrefix(rawID, "$"))
		entries = append(entries, entry{target: target, id: id})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].id < entries[j].id
	})
	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = e.target
	}
	return targets
}

// cursorIndex returns the position of the current window in targets so the
// picker can start with it highlighted. Unknown targets land on the first
// entry.
func cursorIndex(targets []string, current string) int {
	for i, t := range targets {
		if t == current {
			return i
		}
	}
	return 0
}
