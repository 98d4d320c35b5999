package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/pfp/internal/config"
	"github.com/zhubert/pfp/internal/expand"
	"github.com/zhubert/pfp/internal/fzf"
	"github.com/zhubert/pfp/internal/logger"
	"github.com/zhubert/pfp/internal/tmux"
)

var startAttach bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start predefined sessions from the config",
	Long: `Start presents the sessions defined in the config file, creates the
ones you pick (each window rooted at its configured directory), and skips any
that already exist.`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVarP(&startAttach, "attach", "a", false, "attach to tmux afterwards")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Sessions) == 0 {
		// Nothing predefined, just bring up tmux.
		return tmux.Attach(true, startAttach)
	}

	existing, err := tmux.ListSessions("#S")
	if err != nil {
		// No running server means nothing exists yet.
		logger.Debug("list-sessions failed, assuming no server: %v", err)
		existing = nil
	}

	names := make([]string, len(cfg.Sessions))
	legend := make([]string, len(cfg.Sessions))
	byName := make(map[string]config.Session, len(cfg.Sessions))
	for i, s := range cfg.Sessions {
		names[i] = s.Name
		legend[i] = s.String()
		byName[s.Name] = s
	}

	pick, err := fzf.Select(strings.Join(names, "\n"), fzf.Options{
		Header:        "Sessions to start:",
		Layout:        "reverse",
		Preview:       "echo '" + strings.Join(legend, "\n") + "'",
		PreviewWindow: "right:nohidden",
		Multi:         true,
	})
	if err != nil {
		return err
	}

	for _, name := range strings.Split(pick, "\n") {
		if slices.Contains(existing, name) || tmux.HasSession(name) {
			fmt.Printf("session %s exists\n", name)
			continue
		}
		if err := startSession(byName[name]); err != nil {
			return err
		}
	}
	return tmux.Attach(false, startAttach)
}

// startSession creates one detached session with a window per configured
// directory. A session with no windows gets a single window at $HOME.
func startSession(s config.Session) error {
	dirs, err := expand.All(s.Windows)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		home, err := expand.Expand("$HOME")
		if err != nil {
			return err
		}
		dirs = []string{home}
	}

	name := tmux.SessionName(s.Name)
	if err := tmux.NewSession(name, tmux.DisplayName(dirs[0]), dirs[0]); err != nil {
		return err
	}
	for _, dir := range dirs[1:] {
		ref, err := tmux.NewWindowDetached(tmux.DisplayName(dir), dir)
		if err != nil {
			return err
		}
		if err := tmux.MoveWindow(ref, name); err != nil {
			return err
		}
	}
	return tmux.RenumberWindows(name)
}
