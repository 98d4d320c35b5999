package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zhubert/pfp/internal/logger"
	"github.com/zhubert/pfp/internal/tmux"
)

var killSessionCmd = &cobra.Command{
	Use:   "kill-session",
	Short: "Kill the current session and switch to the last/previous one",
	RunE:  runKillSession,
}

func init() {
	rootCmd.AddCommand(killSessionCmd)
}

func runKillSession(cmd *cobra.Command, args []string) error {
	name, err := tmux.CurrentSession()
	if err != nil {
		return err
	}

	// Move the client off the session before killing it; fall back to the
	// previous session when there is no last one.
	if err := tmux.SwitchLast(); err != nil {
		logger.Debug("switch-client -l failed, trying previous: %v", err)
		if err := tmux.SwitchPrevious(); err != nil {
			logger.Debug("switch-client -p failed: %v", err)
		}
	}
	return tmux.KillSession(name)
}
