package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zhubert/pfp/internal/picker"
	"github.com/zhubert/pfp/internal/tmux"
)

var newSessionCmd = &cobra.Command{
	Use:   "new-session",
	Short: "Pick a path and create a new tmux session",
	RunE:  runNewSession,
}

func init() {
	rootCmd.AddCommand(newSessionCmd)
}

func runNewSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pick, err := picker.PickProject(cfg)
	if err != nil {
		return err
	}

	windowName := tmux.DisplayName(pick)
	sessionName := tmux.SessionName(windowName)
	if err := tmux.NewSession(sessionName, windowName, pick); err != nil {
		return err
	}
	return tmux.SwitchTo(sessionName + ":1")
}
