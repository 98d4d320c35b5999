package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zhubert/pfp/internal/picker"
	"github.com/zhubert/pfp/internal/tmux"
)

var newWindowCmd = &cobra.Command{
	Use:   "new-window",
	Short: "Pick a path and create a new tmux window",
	RunE:  runNewWindow,
}

func init() {
	rootCmd.AddCommand(newWindowCmd)
}

func runNewWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pick, err := picker.PickProject(cfg)
	if err != nil {
		return err
	}
	return tmux.NewWindow(tmux.DisplayName(pick), pick)
}
