// Package cmd defines the pfp command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/pfp/internal/config"
	"github.com/zhubert/pfp/internal/expand"
	"github.com/zhubert/pfp/internal/logger"
)

var (
	cfgPath               string
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "pfp",
	Short: "Manage your projects with tmux sessions and windows",
	Long: `Pfp scans your configured project roots for directories that look like
projects, lets you pick one with fzf, and drops you into a tmux session
or window rooted there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare pfp prints help.
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "config file full path")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to warnings only")
}

func initLogging() {
	switch {
	case debugMode:
		logger.SetLevel(logger.LevelDebug)
	case quietMode:
		logger.SetLevel(logger.LevelWarn)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("pfp %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("pfp %s\n", version)
}

// loadConfig expands the --config path and loads the file. A missing or
// unparseable file at the default path falls back to the default config
// with a notice; at an explicitly given path it is fatal.
func loadConfig() (*config.Config, error) {
	path, err := expand.Expand(cfgPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		if cfgPath == config.DefaultPath {
			fmt.Fprintln(os.Stderr, noticeStyle.Render(fmt.Sprintf("%v, using default config", err)))
			logger.Info("no config at %s, using defaults", path)
			return config.Default(), nil
		}
		return nil, err
	}
	logger.Debug("loaded config from %s", path)
	return cfg, nil
}
