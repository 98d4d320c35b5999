package main

import (
	"fmt"
	"os"

	"github.com/zhubert/pfp/cmd"
	"github.com/zhubert/pfp/internal/errors"
	"github.com/zhubert/pfp/internal/logger"
)

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)

	// Ensure logger is closed on exit
	defer logger.Close()

	if err := cmd.Execute(); err != nil {
		// Backing out of the picker is not a failure.
		if errors.Is(err, errors.KindCancelled) {
			logger.Debug("cancelled: %v", err)
			return
		}
		fmt.Fprintln(os.Stderr, cmd.ErrorStyle().Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
