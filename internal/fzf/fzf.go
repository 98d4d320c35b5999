// Package fzf drives an external fzf process as the interactive selector.
// The candidate list goes in on stdin, the chosen line(s) come back on
// stdout; fzf draws its interface on the controlling terminal, so both
// pipes are free for data.
package fzf

import (
	goerrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/zhubert/pfp/internal/errors"
	"github.com/zhubert/pfp/internal/logger"
)

// Exit statuses defined by fzf: 1 means no match, 130 means interrupted
// with ctrl-c or esc. Both mean the user picked nothing.
const (
	exitNoMatch     = 1
	exitInterrupted = 130
)

// Options controls how the selection UI is presented.
type Options struct {
	Header        string
	Layout        string
	Preview       string
	PreviewWindow string
	Multi         bool
	Sync          bool
	InitialPos    int // 1-based cursor position; 0 leaves the cursor alone
}

func (o Options) args() []string {
	var args []string
	if o.Multi {
		args = append(args, "-m")
	}
	if o.Layout != "" {
		args = append(args, "--layout", o.Layout)
	}
	if o.Preview != "" {
		args = append(args, "--preview", o.Preview)
	}
	if o.PreviewWindow != "" {
		args = append(args, "--preview-window", o.PreviewWindow)
	}
	if o.Sync {
		args = append(args, "--sync")
	}
	if o.InitialPos > 0 {
		args = append(args, "--bind", fmt.Sprintf("load:pos(%d)", o.InitialPos))
	}
	if o.Header != "" {
		args = append(args, "--header", o.Header)
	}
	return args
}

// Select presents the newline-delimited input and returns the selected
// line, or lines newline-joined when Multi is set. Cancelling the picker
// is a KindCancelled error.
func Select(input string, opts Options) (string, error) {
	cmd := exec.Command("fzf", opts.args()...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if goerrors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code == exitNoMatch || code == exitInterrupted {
				logger.Debug("empty pick (fzf exit %d)", code)
				return "", errors.EmptyPick()
			}
		}
		return "", errors.SelectorFailed(err)
	}

	result := strings.TrimRight(string(out), "\n")
	if result == "" {
		logger.Debug("empty pick")
		return "", errors.EmptyPick()
	}
	logger.Debug("pick: %s", result)
	return result, nil
}
