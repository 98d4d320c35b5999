// Package tmux wraps the tmux CLI for session and window operations.
// Every function shells out to the tmux binary; there is no persistent
// connection or control-mode pipe.
package tmux

import (
	"os"
	"os/exec"
	"strings"

	"github.com/zhubert/pfp/internal/errors"
	"github.com/zhubert/pfp/internal/logger"
)

// run executes a tmux subcommand and returns its trimmed stdout.
func run(args ...string) (string, error) {
	logger.Debug("tmux %s", strings.Join(args, " "))
	out, err := exec.Command("tmux", args...).Output()
	if err != nil {
		return "", errors.TmuxFailed(args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CurrentSession returns the name of the attached session.
func CurrentSession() (string, error) {
	return run("display-message", "-p", "#S")
}

// CurrentWindow returns the attached session and window as "session:index".
func CurrentWindow() (string, error) {
	return run("display-message", "-p", "#S:#I")
}

// ListSessions returns one line per active session rendered with format.
// No server running is reported as an error by tmux itself.
func ListSessions(format string) ([]string, error) {
	out, err := run("list-sessions", "-F", format)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// HasSession reports whether a session with exactly this name exists.
func HasSession(name string) bool {
	// The = prefix disables tmux's prefix matching.
	err := exec.Command("tmux", "has-session", "-t", "="+name).Run()
	return err == nil
}

// NewSession creates a detached session with one named window rooted at dir.
func NewSession(name, windowName, dir string) error {
	_, err := run("new-session", "-d", "-s", name, "-n", windowName, "-c", dir)
	return err
}

// NewWindow opens a window in the current session rooted at dir.
func NewWindow(name, dir string) error {
	_, err := run("new-window", "-n", name, "-c", dir)
	return err
}

// NewWindowDetached opens a window without switching to it and returns its
// "session:index" reference so it can be moved.
func NewWindowDetached(name, dir string) (string, error) {
	return run("new-window", "-d", "-n", name, "-c", dir, "-P", "-F", "#S:#I")
}

// MoveWindow moves the window at src ("session:index") to the end of the
// target session.
func MoveWindow(src, dstSession string) error {
	_, err := run("move-window", "-s", src, "-t", dstSession+":")
	return err
}

// RenumberWindows renumbers the windows of a session with a no-op move.
func RenumberWindows(session string) error {
	_, err := run("movew", "-r", "-s", session+":1", "-t", session+":1")
	return err
}

// SwitchTo switches the attached client to the target session or window.
func SwitchTo(target string) error {
	_, err := run("switch-client", "-t", target)
	return err
}

// SwitchLast switches the client to the last (most recently used) session.
func SwitchLast() error {
	_, err := run("switch-client", "-l")
	return err
}

// SwitchPrevious switches the client to the previous session.
func SwitchPrevious() error {
	_, err := run("switch-client", "-p")
	return err
}

// KillSession kills the named session.
func KillSession(name string) error {
	_, err := run("kill-session", "-t", name)
	return err
}

// Attach runs a bare tmux attach (or plain tmux when no sessions exist
// yet). With inheritStdin the child takes over the terminal, which is what
// `pfp start --attach` wants; otherwise stdin is left disconnected so the
// call returns immediately inside an existing session.
func Attach(bare bool, inheritStdin bool) error {
	args := []string{"attach"}
	if bare {
		args = nil
	}
	cmd := exec.Command("tmux", args...)
	if inheritStdin {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		sub := "attach"
		if bare {
			sub = "tmux"
		}
		return errors.TmuxFailed(sub, err)
	}
	return nil
}
