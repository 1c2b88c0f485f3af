// Package gitexec creates the backdated commits a plan calls for by
// shelling out to git. It is the execution layer the planner and tracker
// treat as an opaque collaborator: it consumes one plan unit at a time and
// reports how many commits actually landed.
package gitexec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner executes one git invocation and returns its combined output.
// Extracted as an interface so tests can run without a git binary.
type Runner interface {
	Run(ctx context.Context, dir string, env []string, args ...string) (string, error)
}

// execRunner shells to the real git binary.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, env []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(out.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// scratchFileName is the file each commit touches so there is always
// something to commit.
const scratchFileName = "inkwell.log"

// Committer makes backdated commits in a git working directory.
type Committer struct {
	dir string
	run Runner
}

// New returns a Committer for the repository at dir. It fails when git is
// not installed or dir is not inside a work tree.
func New(ctx context.Context, dir string) (*Committer, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, fmt.Errorf("gitexec: git not found in PATH: %w", err)
	}
	c := &Committer{dir: dir, run: execRunner{}}
	if _, err := c.run.Run(ctx, dir, nil, "rev-parse", "--git-dir"); err != nil {
		return nil, fmt.Errorf("gitexec: %s is not a git repository: %w", dir, err)
	}
	return c, nil
}

// NewWithRunner returns a Committer using a custom runner. Used by tests.
func NewWithRunner(dir string, run Runner) *Committer {
	return &Committer{dir: dir, run: run}
}

// CommitDay creates up to want backdated commits dated to the given ISO
// date and returns how many actually landed. On a mid-unit failure the
// count made so far is returned alongside the error, so the tracker records
// only real work and a later run retries the shortfall.
func (c *Committer) CommitDay(ctx context.Context, date string, want int, char string) (int, error) {
	scratch := filepath.Join(c.dir, scratchFileName)

	for i := 0; i < want; i++ {
		line := fmt.Sprintf("%s %d/%d\n", date, i+1, want)
		f, err := os.OpenFile(scratch, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return i, fmt.Errorf("gitexec: open scratch file: %w", err)
		}
		if _, err := f.WriteString(line); err != nil {
			f.Close()
			return i, fmt.Errorf("gitexec: append scratch file: %w", err)
		}
		f.Close()

		if _, err := c.run.Run(ctx, c.dir, nil, "add", scratchFileName); err != nil {
			return i, err
		}

		// Spread commits across the day so the timestamps look organic
		// and stay unique.
		stamp := fmt.Sprintf("%sT12:00:%02d", date, i%60)
		env := []string{
			"GIT_AUTHOR_DATE=" + stamp,
			"GIT_COMMITTER_DATE=" + stamp,
		}
		msg := commitMessage(date, i+1, want, char)
		if _, err := c.run.Run(ctx, c.dir, env, "commit", "-m", msg); err != nil {
			return i, err
		}
	}
	return want, nil
}

// HeadSHA returns the current HEAD commit SHA.
func (c *Committer) HeadSHA(ctx context.Context) (string, error) {
	return c.run.Run(ctx, c.dir, nil, "rev-parse", "HEAD")
}

// commitMessage describes one scheduled commit. The glyph key is included
// when the day belongs to a glyph, which makes the history legible when
// auditing a finished drawing.
func commitMessage(date string, n, total int, char string) string {
	if char == "" {
		return fmt.Sprintf("inkwell: %s (%d/%d)", date, n, total)
	}
	return fmt.Sprintf("inkwell: %s %q (%d/%d)", date, char, n, total)
}
