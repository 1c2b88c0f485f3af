package gitexec

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner records invocations and optionally fails the nth commit.
type fakeRunner struct {
	calls   [][]string
	envs    [][]string
	commits int
	failAt  int // fail the nth commit (1-based); 0 = never
}

func (f *fakeRunner) Run(_ context.Context, _ string, env []string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	f.envs = append(f.envs, env)
	if args[0] == "commit" {
		f.commits++
		if f.failAt > 0 && f.commits == f.failAt {
			return "", errors.New("boom")
		}
	}
	return "", nil
}

func TestCommitDay(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{}
	c := NewWithRunner(t.TempDir(), run)

	made, err := c.CommitDay(context.Background(), "2026-01-05", 3, "H")
	if err != nil {
		t.Fatalf("CommitDay: %v", err)
	}
	if made != 3 {
		t.Errorf("made = %d, want 3", made)
	}
	if run.commits != 3 {
		t.Errorf("git commit invoked %d times, want 3", run.commits)
	}

	// Every commit is backdated to the unit's date.
	for i, env := range run.envs {
		if run.calls[i][0] != "commit" {
			continue
		}
		joined := strings.Join(env, " ")
		if !strings.Contains(joined, "GIT_AUTHOR_DATE=2026-01-05T") ||
			!strings.Contains(joined, "GIT_COMMITTER_DATE=2026-01-05T") {
			t.Errorf("commit %d env = %v, missing backdate", i, env)
		}
	}
}

func TestCommitDayPartialFailure(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{failAt: 2}
	c := NewWithRunner(t.TempDir(), run)

	made, err := c.CommitDay(context.Background(), "2026-01-05", 5, "")
	if err == nil {
		t.Fatal("expected error from failing commit")
	}
	if made != 1 {
		t.Errorf("made = %d, want 1 (only the successful commit counts)", made)
	}
}

func TestCommitDayZero(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{}
	c := NewWithRunner(t.TempDir(), run)

	made, err := c.CommitDay(context.Background(), "2026-01-05", 0, "")
	if err != nil || made != 0 {
		t.Errorf("made = %d err = %v, want 0, nil", made, err)
	}
	if len(run.calls) != 0 {
		t.Errorf("git invoked %d times for an empty unit", len(run.calls))
	}
}

func TestCommitMessage(t *testing.T) {
	t.Parallel()

	if got := commitMessage("2026-01-05", 2, 20, "H"); !strings.Contains(got, `"H"`) {
		t.Errorf("glyph message = %q, want glyph key included", got)
	}
	if got := commitMessage("2026-01-05", 2, 20, ""); strings.Contains(got, `""`) {
		t.Errorf("background message = %q, should omit char", got)
	}
}
