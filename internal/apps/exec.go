package apps

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Exit is the completion status of a spawned child.
type Exit struct {
	Code int   // process exit code; -1 when terminated by a signal
	Err  error // wait failure that has no exit code
}

// OK reports a clean zero exit.
func (e Exit) OK() bool { return e.Err == nil && e.Code == 0 }

// Child is a handle to a spawned process. Its exit arrives asynchronously.
type Child struct {
	Program string
	Args    []string

	done chan struct{}
	exit Exit
}

// NewChild returns a pending handle. Spawner implementations call Complete
// exactly once when the process ends.
func NewChild(program string, args ...string) *Child {
	return &Child{Program: program, Args: args, done: make(chan struct{})}
}

// Complete records the exit status and releases waiters.
func (c *Child) Complete(e Exit) {
	c.exit = e
	close(c.done)
}

// Done is closed once the child has exited.
func (c *Child) Done() <-chan struct{} { return c.done }

// Wait blocks until the child exits.
func (c *Child) Wait() Exit {
	<-c.done
	return c.exit
}

// Spawner starts child processes attached to the terminal.
type Spawner interface {
	Spawn(program string, args ...string) (*Child, error)
}

// ExecSpawner runs real processes. Nil streams fall back to the current
// process's stdin, stdout and stderr.
type ExecSpawner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (s ExecSpawner) Spawn(program string, args ...string) (*Child, error) {
	cmd := exec.Command(program, args...) //nolint:gosec
	cmd.Stdin = orReader(s.Stdin, os.Stdin)
	cmd.Stdout = orWriter(s.Stdout, os.Stdout)
	cmd.Stderr = orWriter(s.Stderr, os.Stderr)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	c := NewChild(program, args...)
	go func() {
		c.Complete(exitOf(cmd.Wait()))
	}()
	return c, nil
}

func exitOf(err error) Exit {
	if err == nil {
		return Exit{}
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return Exit{Code: ee.ExitCode()}
	}
	return Exit{Code: -1, Err: err}
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}

// output executes a helper command and returns its combined output.
func output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Avoid color codes and pagers in captured output
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", ctx.Err()
	}
	return string(out), err
}
