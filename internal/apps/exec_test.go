package apps

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tu "devlaunch/internal/testutil"
)

func TestExecSpawner_ExitCodes(t *testing.T) {
	tu.RequireShell(t)
	bin := t.TempDir()
	ok := tu.WriteScript(t, bin, "ok", `echo "hello $1"`)
	bad := tu.WriteScript(t, bin, "bad", "exit 3")

	var out bytes.Buffer
	s := ExecSpawner{Stdin: strings.NewReader(""), Stdout: &out, Stderr: &out}

	c, err := s.Spawn(ok, "world")
	if err != nil {
		t.Fatalf("Spawn error: %v", err)
	}
	if e := c.Wait(); !e.OK() {
		t.Fatalf("unexpected exit: %+v", e)
	}
	if strings.TrimSpace(out.String()) != "hello world" {
		t.Fatalf("child output not forwarded: %q", out.String())
	}

	c, err = s.Spawn(bad)
	if err != nil {
		t.Fatalf("Spawn error: %v", err)
	}
	if e := c.Wait(); e.Code != 3 || e.Err != nil || e.OK() {
		t.Fatalf("expected code 3, got %+v", e)
	}
}

func TestExecSpawner_StartFailure(t *testing.T) {
	s := ExecSpawner{}
	if c, err := s.Spawn("definitely-not-installed-xyz"); err == nil || c != nil {
		t.Fatalf("expected spawn error, got child %v", c)
	}
}

func TestChild_Complete(t *testing.T) {
	c := NewChild("x", "a")
	if isClosed(c.Done()) {
		t.Fatalf("new child must be pending")
	}
	c.Complete(Exit{Code: 7})
	if !isClosed(c.Done()) || c.Wait().Code != 7 {
		t.Fatalf("child did not complete")
	}
}

func TestExitOf(t *testing.T) {
	if e := exitOf(nil); !e.OK() {
		t.Fatalf("nil error must be OK: %+v", e)
	}
	if e := exitOf(errBoom); e.Code != -1 || !errors.Is(e.Err, errBoom) {
		t.Fatalf("unexpected exit for plain error: %+v", e)
	}
}

func TestOutput_Cancelled(t *testing.T) {
	tu.RequireShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := output(ctx, "/bin/sh", "-c", "exit 0"); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
