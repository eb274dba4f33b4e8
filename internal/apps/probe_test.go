package apps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tu "devlaunch/internal/testutil"
)

type bogus struct{}

func (bogus) Name() string { return "bogus" }
func (bogus) Kind() Kind   { return Kind(42) }
func (bogus) descriptor()  {}

func TestProber_CommandLine(t *testing.T) {
	tu.RequireShell(t)
	bin := t.TempDir()
	tu.WriteScript(t, bin, "fake-tool", "exit 0")
	defer tu.WithEnv(t, "PATH", bin)()

	ctx := context.Background()
	p := Prober{}
	cases := []struct {
		name string
		d    CommandLine
		want bool
	}{
		{"on path", CommandLine{DisplayName: "F", RunCommand: "fake-tool"}, true},
		{"probe differs from run", CommandLine{DisplayName: "F", RunCommand: "other", ProbeCommand: "fake-tool"}, true},
		{"absent", CommandLine{DisplayName: "X", RunCommand: "definitely-not-installed-xyz"}, false},
		{"empty", CommandLine{DisplayName: "E"}, false},
	}
	for _, tc := range cases {
		if got := p.IsInstalled(ctx, tc.d); got != tc.want {
			t.Errorf("%s: IsInstalled = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestProber_HelperMissing(t *testing.T) {
	tu.RequireShell(t)
	bin := t.TempDir()
	tu.WriteScript(t, bin, "fake-tool", "exit 0")
	defer tu.WithEnv(t, "PATH", bin)()

	p := Prober{Shell: filepath.Join(bin, "no-such-shell")}
	if p.IsInstalled(context.Background(), CommandLine{DisplayName: "F", RunCommand: "fake-tool"}) {
		t.Fatalf("a helper that cannot start must report not installed")
	}
}

func TestProber_Graphical(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "Editor.app")
	if err := os.Mkdir(bundle, 0o755); err != nil {
		t.Fatal(err)
	}
	d := GraphicalApp{DisplayName: "Editor", ApplicationName: "Editor", BundlePath: bundle, InstallURL: "https://example.com"}
	p := Prober{}
	ctx := context.Background()

	if !p.IsInstalled(ctx, d) {
		t.Fatalf("expected installed while bundle exists")
	}
	if err := os.Rename(bundle, bundle+".old"); err != nil {
		t.Fatal(err)
	}
	if p.IsInstalled(ctx, d) {
		t.Fatalf("expected not installed after rename")
	}

	// a plain file counts too; only existence is checked
	if err := os.WriteFile(bundle, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !p.IsInstalled(ctx, d) {
		t.Fatalf("expected installed for plain file")
	}

	d.BundlePath = filepath.Join(dir, "missing", "Nope.app")
	if p.IsInstalled(ctx, d) {
		t.Fatalf("expected not installed for absent path")
	}
}

func TestProber_Unsupported(t *testing.T) {
	if (Prober{}).IsInstalled(context.Background(), bogus{}) {
		t.Fatalf("unknown descriptor must not be installed")
	}
}
