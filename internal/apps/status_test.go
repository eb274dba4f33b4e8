package apps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tu "devlaunch/internal/testutil"
)

func TestParseVersion(t *testing.T) {
	cases := map[string]string{
		"1.0.83 (Claude Code)": "1.0.83",
		"codex-cli v0.10.1\n":  "0.10.1",
		"gemini\n2.0.0-beta.1": "2.0.0-beta.1",
		"no version here":      "",
		"":                     "",
	}
	for in, want := range cases {
		if got := ParseVersion(in); got != want {
			t.Errorf("ParseVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProber_Check(t *testing.T) {
	tu.RequireShell(t)
	bin := t.TempDir()
	tu.WriteScript(t, bin, "fake-tool", `echo "fake-tool 4.5.6"`)
	defer tu.WithEnv(t, "PATH", bin)()

	bundle := filepath.Join(t.TempDir(), "Editor.app")
	if err := os.Mkdir(bundle, 0o755); err != nil {
		t.Fatal(err)
	}

	r := MustRegistry(
		CommandLine{DisplayName: "Fake", RunCommand: "fake-tool", InstallCommand: "npm i -g fake"},
		CommandLine{DisplayName: "Absent", RunCommand: "definitely-not-installed-xyz", InstallCommand: "npm i -g absent"},
		GraphicalApp{DisplayName: "Editor", ApplicationName: "Editor", BundlePath: bundle, InstallURL: "https://example.com"},
	)
	got := Prober{}.CheckAll(context.Background(), r)
	if len(got) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(got))
	}
	if !got[0].Installed || got[0].Version != "4.5.6" || got[0].Source != "fake-tool --version" {
		t.Fatalf("unexpected status for Fake: %+v", got[0])
	}
	if got[1].Installed || got[1].Version != "" {
		t.Fatalf("unexpected status for Absent: %+v", got[1])
	}
	if !got[2].Installed || got[2].Version != "" {
		t.Fatalf("unexpected status for Editor: %+v", got[2])
	}
}
