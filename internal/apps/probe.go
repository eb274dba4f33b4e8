package apps

import (
	"context"
	"os"
	"os/exec"
)

// DefaultShell runs the PATH lookup helper.
const DefaultShell = "/bin/sh"

// Prober answers whether a descriptor is installed on this machine.
// Every failure counts as "not installed".
type Prober struct {
	// Shell is an absolute path to a POSIX shell; empty means DefaultShell.
	Shell string
}

// IsInstalled never returns an error: failed checks report false.
func (p Prober) IsInstalled(ctx context.Context, d Descriptor) bool {
	switch v := d.(type) {
	case CommandLine:
		return p.onPath(ctx, v.Probe())
	case GraphicalApp:
		return bundleExists(v.BundlePath)
	default:
		return false
	}
}

// onPath spawns `command -v name` with discarded streams and checks only the
// exit status.
func (p Prober) onPath(ctx context.Context, name string) bool {
	if name == "" {
		return false
	}
	shell := p.Shell
	if shell == "" {
		shell = DefaultShell
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, shell, "-c", `command -v "$1"`, "probe", name)
	return cmd.Run() == nil
}

func bundleExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
