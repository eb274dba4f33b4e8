package apps

import "errors"

// Kind selects how a descriptor is probed, launched and installed.
type Kind int

const (
	KindCommandLine Kind = iota
	KindGraphical
)

func (k Kind) String() string {
	switch k {
	case KindCommandLine:
		return "cli"
	case KindGraphical:
		return "gui"
	}
	return "unknown"
}

// ErrUnsupported is reported for descriptor types outside this package.
var ErrUnsupported = errors.New("unsupported app descriptor")

// Descriptor is one registry entry. It is implemented only by CommandLine and
// GraphicalApp.
type Descriptor interface {
	Name() string
	Kind() Kind
	descriptor()
}

// CommandLine is an app started by running an executable from PATH.
type CommandLine struct {
	DisplayName    string
	RunCommand     string // executable spawned with no arguments
	ProbeCommand   string // looked up on PATH; empty means RunCommand
	InstallCommand string // split on single spaces, no quoting
}

func (c CommandLine) Name() string { return c.DisplayName }
func (c CommandLine) Kind() Kind   { return KindCommandLine }
func (CommandLine) descriptor()    {}

// Probe returns the executable name checked on PATH.
func (c CommandLine) Probe() string {
	if c.ProbeCommand != "" {
		return c.ProbeCommand
	}
	return c.RunCommand
}

// GraphicalApp is an app bundle opened through the platform "open -a" facility.
type GraphicalApp struct {
	DisplayName     string
	ApplicationName string // argument to `open -a`
	BundlePath      string // existence implies installed
	InstallURL      string // shown to the user, never opened
}

func (g GraphicalApp) Name() string { return g.DisplayName }
func (g GraphicalApp) Kind() Kind   { return KindGraphical }
func (GraphicalApp) descriptor()    {}
