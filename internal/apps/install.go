package apps

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"

	"devlaunch/internal/ui"
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(title string, def bool) (bool, error)
}

// Installer helps the user install an app that the prober did not find.
type Installer struct {
	Spawner Spawner
	Confirm Confirmer
	Out     io.Writer
	Log     *clog.Logger
}

// SplitCommand splits an install command on single spaces. Quoting is not
// supported, so arguments cannot contain spaces.
func SplitCommand(s string) (string, []string) {
	parts := strings.Split(s, " ")
	return parts[0], parts[1:]
}

// AssistInstall offers to install d. Command-line apps run their install
// command after confirmation; graphical apps only get a download hint.
// The returned channel (nil when nothing was spawned) closes after the
// install finished and its result was reported. Only prompt errors are
// returned.
func (in Installer) AssistInstall(d Descriptor) (<-chan struct{}, error) {
	out := writerOr(in.Out)
	switch v := d.(type) {
	case CommandLine:
		return in.installCLI(out, v)
	case GraphicalApp:
		fmt.Fprintf(out, "%s is not installed in your %s folder.\n", v.DisplayName, filepath.Dir(v.BundlePath))
		fmt.Fprintln(out, ui.Hint("Please download and install it from: "+v.InstallURL))
		return nil, nil
	default:
		return nil, ErrUnsupported
	}
}

func (in Installer) installCLI(out io.Writer, c CommandLine) (<-chan struct{}, error) {
	if in.Confirm == nil {
		return nil, fmt.Errorf("install %s: no confirmation prompt", c.DisplayName)
	}
	msg := fmt.Sprintf("%s is not installed. Would you like to install it now? (runs: %s)", c.DisplayName, c.InstallCommand)
	ok, err := in.Confirm.Confirm(msg, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		loggerOr(in.Log).Debug("install declined", "app", c.DisplayName)
		return nil, nil
	}

	fmt.Fprintf(out, "Installing %s...\n", c.DisplayName)
	program, args := SplitCommand(c.InstallCommand)
	child, err := spawnerOr(in.Spawner).Spawn(program, args...)
	if err != nil {
		fmt.Fprintln(out, ui.Failure(fmt.Sprintf("Installation of %s failed: %v", c.DisplayName, err)))
		return closed(), nil
	}
	loggerOr(in.Log).Debug("installing", "app", c.DisplayName, "program", program, "args", args)

	reported := make(chan struct{})
	go func() {
		defer close(reported)
		e := child.Wait()
		switch {
		case e.OK():
			fmt.Fprintln(out, ui.Success(fmt.Sprintf("%s installed successfully. You can now run the tool again to launch it.", c.DisplayName)))
		case e.Err != nil:
			fmt.Fprintln(out, ui.Failure(fmt.Sprintf("Installation failed: %v", e.Err)))
		default:
			fmt.Fprintln(out, ui.Failure(fmt.Sprintf("Installation failed with code %d.", e.Code)))
		}
	}()
	return reported, nil
}
