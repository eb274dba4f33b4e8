package apps

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"

	"devlaunch/internal/system"
	"devlaunch/internal/ui"
)

// OpenCommand is the platform facility that opens a named application.
const OpenCommand = "open"

// Launcher starts installed apps in the foreground terminal.
type Launcher struct {
	Spawner Spawner
	Out     io.Writer
	Log     *clog.Logger
}

// Launch spawns d and returns immediately. The returned channel is closed
// once the child has exited and any exit diagnostic has been written; it is
// already closed when the spawn failed.
func (l Launcher) Launch(d Descriptor) <-chan struct{} {
	out := writerOr(l.Out)
	fmt.Fprintf(out, "Starting %s...\n", d.Name())

	program, args, err := launchCommand(d)
	if err != nil {
		fmt.Fprintln(out, ui.Failure(fmt.Sprintf("Error starting %s: %v", d.Name(), err)))
		return closed()
	}
	child, err := spawnerOr(l.Spawner).Spawn(program, args...)
	if err != nil {
		fmt.Fprintln(out, ui.Failure(fmt.Sprintf("Error starting %s: %v", d.Name(), err)))
		return closed()
	}
	loggerOr(l.Log).Debug("launched", "app", d.Name(), "program", program, "args", args)

	reported := make(chan struct{})
	go func() {
		defer close(reported)
		e := child.Wait()
		switch {
		case e.Err != nil:
			fmt.Fprintln(out, ui.Failure(fmt.Sprintf("%s exited: %v", d.Name(), e.Err)))
		case e.Code != 0:
			fmt.Fprintln(out, ui.Notice(fmt.Sprintf("%s exited with code %d", d.Name(), e.Code)))
		}
	}()
	return reported
}

// launchCommand maps a descriptor to the program and arguments to spawn.
func launchCommand(d Descriptor) (string, []string, error) {
	switch v := d.(type) {
	case CommandLine:
		return v.RunCommand, nil, nil
	case GraphicalApp:
		return OpenCommand, []string{"-a", v.ApplicationName}, nil
	default:
		return "", nil, ErrUnsupported
	}
}

func closed() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func writerOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func spawnerOr(s Spawner) Spawner {
	if s == nil {
		return ExecSpawner{}
	}
	return s
}

func loggerOr(l *clog.Logger) *clog.Logger {
	if l == nil {
		return system.Logger
	}
	return l
}
