package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"

	"devlaunch/internal/apps"
	"devlaunch/internal/prompt"
	"devlaunch/internal/system"
	"devlaunch/internal/ui"
)

// MenuTitle is the title of the app selection prompt.
const MenuTitle = "Choose an app to launch:"

// State is a step of a single run.
type State int

const (
	Selecting State = iota
	Probing
	Launching
	Installing
	Done
)

func (s State) String() string {
	switch s {
	case Selecting:
		return "selecting"
	case Probing:
		return "probing"
	case Launching:
		return "launching"
	case Installing:
		return "installing"
	case Done:
		return "done"
	}
	return "unknown"
}

// Prompter asks the user to pick an app and to confirm installs.
type Prompter interface {
	Select(title string, options []string) (string, error)
	apps.Confirmer
}

// Prober reports whether an app is installed.
type Prober interface {
	IsInstalled(ctx context.Context, d apps.Descriptor) bool
}

// Orchestrator wires selection, probing and launch/install into one run.
type Orchestrator struct {
	Registry apps.Registry
	Prompt   Prompter
	Prober   Prober
	Spawner  apps.Spawner
	Out      io.Writer
	Log      *clog.Logger

	// Query skips the menu and resolves the app with Registry.Match.
	Query string

	state State
}

// Outcome describes what a run did.
type Outcome struct {
	App    apps.Descriptor // nil when nothing was selected
	Branch State           // Launching, Installing, or Done when no app matched
	// Pending is closed when the spawned child has exited and its result was
	// reported. It is nil when nothing was spawned.
	Pending <-chan struct{}
}

// Run performs exactly one selection and returns without waiting for any
// spawned child.
func (o *Orchestrator) Run(ctx context.Context) (Outcome, error) {
	o.state = Selecting
	d, err := o.selectApp()
	if err != nil {
		return Outcome{Branch: Done}, err
	}
	if d == nil {
		o.to(Done)
		return Outcome{Branch: Done}, nil
	}

	o.to(Probing)
	if o.prober().IsInstalled(ctx, d) {
		o.to(Launching)
		l := apps.Launcher{Spawner: o.Spawner, Out: o.out(), Log: o.Log}
		pending := l.Launch(d)
		o.to(Done)
		return Outcome{App: d, Branch: Launching, Pending: pending}, nil
	}

	o.to(Installing)
	in := apps.Installer{Spawner: o.Spawner, Confirm: o.Prompt, Out: o.out(), Log: o.Log}
	pending, err := in.AssistInstall(d)
	o.to(Done)
	return Outcome{App: d, Branch: Installing, Pending: pending}, err
}

// State reports the step the last run reached.
func (o *Orchestrator) State() State { return o.state }

func (o *Orchestrator) selectApp() (apps.Descriptor, error) {
	if o.Query != "" {
		d, ok := o.Registry.Match(o.Query)
		if !ok {
			fmt.Fprintf(o.out(), "No app matches %q.\n", o.Query)
			return nil, nil
		}
		return d, nil
	}
	if o.Prompt == nil {
		return nil, prompt.ErrNotInteractive
	}
	name, err := o.Prompt.Select(MenuTitle, o.Registry.Names())
	if err != nil {
		return nil, err
	}
	d, ok := o.Registry.Lookup(name)
	if !ok {
		o.logger().Debug("selection not in registry", "name", name)
		return nil, nil
	}
	return d, nil
}

func (o *Orchestrator) to(s State) {
	o.logger().Debug("state", "from", o.state, "to", s)
	o.state = s
}

func (o *Orchestrator) prober() Prober {
	if o.Prober == nil {
		return apps.Prober{}
	}
	return o.Prober
}

func (o *Orchestrator) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o *Orchestrator) logger() *clog.Logger {
	if o.Log == nil {
		return system.Logger
	}
	return o.Log
}

// Main runs o once and turns every failure into a message on errOut. It never
// panics and never returns an error; the process should exit normally.
func Main(ctx context.Context, o *Orchestrator, errOut io.Writer) (res Outcome) {
	if errOut == nil {
		errOut = os.Stderr
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(errOut, ui.Failure(fmt.Sprintf("An error occurred: %v", r)))
			res = Outcome{Branch: Done}
		}
	}()
	res, err := o.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrNotInteractive):
		fmt.Fprintln(errOut, ui.Failure("Your environment doesn't support interactive prompts."))
	case errors.Is(err, prompt.ErrAborted):
		o.logger().Debug("prompt cancelled")
	default:
		fmt.Fprintln(errOut, ui.Failure(fmt.Sprintf("An error occurred: %v", err)))
	}
	return res
}
