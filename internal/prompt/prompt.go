// Package prompt renders the interactive menu and confirmations.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"devlaunch/internal/ui"
)

var (
	// ErrNotInteractive means no terminal is attached, so nothing can be asked.
	ErrNotInteractive = errors.New("interactive prompts are not supported in this environment")
	// ErrAborted means the user cancelled a prompt.
	ErrAborted = fmt.Errorf("prompt aborted: %w", huh.ErrUserAborted)
)

// Huh asks questions with charmbracelet/huh forms.
type Huh struct {
	// IsTerminal reports whether prompts can be rendered; nil checks stdin
	// and stdout.
	IsTerminal func() bool
	// Accessible renders plain-text prompts instead of the full-screen widgets.
	Accessible bool
}

// StdTerminal reports whether both stdin and stdout are terminals.
func StdTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Select shows a single-choice list and returns the chosen option.
func (h Huh) Select(title string, options []string) (string, error) {
	if err := h.check(); err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", errors.New("nothing to choose from")
	}
	choice := options[0]
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Height(selectHeight(len(options))).
		Value(&choice)
	if err := h.run(field); err != nil {
		return "", err
	}
	return choice, nil
}

// Confirm asks a yes/no question; def is preselected.
func (h Huh) Confirm(title string, def bool) (bool, error) {
	if err := h.check(); err != nil {
		return false, err
	}
	ok := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	if err := h.run(field); err != nil {
		return false, err
	}
	return ok, nil
}

func (h Huh) check() error {
	isTTY := h.IsTerminal
	if isTTY == nil {
		isTTY = StdTerminal
	}
	if !isTTY() {
		return ErrNotInteractive
	}
	return nil
}

func (h Huh) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(ui.FormTheme()).
		WithShowHelp(false).
		WithAccessible(h.Accessible)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// selectHeight keeps short menus compact and long ones scrollable.
func selectHeight(n int) int {
	switch {
	case n == 0:
		return 3
	case n > 12:
		return 14
	}
	return n + 2
}
