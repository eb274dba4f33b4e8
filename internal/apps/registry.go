package apps

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Registry is an ordered, immutable list of descriptors with unique names.
type Registry struct {
	entries []Descriptor
}

// NewRegistry validates ds and returns them as a registry in the given order.
func NewRegistry(ds ...Descriptor) (Registry, error) {
	seen := make(map[string]bool, len(ds))
	entries := make([]Descriptor, 0, len(ds))
	for i, d := range ds {
		if err := validate(d); err != nil {
			return Registry{}, fmt.Errorf("entry %d: %w", i, err)
		}
		if seen[d.Name()] {
			return Registry{}, fmt.Errorf("entry %d: duplicate name %q", i, d.Name())
		}
		seen[d.Name()] = true
		entries = append(entries, d)
	}
	return Registry{entries: entries}, nil
}

// MustRegistry is NewRegistry for static tables; it panics on invalid input.
func MustRegistry(ds ...Descriptor) Registry {
	r, err := NewRegistry(ds...)
	if err != nil {
		panic(err)
	}
	return r
}

func validate(d Descriptor) error {
	if d == nil {
		return ErrUnsupported
	}
	if strings.TrimSpace(d.Name()) == "" {
		return fmt.Errorf("empty name")
	}
	switch v := d.(type) {
	case CommandLine:
		if v.RunCommand == "" || v.InstallCommand == "" {
			return fmt.Errorf("%s: run and install commands are required", v.DisplayName)
		}
	case GraphicalApp:
		if v.ApplicationName == "" || v.BundlePath == "" || v.InstallURL == "" {
			return fmt.Errorf("%s: application name, bundle path and install url are required", v.DisplayName)
		}
	default:
		return fmt.Errorf("%s: %w", d.Name(), ErrUnsupported)
	}
	return nil
}

// Len reports the number of entries.
func (r Registry) Len() int { return len(r.entries) }

// All returns a copy of the entries in registry order.
func (r Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	copy(out, r.entries)
	return out
}

// Names returns display names in registry order.
func (r Registry) Names() []string {
	out := make([]string, 0, len(r.entries))
	for _, d := range r.entries {
		out = append(out, d.Name())
	}
	return out
}

// Lookup finds an entry by exact name.
func (r Registry) Lookup(name string) (Descriptor, bool) {
	for _, d := range r.entries {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// Match resolves a user-typed query: exact name, then case-insensitive name or
// run command, then the best fuzzy match.
func (r Registry) Match(query string) (Descriptor, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, false
	}
	if d, ok := r.Lookup(q); ok {
		return d, true
	}
	for _, d := range r.entries {
		if strings.EqualFold(d.Name(), q) {
			return d, true
		}
		if c, ok := d.(CommandLine); ok && strings.EqualFold(c.RunCommand, q) {
			return d, true
		}
	}
	matches := fuzzy.Find(strings.ToLower(q), lowerNames(r.Names()))
	if len(matches) == 0 {
		return nil, false
	}
	return r.entries[matches[0].Index], true
}

func lowerNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToLower(n)
	}
	return out
}

// Default returns the built-in app list.
func Default() Registry {
	return MustRegistry(
		CommandLine{
			DisplayName:    "Claude",
			RunCommand:     "claude",
			ProbeCommand:   "claude",
			InstallCommand: "npm install -g @anthropic/claude-cli",
		},
		CommandLine{
			DisplayName:    "Gemini",
			RunCommand:     "gemini",
			ProbeCommand:   "gemini",
			InstallCommand: "npm install -g @google/gemini-cli",
		},
		CommandLine{
			DisplayName:    "Codex CLI",
			RunCommand:     "codex",
			ProbeCommand:   "codex",
			InstallCommand: "npm install -g @openai/codex",
		},
		GraphicalApp{
			DisplayName:     "Cursor",
			ApplicationName: "Cursor",
			BundlePath:      "/Applications/Cursor.app",
			InstallURL:      "https://cursor.sh/",
		},
		GraphicalApp{
			DisplayName:     "VSCode",
			ApplicationName: "Visual Studio Code",
			BundlePath:      "/Applications/Visual Studio Code.app",
			InstallURL:      "https://code.visualstudio.com/download",
		},
		GraphicalApp{
			DisplayName:     "Windsurf",
			ApplicationName: "Windsurf",
			BundlePath:      "/Applications/Windsurf.app",
			InstallURL:      "https://windsurf.com/download",
		},
	)
}
