package apps

import (
	"context"
	"strings"
	"time"
)

// Status is the result of a full check used by listings.
type Status struct {
	App       Descriptor
	Installed bool
	Version   string
	Source    string // where the version came from
}

// versionArgs are tried in order against an installed command-line app.
var versionArgs = [][]string{{"--version"}, {"-v"}, {"version"}}

// Check probes d and, for installed command-line apps, tries to read a
// version. Version lookup is best effort and bounded by a short timeout.
func (p Prober) Check(ctx context.Context, d Descriptor) Status {
	st := Status{App: d, Installed: p.IsInstalled(ctx, d)}
	c, ok := d.(CommandLine)
	if !ok || !st.Installed {
		return st
	}
	for _, args := range versionArgs {
		cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		out, err := output(cctx, c.RunCommand, args...)
		cancel()
		if err != nil || strings.TrimSpace(out) == "" {
			continue
		}
		ver := ParseVersion(out)
		if ver == "" {
			ver = strings.Split(strings.TrimSpace(out), "\n")[0]
		}
		st.Version = ver
		st.Source = strings.TrimSpace(c.RunCommand + " " + strings.Join(args, " "))
		return st
	}
	return st
}

// CheckAll runs Check for every entry, in registry order.
func (p Prober) CheckAll(ctx context.Context, r Registry) []Status {
	out := make([]Status, 0, r.Len())
	for _, d := range r.All() {
		out = append(out, p.Check(ctx, d))
	}
	return out
}
