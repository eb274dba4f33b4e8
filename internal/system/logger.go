package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for diagnostics.
// It prints to stderr with timestamps enabled; user-facing messages are
// written to stdout by the components themselves.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "devlaunch",
})

// SetDebug toggles debug-level diagnostics.
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}
