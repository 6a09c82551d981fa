package motion

import (
	"fmt"
	"os"
)

// globalDebug gates the stderr diagnostics below. Plain bool: the package is
// driven from a single goroutine.
var globalDebug bool

// SetDebugMode enables or disables debug diagnostics. When enabled, ignored
// registrations, malformed target transforms and out-of-order lifecycle calls
// are reported on stderr. Behavior is otherwise unchanged.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug diagnostics are enabled.
func DebugMode() bool {
	return globalDebug
}

// debugWarn prints a warning to stderr when debug mode is on.
func debugWarn(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[motion] warning: "+format+"\n", args...)
}

// targetName returns a short label for t in diagnostics.
func targetName(t Target) string {
	if n, ok := t.(*Node); ok && n != nil {
		return fmt.Sprintf("node %q (ID %d)", n.Name, n.ID)
	}
	return fmt.Sprintf("%T", t)
}
