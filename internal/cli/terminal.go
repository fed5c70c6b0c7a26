package cli

import (
	"os"

	"golang.org/x/term"
)

// IsStderrTTY reports whether stderr is a terminal. The update spinner is
// only animated there; on pipes the plain status lines suffice.
func IsStderrTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
