// Package execx runs external commands (package managers, git, python)
// behind a small Runner interface so install flows can be exercised in
// tests without touching the host.
//
// Errors distinguish a binary that is absent from PATH (NotFoundError)
// from one that ran and exited non-zero (ExitError); callers branch on
// the two cases when building remediation messages.
package execx
