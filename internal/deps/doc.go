// Package deps installs the system packages the bot needs: a Python 3
// interpreter, its Tk bindings, pip, and git, using the host's native
// package manager.
//
// Sequences are fixed per platform. The first failing command terminates
// the install; nothing is retried or rolled back. On macOS the package
// manager itself (Homebrew) is bootstrapped first when absent.
package deps
