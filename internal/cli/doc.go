// Package cli defines the Cobra command tree for the storybot CLI. The root
// command runs the install flow itself; each other file in this package
// registers one subcommand (doctor, run, update, ...) with the root command.
// Command implementations delegate to internal packages for the actual work
// and only handle flag parsing, I/O formatting, and user interaction.
package cli
