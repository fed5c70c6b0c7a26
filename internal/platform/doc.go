// Package platform identifies the host operating system family and the
// native package manager the installer should drive.
//
// Detection is a closed set: macOS, or a Linux family named after the
// first package manager found in a fixed priority order. Anything else is
// Unsupported and callers print manual-install guidance instead.
package platform
