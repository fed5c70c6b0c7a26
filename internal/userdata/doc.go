// Package userdata manages the ~/.storybot/ directory: path resolution,
// first-run initialization, user preferences, and health checks for the
// home layer.
package userdata
