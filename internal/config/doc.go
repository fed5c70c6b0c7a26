// Package config manages user-level settings stored at ~/.storybot/config.yaml.
// It provides functions to load, read, and write configuration keys, and
// typed accessors that resolve each setting as env var, then config file,
// then the branding default.
package config
