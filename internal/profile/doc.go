// Package profile handles parsing and validation of install profiles.
// An install profile is an optional storybot.yaml, found in the working
// directory or under the storybot home, that overrides the built-in
// per-platform package lists and the bot checkout settings. Profiles are
// validated against an embedded JSON Schema before any override is applied.
package profile
