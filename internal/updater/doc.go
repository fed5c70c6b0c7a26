// Package updater implements self-update for the storybot binary. The
// bot repository interleaves bot and CLI releases, so CLI releases are
// identified by their cli-v tag prefix. The updater downloads the
// platform archive, verifies its checksum, and swaps the running
// executable with rollback. A daily-cached check powers the startup
// update notice.
package updater
