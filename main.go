package main

import (
	"os"

	"github.com/Chube123go/RedditStoryBot/internal/cli"
	"github.com/Chube123go/RedditStoryBot/internal/execx"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// A launched bot's exit status passes through unchanged.
		if code := execx.ExitCode(err); code > 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
