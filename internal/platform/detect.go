package platform

import (
	"runtime"

	"github.com/Chube123go/RedditStoryBot/internal/execx"
)

// linuxManagers is the fixed probe order. The first binary present on
// PATH decides the family, so a Fedora box that also carries yum still
// reports as Fedora.
var linuxManagers = []struct {
	bin      string
	platform Platform
}{
	{"pacman", Arch},
	{"apt", Debian},
	{"dnf", Fedora},
	{"yum", CentOS},
}

// Detect identifies the host platform. It inspects the process only: the
// OS identifier and which package-manager binaries resolve on PATH.
func Detect(r execx.Runner) Platform {
	return detect(runtime.GOOS, r)
}

func detect(goos string, r execx.Runner) Platform {
	switch goos {
	case "darwin":
		return MacOS
	case "linux":
		for _, m := range linuxManagers {
			if _, err := r.LookPath(m.bin); err == nil {
				return m.platform
			}
		}
	}
	return Unsupported
}

// AppleSilicon reports whether the host is an arm64 Mac, where Homebrew
// lives under /opt/homebrew instead of /usr/local.
func AppleSilicon() bool {
	return appleSilicon(runtime.GOOS, runtime.GOARCH)
}

func appleSilicon(goos, goarch string) bool {
	return goos == "darwin" && goarch == "arm64"
}

// HomebrewPrefix returns the install prefix Homebrew uses on this
// machine's architecture.
func HomebrewPrefix() string {
	return brewPrefix(runtime.GOARCH)
}

func brewPrefix(goarch string) string {
	if goarch == "arm64" {
		return "/opt/homebrew"
	}
	return "/usr/local"
}
