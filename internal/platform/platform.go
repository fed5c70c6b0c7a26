package platform

// Platform is the closed set of host families the installer knows how to
// provision.
type Platform int

const (
	Unsupported Platform = iota
	MacOS
	Arch
	Debian
	Fedora
	CentOS
)

// String returns a human-readable family name for status output.
func (p Platform) String() string {
	switch p {
	case MacOS:
		return "macOS"
	case Arch:
		return "Arch Linux"
	case Debian:
		return "Debian/Ubuntu"
	case Fedora:
		return "Fedora"
	case CentOS:
		return "CentOS/RHEL"
	default:
		return "unsupported"
	}
}

// Manager returns the package manager binary that defines the family, or
// empty for Unsupported.
func (p Platform) Manager() string {
	switch p {
	case MacOS:
		return "brew"
	case Arch:
		return "pacman"
	case Debian:
		return "apt"
	case Fedora:
		return "dnf"
	case CentOS:
		return "yum"
	default:
		return ""
	}
}

// Supported reports whether the installer has a provisioning path for p.
func (p Platform) Supported() bool {
	return p != Unsupported
}
