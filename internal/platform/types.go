// Package platform detects the host OS and architecture and maps them to
// the names Zig uses for its release archives.
//
// Detection relies on gopsutil for the kernel architecture (uname -m) and
// falls back to runtime.GOARCH when that fails. The result is also exposed
// to Lua configs as a read-only "platform" table.
package platform

import "context"

// Info contains platform detection information.
type Info struct {
	OS         string // runtime.GOOS, e.g. "linux", "darwin"
	Arch       string // runtime.GOARCH, e.g. "amd64"
	KernelArch string // uname -m as reported by gopsutil, e.g. "x86_64" (may be empty)
	ZigOS      string // Zig OS name, e.g. "linux", "macos"
	ZigArch    string // Zig CPU name, e.g. "x86_64", "aarch64"
}

// Detector detects the current platform.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// IsAMD64 returns true if the CPU is x86_64.
func (i *Info) IsAMD64() bool {
	return i.ZigArch == "x86_64"
}

// IsARM64 returns true if the CPU is aarch64.
func (i *Info) IsARM64() bool {
	return i.ZigArch == "aarch64"
}
