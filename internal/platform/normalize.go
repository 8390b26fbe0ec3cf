package platform

import (
	"fmt"
	"strings"
)

// zigArchMap maps uname -m and GOARCH spellings to Zig CPU names.
var zigArchMap = map[string]string{
	"x86_64":      "x86_64",
	"amd64":       "x86_64",
	"aarch64":     "aarch64",
	"arm64":       "aarch64",
	"armv7l":      "arm",
	"armv7":       "arm",
	"armhf":       "arm",
	"arm":         "arm",
	"i386":        "x86",
	"i686":        "x86",
	"386":         "x86",
	"x86":         "x86",
	"riscv64":     "riscv64",
	"ppc64le":     "powerpc64le",
	"powerpc64le": "powerpc64le",
	"loongarch64": "loongarch64",
	"loong64":     "loongarch64",
	"s390x":       "s390x",
}

// zigOSMap maps GOOS values to Zig OS names.
var zigOSMap = map[string]string{
	"linux":   "linux",
	"darwin":  "macos",
	"macos":   "macos",
	"windows": "windows",
	"freebsd": "freebsd",
	"netbsd":  "netbsd",
}

// ZigArch converts a uname -m or GOARCH value to the Zig CPU name.
func ZigArch(arch string) (string, error) {
	if zig, ok := zigArchMap[normalize(arch)]; ok {
		return zig, nil
	}
	return "", fmt.Errorf("unsupported architecture: %s", arch)
}

// ZigOS converts a GOOS value to the Zig OS name.
func ZigOS(goos string) (string, error) {
	if zig, ok := zigOSMap[normalize(goos)]; ok {
		return zig, nil
	}
	return "", fmt.Errorf("unsupported OS: %s", goos)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
