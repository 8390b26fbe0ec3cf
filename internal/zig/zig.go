// Package zig builds download URLs for official Zig release archives and
// their minisign signatures.
//
// Zig changed its archive naming in 0.14.1:
//
//	0.14.0 and earlier: zig-linux-x86_64-0.14.0.tar.xz
//	0.14.1 and later:   zig-x86_64-linux-0.15.1.tar.xz
//
// Tagged releases live under <mirror>/download/<version>/, development
// builds (0.16.0-dev.1234+abcdef) under <mirror>/builds/.
package zig

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	// DefaultMirror is the official Zig download host
	DefaultMirror = "https://ziglang.org"

	// SignatureExt is appended to an archive URL to get its signature
	SignatureExt = ".minisig"

	// archOSOrderSince is the first release named zig-<arch>-<os>-<version>
	archOSOrderSince = "v0.14.1"
)

// Target identifies one release archive.
type Target struct {
	Version string // e.g. "0.15.1" or "0.16.0-dev.1234+abcdef"
	OS      string // Zig OS name, e.g. "linux", "macos", "windows"
	Arch    string // Zig CPU name, e.g. "x86_64", "aarch64", "arm"
}

// Archive is the resolved location of a release archive.
type Archive struct {
	Name         string // file name, e.g. "zig-x86_64-linux-0.15.1.tar.xz"
	URL          string
	SignatureURL string
}

// supportedArch lists the CPU names Zig publishes archives for, per OS.
var supportedArch = map[string][]string{
	"linux":   {"x86_64", "aarch64", "arm", "x86", "riscv64", "powerpc64le", "loongarch64", "s390x"},
	"macos":   {"x86_64", "aarch64"},
	"windows": {"x86_64", "aarch64", "x86"},
	"freebsd": {"x86_64", "aarch64", "arm", "x86", "riscv64", "powerpc64le"},
	"netbsd":  {"x86_64", "aarch64", "arm", "x86"},
}

// Validate checks the version format and the os/arch combination.
func (t Target) Validate() error {
	if t.Version == "" {
		return fmt.Errorf("zig version is required")
	}
	if !isFullVersion(semverOf(t.Version)) {
		return fmt.Errorf("invalid zig version %q, want MAJOR.MINOR.PATCH", t.Version)
	}
	arches, ok := supportedArch[t.OS]
	if !ok {
		return fmt.Errorf("unsupported zig OS %q", t.OS)
	}
	for _, arch := range arches {
		if arch == t.Arch {
			return nil
		}
	}
	return fmt.Errorf("unsupported zig arch %q for OS %q", t.Arch, t.OS)
}

// IsDevBuild reports whether the version is a development snapshot.
func (t Target) IsDevBuild() bool {
	return strings.Contains(semver.Prerelease(semverOf(t.Version)), "dev")
}

// Resolve returns the archive and signature URLs for t on mirror.
// An empty mirror means DefaultMirror.
func Resolve(t Target, mirror string) (*Archive, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	base, err := baseURL(mirror)
	if err != nil {
		return nil, err
	}
	// Published paths never carry the "v" prefix
	t.Version = strings.TrimPrefix(t.Version, "v")

	name := archiveName(t)
	var dir string
	if t.IsDevBuild() {
		dir = base.JoinPath("builds").String()
	} else {
		dir = base.JoinPath("download", t.Version).String()
	}

	archiveURL := dir + "/" + name
	return &Archive{
		Name:         name,
		URL:          archiveURL,
		SignatureURL: archiveURL + SignatureExt,
	}, nil
}

// archiveName builds the archive file name.
// Pattern (< 0.14.1): zig-{os}-{arch}-{version}.{ext}
// Pattern (>= 0.14.1): zig-{arch}-{os}-{version}.{ext}
func archiveName(t Target) string {
	ext := "tar.xz"
	if t.OS == "windows" {
		ext = "zip"
	}

	if usesLegacyNaming(t.Version) {
		arch := t.Arch
		// 32-bit ARM was published as armv7a before the rename
		if arch == "arm" {
			arch = "armv7a"
		}
		return fmt.Sprintf("zig-%s-%s-%s.%s", t.OS, arch, t.Version, ext)
	}
	return fmt.Sprintf("zig-%s-%s-%s.%s", t.Arch, t.OS, t.Version, ext)
}

// usesLegacyNaming reports whether version predates the arch-os ordering.
// Pre-release suffixes are ignored so dev builds follow their base version.
func usesLegacyNaming(version string) bool {
	v := semverOf(version)
	if pre := semver.Prerelease(v); pre != "" {
		v = v[:strings.Index(v, pre)]
	}
	return semver.Compare(v, archOSOrderSince) < 0
}

func baseURL(mirror string) (*url.URL, error) {
	if mirror == "" {
		mirror = DefaultMirror
	}
	u, err := url.Parse(strings.TrimRight(mirror, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse mirror URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("mirror URL must use http or https: %s", mirror)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("mirror URL has no host: %s", mirror)
	}
	return u, nil
}

// isFullVersion rejects shorthands like v0.15 that semver accepts but
// Zig never publishes.
func isFullVersion(v string) bool {
	return semver.IsValid(v) && semver.Canonical(v)+semver.Build(v) == v
}

func semverOf(version string) string {
	return "v" + strings.TrimPrefix(version, "v")
}
