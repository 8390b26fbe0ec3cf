package zig

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		target     Target
		mirror     string
		wantName   string
		wantSigURL string
	}{
		{
			name:       "legacy_linux_x86_64",
			target:     Target{Version: "0.14.0", OS: "linux", Arch: "x86_64"},
			wantName:   "zig-linux-x86_64-0.14.0.tar.xz",
			wantSigURL: "https://ziglang.org/download/0.14.0/zig-linux-x86_64-0.14.0.tar.xz.minisig",
		},
		{
			name:       "current_linux_x86_64",
			target:     Target{Version: "0.15.1", OS: "linux", Arch: "x86_64"},
			wantName:   "zig-x86_64-linux-0.15.1.tar.xz",
			wantSigURL: "https://ziglang.org/download/0.15.1/zig-x86_64-linux-0.15.1.tar.xz.minisig",
		},
		{
			name:       "first_renamed_release",
			target:     Target{Version: "0.14.1", OS: "macos", Arch: "aarch64"},
			wantName:   "zig-aarch64-macos-0.14.1.tar.xz",
			wantSigURL: "https://ziglang.org/download/0.14.1/zig-aarch64-macos-0.14.1.tar.xz.minisig",
		},
		{
			name:       "legacy_arm_is_armv7a",
			target:     Target{Version: "0.13.0", OS: "linux", Arch: "arm"},
			wantName:   "zig-linux-armv7a-0.13.0.tar.xz",
			wantSigURL: "https://ziglang.org/download/0.13.0/zig-linux-armv7a-0.13.0.tar.xz.minisig",
		},
		{
			name:       "current_arm",
			target:     Target{Version: "0.15.1", OS: "linux", Arch: "arm"},
			wantName:   "zig-arm-linux-0.15.1.tar.xz",
			wantSigURL: "https://ziglang.org/download/0.15.1/zig-arm-linux-0.15.1.tar.xz.minisig",
		},
		{
			name:       "windows_zip",
			target:     Target{Version: "0.15.1", OS: "windows", Arch: "x86_64"},
			wantName:   "zig-x86_64-windows-0.15.1.zip",
			wantSigURL: "https://ziglang.org/download/0.15.1/zig-x86_64-windows-0.15.1.zip.minisig",
		},
		{
			name:       "dev_build",
			target:     Target{Version: "0.16.0-dev.1234+abcdef012", OS: "linux", Arch: "aarch64"},
			wantName:   "zig-aarch64-linux-0.16.0-dev.1234+abcdef012.tar.xz",
			wantSigURL: "https://ziglang.org/builds/zig-aarch64-linux-0.16.0-dev.1234+abcdef012.tar.xz.minisig",
		},
		{
			name:       "legacy_dev_build",
			target:     Target{Version: "0.14.0-dev.99+0123456", OS: "linux", Arch: "x86_64"},
			wantName:   "zig-linux-x86_64-0.14.0-dev.99+0123456.tar.xz",
			wantSigURL: "https://ziglang.org/builds/zig-linux-x86_64-0.14.0-dev.99+0123456.tar.xz.minisig",
		},
		{
			name:       "v_prefix_dropped",
			target:     Target{Version: "v0.15.1", OS: "linux", Arch: "x86_64"},
			wantName:   "zig-x86_64-linux-0.15.1.tar.xz",
			wantSigURL: "https://ziglang.org/download/0.15.1/zig-x86_64-linux-0.15.1.tar.xz.minisig",
		},
		{
			name:       "custom_mirror_with_path",
			target:     Target{Version: "0.15.1", OS: "linux", Arch: "x86_64"},
			mirror:     "https://mirror.example.com/zig/",
			wantName:   "zig-x86_64-linux-0.15.1.tar.xz",
			wantSigURL: "https://mirror.example.com/zig/download/0.15.1/zig-x86_64-linux-0.15.1.tar.xz.minisig",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archive, err := Resolve(tt.target, tt.mirror)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if archive.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", archive.Name, tt.wantName)
			}
			if archive.SignatureURL != tt.wantSigURL {
				t.Errorf("SignatureURL = %q, want %q", archive.SignatureURL, tt.wantSigURL)
			}
			if archive.URL+SignatureExt != archive.SignatureURL {
				t.Errorf("SignatureURL %q is not URL %q plus %s", archive.SignatureURL, archive.URL, SignatureExt)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		mirror  string
		wantErr string
	}{
		{
			name:    "missing_version",
			target:  Target{OS: "linux", Arch: "x86_64"},
			wantErr: "version is required",
		},
		{
			name:    "invalid_version",
			target:  Target{Version: "latest", OS: "linux", Arch: "x86_64"},
			wantErr: "invalid zig version",
		},
		{
			name:    "shorthand_version",
			target:  Target{Version: "0.15", OS: "linux", Arch: "x86_64"},
			wantErr: "invalid zig version",
		},
		{
			name:    "major_only_version",
			target:  Target{Version: "v0", OS: "linux", Arch: "x86_64"},
			wantErr: "invalid zig version",
		},
		{
			name:    "unsupported_os",
			target:  Target{Version: "0.15.1", OS: "plan9", Arch: "x86_64"},
			wantErr: "unsupported zig OS",
		},
		{
			name:    "unsupported_arch_for_os",
			target:  Target{Version: "0.15.1", OS: "macos", Arch: "riscv64"},
			wantErr: "unsupported zig arch",
		},
		{
			name:    "mirror_without_scheme",
			target:  Target{Version: "0.15.1", OS: "linux", Arch: "x86_64"},
			mirror:  "ziglang.org",
			wantErr: "http or https",
		},
		{
			name:    "mirror_file_scheme",
			target:  Target{Version: "0.15.1", OS: "linux", Arch: "x86_64"},
			mirror:  "file:///etc",
			wantErr: "http or https",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.target, tt.mirror)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestTarget_IsDevBuild(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"0.15.1", false},
		{"0.16.0-dev.1234+abcdef", true},
		{"0.15.0-rc1", false},
	}
	for _, tt := range tests {
		if got := (Target{Version: tt.version}).IsDevBuild(); got != tt.want {
			t.Errorf("IsDevBuild(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}
