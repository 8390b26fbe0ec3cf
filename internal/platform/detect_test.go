package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

func TestRealDetector_Detect(t *testing.T) {
	if _, err := ZigOS(runtime.GOOS); err != nil {
		t.Skipf("host OS %s has no Zig release archives", runtime.GOOS)
	}

	info, err := NewDetector().Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %v, want %v", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %v, want %v", info.Arch, runtime.GOARCH)
	}
	if info.ZigOS == "" {
		t.Error("ZigOS should not be empty")
	}
	if info.ZigArch == "" {
		t.Error("ZigArch should not be empty")
	}
}

func TestRealDetector_Detect_Cancelled(t *testing.T) {
	if _, err := ZigOS(runtime.GOOS); err != nil {
		t.Skipf("host OS %s has no Zig release archives", runtime.GOOS)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// gopsutil does not check ctx on every path, so success is allowed.
	if _, err := NewDetector().Detect(ctx); err != nil && !errors.Is(err, context.Canceled) {
		t.Errorf("Detect() error = %v, want context.Canceled", err)
	}
}

func TestStaticDetector(t *testing.T) {
	want := &Info{OS: "linux", ZigOS: "linux", ZigArch: "riscv64"}
	got, err := StaticDetector{Info: want}.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != want {
		t.Errorf("Detect() = %+v, want %+v", got, want)
	}

	boom := errors.New("boom")
	if _, err := (StaticDetector{Err: boom}).Detect(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Detect() error = %v, want %v", err, boom)
	}

	info, err := StaticDetector{}.Detect(context.Background())
	if !errors.Is(err, ErrNoInfo) {
		t.Errorf("Detect() error = %v, want %v", err, ErrNoInfo)
	}
	if info != nil {
		t.Errorf("Detect() = %+v, want nil", info)
	}
}

func TestInfo_BooleanMethods(t *testing.T) {
	tests := []struct {
		name   string
		info   *Info
		checks map[string]bool
	}{
		{
			name: "Linux x86_64",
			info: &Info{OS: "linux", ZigArch: "x86_64"},
			checks: map[string]bool{
				"IsLinux":   true,
				"IsMacOS":   false,
				"IsWindows": false,
				"IsAMD64":   true,
				"IsARM64":   false,
			},
		},
		{
			name: "macOS aarch64",
			info: &Info{OS: "darwin", ZigArch: "aarch64"},
			checks: map[string]bool{
				"IsLinux": false,
				"IsMacOS": true,
				"IsAMD64": false,
				"IsARM64": true,
			},
		},
		{
			name: "Windows x86",
			info: &Info{OS: "windows", ZigArch: "x86"},
			checks: map[string]bool{
				"IsWindows": true,
				"IsAMD64":   false,
				"IsARM64":   false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			methods := map[string]func() bool{
				"IsLinux":   tt.info.IsLinux,
				"IsMacOS":   tt.info.IsMacOS,
				"IsWindows": tt.info.IsWindows,
				"IsAMD64":   tt.info.IsAMD64,
				"IsARM64":   tt.info.IsARM64,
			}
			for name, want := range tt.checks {
				if got := methods[name](); got != want {
					t.Errorf("%s() = %v, want %v", name, got, want)
				}
			}
		})
	}
}
