package platform

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect reports the host platform.
//
// The kernel architecture reported by gopsutil takes precedence over
// runtime.GOARCH. If gopsutil fails, GOARCH is used instead; a cancelled
// context is still a hard failure.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	zigOS, err := ZigOS(runtime.GOOS)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}
	info.ZigOS = zigOS

	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil && ctx.Err() != nil {
		return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
	}
	if hostInfo != nil {
		info.KernelArch = normalize(hostInfo.KernelArch)
	}

	if zigArch, err := ZigArch(info.KernelArch); err == nil {
		info.ZigArch = zigArch
		return info, nil
	}

	zigArch, err := ZigArch(runtime.GOARCH)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}
	info.ZigArch = zigArch
	return info, nil
}

// ErrNoInfo is returned by a StaticDetector built without an Info.
var ErrNoInfo = errors.New("no platform info configured")

// StaticDetector returns a fixed Info. Useful when the target platform is
// known up front, and in tests.
type StaticDetector struct {
	Info *Info
	Err  error
}

// Detect returns the pre-configured info and error. A detector with
// neither set reports ErrNoInfo.
func (s StaticDetector) Detect(ctx context.Context) (*Info, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Info == nil {
		return nil, ErrNoInfo
	}
	return s.Info, nil
}
