package platform

import "testing"

func TestZigArch(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"x86_64", "x86_64", false},
		{"amd64", "x86_64", false},
		{"aarch64", "aarch64", false},
		{"arm64", "aarch64", false},
		{"armv7l", "arm", false},
		{"arm", "arm", false},
		{"i686", "x86", false},
		{"386", "x86", false},
		{"riscv64", "riscv64", false},
		{"ppc64le", "powerpc64le", false},
		{"loong64", "loongarch64", false},
		{"s390x", "s390x", false},
		{"  X86_64 ", "x86_64", false},
		{"mips", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ZigArch(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ZigArch(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ZigArch(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestZigOS(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"linux", "linux", false},
		{"darwin", "macos", false},
		{"macos", "macos", false},
		{"windows", "windows", false},
		{"freebsd", "freebsd", false},
		{"plan9", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ZigOS(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ZigOS(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ZigOS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
