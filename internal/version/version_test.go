package version

import "testing"

func TestIsNewer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{
			name:    "same version",
			current: "1.0.0",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "same version with v prefix on current",
			current: "v1.0.0",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "same version with v prefix on latest",
			current: "1.0.0",
			latest:  "v1.0.0",
			want:    false,
		},
		{
			name:    "same version with v prefix on both",
			current: "v1.0.0",
			latest:  "v1.0.0",
			want:    false,
		},
		{
			name:    "newer version available",
			current: "1.0.0",
			latest:  "1.1.0",
			want:    true,
		},
		{
			name:    "major version bump",
			current: "1.0.0",
			latest:  "2.0.0",
			want:    true,
		},
		{
			name:    "patch version bump",
			current: "1.0.0",
			latest:  "1.0.1",
			want:    true,
		},
		{
			name:    "devel version never outdated",
			current: "devel",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "unknown version never outdated",
			current: "unknown",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "dirty version never outdated",
			current: "1.0.0-dirty",
			latest:  "1.1.0",
			want:    false,
		},
		{
			name:    "empty version never outdated",
			current: "",
			latest:  "1.0.0",
			want:    false,
		},
		{
			name:    "older latest is not newer",
			current: "v1.2.0",
			latest:  "v1.1.9",
			want:    false,
		},
		{
			name:    "minor beats patch",
			current: "v1.1.9",
			latest:  "v1.2.0",
			want:    true,
		},
		{
			name:    "prerelease version never outdated",
			current: "1.0.0-0.abc123",
			latest:  "1.1.0",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsNewer(tt.current, tt.latest); got != tt.want {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    bool
	}{
		{"devel", true},
		{"unknown", true},
		{"", true},
		{"v0.3.1-dirty", true},
		{"v0.0.0-0.20251017-abcdef", true},
		{"v1.4.2", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()
			if got := IsDevelopment(tt.version); got != tt.want {
				t.Errorf("IsDevelopment(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
