package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillFromBuildInfo(t *testing.T) {
	tests := []struct {
		name     string
		info     Info
		build    debug.BuildInfo
		expected Info
	}{
		{
			name: "module version and vcs settings",
			info: Info{Version: "dev", GitCommit: "unknown", BuildDate: "unknown"},
			build: debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				},
			},
			expected: Info{Version: "v0.3.0", GitCommit: "abc123", BuildDate: "2026-01-02T03:04:05Z"},
		},
		{
			name:     "devel build keeps dev",
			info:     Info{Version: "dev", GitCommit: "unknown", BuildDate: "unknown"},
			build:    debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected: Info{Version: "dev", GitCommit: "unknown", BuildDate: "unknown"},
		},
		{
			name: "ldflags win",
			info: Info{Version: "v1.0.0", GitCommit: "fff", BuildDate: "today"},
			build: debug.BuildInfo{
				Main:     debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
			},
			expected: Info{Version: "v1.0.0", GitCommit: "fff", BuildDate: "today"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.info
			fillFromBuildInfo(&info, &tt.build)
			require.Equal(t, tt.expected, info)
		})
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.3", GitCommit: "abc", BuildDate: "now", GoVersion: "go1.23", Platform: "linux/amd64"}
	require.Equal(t, "order-imports version v1.2.3", info.Short())
	require.Equal(t, "order-imports version v1.2.3\nGit commit: abc\nBuild date: now\nGo version: go1.23\nPlatform: linux/amd64", info.String())
}
