package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/graphwalk/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		want     *app.Config
		wantExit bool
		wantCode int
		wantOut  string
	}{
		{
			name: "positional path with defaults",
			args: []string{"workload.hcl"},
			want: &app.Config{WorkloadPath: "workload.hcl", LogFormat: "text", LogLevel: "info", WorkerCount: 4},
		},
		{
			name: "long flag wins over shorthand and positional",
			args: []string{"-file", "a.hcl", "-f", "b.hcl", "c.hcl"},
			want: &app.Config{WorkloadPath: "a.hcl", LogFormat: "text", LogLevel: "info", WorkerCount: 4},
		},
		{
			name: "shorthand wins over positional",
			args: []string{"-f", "b.yaml", "c.hcl"},
			want: &app.Config{WorkloadPath: "b.yaml", LogFormat: "text", LogLevel: "info", WorkerCount: 4},
		},
		{
			name: "all options",
			args: []string{"-log-format", "JSON", "-log-level", "Debug", "-workers", "8", "-seed", "42", "dir"},
			want: &app.Config{WorkloadPath: "dir", LogFormat: "json", LogLevel: "debug", WorkerCount: 8, Seed: 42},
		},
		{
			name:     "help",
			args:     []string{"-h"},
			wantExit: true,
			wantOut:  "Usage:",
		},
		{
			name:     "no path prints usage",
			args:     []string{},
			wantExit: true,
			wantOut:  "graphwalk [options] [WORKLOAD_PATH]",
		},
		{
			name:     "unknown flag",
			args:     []string{"-bogus"},
			wantCode: 2,
		},
		{
			name:     "invalid log format",
			args:     []string{"-log-format", "xml", "w.hcl"},
			wantCode: 2,
		},
		{
			name:     "invalid log level",
			args:     []string{"-log-level", "loud", "w.hcl"},
			wantCode: 2,
		},
		{
			name:     "zero workers",
			args:     []string{"-workers", "0", "w.hcl"},
			wantCode: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			cfg, exit, err := Parse(tc.args, &out)

			if tc.wantCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, exit)
			if tc.wantOut != "" {
				assert.Contains(t, out.String(), tc.wantOut)
			}
			if diff := cmp.Diff(tc.want, cfg); diff != "" {
				t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
