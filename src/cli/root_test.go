// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/multilog/src/cli"
	"github.com/H0llyW00dzZ/multilog/src/config"
	"github.com/H0llyW00dzZ/multilog/src/internal/helper/diag"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

func setup(t *testing.T) (dir, cfgPath string) {
	t.Helper()

	t.Setenv(config.FileEnvKey, "")
	t.Setenv(transport.LevelEnvKey, "")
	t.Setenv(diag.EnvKey, "test")
	for _, key := range []string{"MULTILOG_TYPE", "MULTILOG_DIR", "MULTILOG_ENCODING", "MULTILOG_FILE_LEVEL", "MULTILOG_CONSOLE_LEVEL"} {
		t.Setenv(key, "")
	}

	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "multilog.yaml")
	content := fmt.Sprintf(`type: application
dir: %q
buffer: true
appLogName: app.log
coreLogName: core.log
agentLogName: agent.log
errorLogName: common-error.log
customLoggers:
  - name: audit
    file: audit.log
    concentrateError: redirect
`, dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return dir, cfgPath
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := cli.NewRootCommand(version)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestEmit(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, dir, cfgPath string)
	}{
		{
			name: "Message",
			testFunc: func(t *testing.T, dir, cfgPath string) {
				_, err := run(t, "", "emit", "-c", cfgPath, "service", "started")
				require.NoError(t, err)

				assert.Regexp(t, `INFO \d+ service started\n$`, readFile(t, filepath.Join(dir, "app.log")))
			},
		},
		{
			name: "ErrorIsConcentrated",
			testFunc: func(t *testing.T, dir, cfgPath string) {
				_, err := run(t, "", "emit", "-c", cfgPath, "-l", "audit", "--level", "error", "denied")
				require.NoError(t, err)

				assert.NotContains(t, readFile(t, filepath.Join(dir, "audit.log")), "denied")
				assert.Contains(t, readFile(t, filepath.Join(dir, "common-error.log")), "ERROR")
				assert.Contains(t, readFile(t, filepath.Join(dir, "common-error.log")), "denied")
			},
		},
		{
			name: "Stdin",
			testFunc: func(t *testing.T, dir, cfgPath string) {
				_, err := run(t, "first\nsecond\n", "emit", "-c", cfgPath, "-l", "coreLogger", "--stdin")
				require.NoError(t, err)

				lines := strings.Split(strings.TrimSuffix(readFile(t, filepath.Join(dir, "core.log")), "\n"), "\n")
				require.Len(t, lines, 2)
				assert.True(t, strings.HasSuffix(lines[0], "first"))
				assert.True(t, strings.HasSuffix(lines[1], "second"))
			},
		},
		{
			name: "Raw",
			testFunc: func(t *testing.T, dir, cfgPath string) {
				_, err := run(t, "", "emit", "-c", cfgPath, "--raw", "--level", "debug", "preformatted")
				require.NoError(t, err)

				assert.Equal(t, "preformatted\n", readFile(t, filepath.Join(dir, "app.log")))
			},
		},
		{
			name: "BelowThreshold",
			testFunc: func(t *testing.T, dir, cfgPath string) {
				_, err := run(t, "", "emit", "-c", cfgPath, "--level", "debug", "hidden")
				require.NoError(t, err)

				assert.Empty(t, readFile(t, filepath.Join(dir, "app.log")))
			},
		},
		{
			name: "Metrics",
			testFunc: func(t *testing.T, _, cfgPath string) {
				out, err := run(t, "", "emit", "-c", cfgPath, "--metrics", "counted")
				require.NoError(t, err)

				assert.Contains(t, out, "multilog_transport_flushes_total")
				assert.Contains(t, out, "multilog_transport_written_bytes_total")
			},
		},
		{
			name: "UnknownLogger",
			testFunc: func(t *testing.T, _, cfgPath string) {
				_, err := run(t, "", "emit", "-c", cfgPath, "-l", "nope", "x")
				assert.ErrorIs(t, err, cli.ErrUnknownLogger)
			},
		},
		{
			name: "UnknownLevel",
			testFunc: func(t *testing.T, _, cfgPath string) {
				_, err := run(t, "", "emit", "-c", cfgPath, "--level", "loud", "x")
				assert.ErrorIs(t, err, level.ErrUnknownLevel)
			},
		},
		{
			name: "NothingToEmit",
			testFunc: func(t *testing.T, _, cfgPath string) {
				_, err := run(t, "", "emit", "-c", cfgPath)
				assert.ErrorContains(t, err, "nothing to emit")
			},
		},
		{
			name: "ConfigRequired",
			testFunc: func(t *testing.T, _, _ string) {
				_, err := run(t, "", "emit", "x")
				assert.ErrorIs(t, err, cli.ErrConfigRequired)
			},
		},
		{
			name: "ConfigFromEnvironment",
			testFunc: func(t *testing.T, dir, cfgPath string) {
				t.Setenv(config.FileEnvKey, cfgPath)

				_, err := run(t, "", "emit", "from env")
				require.NoError(t, err)
				assert.Contains(t, readFile(t, filepath.Join(dir, "app.log")), "from env")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, cfgPath := setup(t)
			tt.testFunc(t, dir, cfgPath)
		})
	}
}

func TestInspect(t *testing.T) {
	_, cfgPath := setup(t)

	out, err := run(t, "", "inspect", "-c", cfgPath)
	require.NoError(t, err)

	for _, want := range []string{
		"errorLogger",
		"coreLogger",
		"audit",
		"buffered_file",
		"console",
		"duplicate",
		"redirect",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "|")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
