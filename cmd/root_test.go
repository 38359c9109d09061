package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/stattab/pkg/logger"
	"github.com/oakwood-commons/stattab/pkg/settings"
)

// execute runs the root command with args and captures stdout. Flag state is
// package-global, so every run starts from the declared defaults.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunDemoNoPaint(t *testing.T) {
	out, err := execute(t,
		"--rows", "2",
		"--interval", "0",
		"--no-paint",
		"--headers", "h1,h2",
	)
	require.NoError(t, err)

	// With painting disabled only the final append is written.
	assert.NotContains(t, out, "\033[F")
	assert.Contains(t, out, "| STATISTICS |")
	assert.Contains(t, out, "| h1 | h2 |")
	assert.Contains(t, out, "| 1  | 10 |")
	assert.Contains(t, out, "| 2  | 20 |")
}

func TestRunDemoRejectsBadResetMode(t *testing.T) {
	_, err := execute(t,
		"--rows", "1",
		"--interval", "0",
		"--no-paint",
		"--reset-mode", "bogus",
	)
	assert.Error(t, err)
}

func TestRunDemoBuildsRunContext(t *testing.T) {
	_, err := execute(t,
		"--rows", "1",
		"--interval", "0",
		"--no-paint",
		"--log-level", "-1",
	)
	require.NoError(t, err)

	params, ok := settings.FromContext(rootCmd.Context())
	require.True(t, ok)
	assert.True(t, params.IsQuiet)
	assert.EqualValues(t, -1, params.MinLogLevel)

	// The command context carries a real logger, not the noop fallback.
	assert.NotSame(t, logger.GetNoopLogger(), logger.FromContext(rootCmd.Context()))
}

func TestRunDemoTailWindow(t *testing.T) {
	out, err := execute(t,
		"--rows", "3",
		"--interval", "0",
		"--no-paint",
		"--headers", "h1",
		"--tail", "1",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "| 3  |")
	assert.NotContains(t, out, "| 1  |")
	assert.NotContains(t, out, "| 2  |")
}

func TestRunDemoConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: PIPELINE
headers:
  - key: in
  - key: out
`), 0o644))

	out, err := execute(t,
		"--rows", "1",
		"--interval", "0",
		"--no-paint",
		"--config", path,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "| PIPELINE |")
	assert.Contains(t, out, "| in | out |")
}

func TestParseHeaders(t *testing.T) {
	headers := parseHeaders(" h1, h2 ,,h3 ")
	require.Len(t, headers, 3)
	assert.Equal(t, "h1", headers[0].Key)
	assert.Equal(t, "h2", headers[1].Key)
	assert.Equal(t, "h3", headers[2].Key)
}

func TestSyntheticSampleWidensPerColumn(t *testing.T) {
	headers := parseHeaders("a,b,c")
	sample := syntheticSample(headers, 3)
	assert.Equal(t, 3, sample["a"])
	assert.Equal(t, 30, sample["b"])
	assert.Equal(t, 300, sample["c"])
}
