package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConsoleReportPrefixesClockAndLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.now = func() time.Time { return time.Date(2024, 1, 2, 7, 5, 9, 0, time.UTC) }

	c.Report(LevelInfo, "starting")
	c.Report(LevelWarn, "File b.html not found")
	c.Errorf("Could not create %s", "/tmp/x")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Contains(t, line, "[07:05:09]")
	}
	require.True(t, strings.HasSuffix(lines[0], "starting"))
	require.NotContains(t, lines[0], "INFO")
	require.Contains(t, lines[1], "WARNING:")
	require.True(t, strings.HasSuffix(lines[1], "File b.html not found"))
	require.Contains(t, lines[2], "ERROR:")
	require.True(t, strings.HasSuffix(lines[2], "Could not create /tmp/x"))
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARNING", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
}
