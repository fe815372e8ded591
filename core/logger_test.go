package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/named-data/pngmsg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesToFile(t *testing.T) {
	defer core.SetConfig(core.DefaultConfig())

	c := core.DefaultConfig()
	c.Core.LogLevel = "warn"
	c.Core.LogFile = filepath.Join(t.TempDir(), "pngmsg.log")
	core.SetConfig(c)

	require.NoError(t, core.InitializeLogger())
	core.LogInfo("Test", "not written")
	core.LogWarn("Test", "chunk ", 3, " has ", uint32(42), " bytes")
	core.ShutdownLogger()

	content, err := os.ReadFile(c.Core.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[Test] chunk 3 has 42 bytes")
	assert.NotContains(t, string(content), "not written")
}

func TestLoggerTraceLevel(t *testing.T) {
	defer core.SetConfig(core.DefaultConfig())

	c := core.DefaultConfig()
	c.Core.LogLevel = "TRACE"
	c.Core.LogFile = filepath.Join(t.TempDir(), "pngmsg.log")
	core.SetConfig(c)

	require.NoError(t, core.InitializeLogger())
	core.LogTrace("Test", "trace message")
	core.ShutdownLogger()

	content, err := os.ReadFile(c.Core.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[Test] trace message")
}

func TestLoggerBadFile(t *testing.T) {
	defer core.SetConfig(core.DefaultConfig())

	c := core.DefaultConfig()
	c.Core.LogFile = filepath.Join(t.TempDir(), "missing", "pngmsg.log")
	core.SetConfig(c)
	assert.Error(t, core.InitializeLogger())
}
