package executor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/named-data/pngmsg/core"
	"github.com/named-data/pngmsg/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiler(t *testing.T) {
	dir := t.TempDir()
	c := core.DefaultConfig()
	c.Profile.Cpu = filepath.Join(dir, "cpu.prof")
	c.Profile.Mem = filepath.Join(dir, "mem.prof")
	c.Profile.Block = filepath.Join(dir, "block.prof")

	p := executor.NewProfiler(c)
	require.NoError(t, p.Start())
	p.Stop()

	for _, file := range []string{c.Profile.Cpu, c.Profile.Mem, c.Profile.Block} {
		info, err := os.Stat(file)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), file)
	}
}

func TestProfilerDisabled(t *testing.T) {
	p := executor.NewProfiler(core.DefaultConfig())
	require.NoError(t, p.Start())
	p.Stop()
}

func TestProfilerBadPath(t *testing.T) {
	c := core.DefaultConfig()
	c.Profile.Cpu = filepath.Join(t.TempDir(), "missing", "cpu.prof")
	assert.Error(t, executor.NewProfiler(c).Start())
}
