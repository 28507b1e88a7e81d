package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fachebot/tube-summary/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_InvalidLevel(t *testing.T) {
	err := Setup(config.Log{Level: "verbose"})
	assert.Error(t, err)
}

func TestSetup_WritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Setup(config.Log{Level: "debug", Dir: dir, File: "test.log"}))

	var console bytes.Buffer
	SetOutput(&console)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Infof("[Test] 写入日志 %d", 42)
	Debugf("[Test] 调试信息")

	assert.Contains(t, console.String(), "[Test] 写入日志 42")
	assert.Contains(t, console.String(), "[Test] 调试信息")

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"[Test] 写入日志 42"`)
}

func TestSetup_LevelFiltersConsole(t *testing.T) {
	require.NoError(t, Setup(config.Log{Level: "warn"}))
	t.Cleanup(func() { _ = Setup(config.Log{Level: "info"}) })

	var console bytes.Buffer
	SetOutput(&console)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Infof("[Test] 被过滤")
	Warnf("[Test] 警告")

	assert.NotContains(t, console.String(), "被过滤")
	assert.Contains(t, console.String(), "警告")
}
