package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 5, c.Summary.NumSentences)
	assert.Equal(t, 500, c.Summary.FallbackChars)
	assert.Equal(t, []string{FormatText, FormatPDF}, c.Output.Formats)
	assert.Equal(t, 120*time.Second, c.TranscriptTimeout())
	assert.Equal(t, 15*time.Second, c.MetadataTimeout())
}

func TestLoadFromFile_NoFileUsesDefaults(t *testing.T) {
	c, err := LoadFromFile("", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFromFile_OverridesAndExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "TUBE_SUMMARY_TEST_PROXY_HOST=10.0.0.8\n")
	t.Cleanup(func() { os.Unsetenv("TUBE_SUMMARY_TEST_PROXY_HOST") })

	cfgFile := writeFile(t, dir, "config.yaml", `
Sock5Proxy:
  Host: "${TUBE_SUMMARY_TEST_PROXY_HOST}"
  Port: 1080
  Enable: true
Summary:
  NumSentences: 3
Output:
  Dir: "summaries"
  Formats: ["TXT", " docx "]
`)

	c, err := LoadFromFile(cfgFile, envFile)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.8", c.Sock5Proxy.Host)
	assert.Equal(t, int32(1080), c.Sock5Proxy.Port)
	assert.Equal(t, 3, c.Summary.NumSentences)
	assert.Equal(t, 500, c.Summary.FallbackChars, "未配置的字段应保留默认值")
	assert.Equal(t, "summaries", c.Output.Dir)
	assert.Equal(t, []string{FormatText, FormatDOCX}, c.Output.Formats)
	assert.Equal(t, "en.*,en", c.Transcript.Languages)
}

func TestLoadFromFile_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := LoadFromFile("", filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadFromFile_MissingConfigFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nonexistent.yaml"), "")
	assert.Error(t, err)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	cfgFile := writeFile(t, t.TempDir(), "config.yaml", "Summary: [not, a, map")
	_, err := LoadFromFile(cfgFile, "")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "默认配置有效",
			mutate: func(c *Config) {},
		},
		{
			name:    "代理缺少主机",
			mutate:  func(c *Config) { c.Sock5Proxy = Sock5Proxy{Enable: true, Port: 1080} },
			wantErr: "Sock5Proxy.Host",
		},
		{
			name:    "代理端口非法",
			mutate:  func(c *Config) { c.Sock5Proxy = Sock5Proxy{Enable: true, Host: "127.0.0.1"} },
			wantErr: "Sock5Proxy.Port",
		},
		{
			name:    "句子数为负",
			mutate:  func(c *Config) { c.Summary.NumSentences = -1 },
			wantErr: "Summary.NumSentences",
		},
		{
			name:    "未知导出格式",
			mutate:  func(c *Config) { c.Output.Formats = []string{"txt", "html"} },
			wantErr: "Output.Formats[1]",
		},
		{
			name:    "导出格式为空",
			mutate:  func(c *Config) { c.Output.Formats = nil },
			wantErr: "Output.Formats",
		},
		{
			name:    "输出目录为空",
			mutate:  func(c *Config) { c.Output.Dir = "" },
			wantErr: "Output.Dir",
		},
		{
			name:    "元数据接口为空",
			mutate:  func(c *Config) { c.Metadata.Endpoint = "" },
			wantErr: "Metadata.Endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_FillsZeroSummaryDefaults(t *testing.T) {
	c := Default()
	c.Summary = Summary{}
	require.NoError(t, c.Validate())
	assert.Equal(t, 5, c.Summary.NumSentences)
	assert.Equal(t, 500, c.Summary.FallbackChars)
}

func TestParseFormats(t *testing.T) {
	assert.Equal(t, []string{"txt", "pdf"}, ParseFormats("TXT, pdf"))
	assert.Equal(t, []string{"docx"}, ParseFormats(",docx,,"))
	assert.Nil(t, ParseFormats(""))
}
