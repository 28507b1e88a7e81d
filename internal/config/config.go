package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "txt"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type Summary struct {
	NumSentences  int `yaml:"NumSentences"`  // 摘要句子数，默认 5
	FallbackChars int `yaml:"FallbackChars"` // 无法打分时截取的字符数，默认 500
}

type Transcript struct {
	Languages   string `yaml:"Languages"`   // yt-dlp --sub-langs，如 "en.*,en"
	Timeout     int    `yaml:"Timeout"`     // 获取字幕超时（秒）
	AutoInstall bool   `yaml:"AutoInstall"` // 启动时自动安装 yt-dlp
}

type Metadata struct {
	Endpoint string `yaml:"Endpoint"` // oEmbed 接口地址
	Timeout  int    `yaml:"Timeout"`  // 获取元数据超时（秒）
}

type Output struct {
	Dir     string   `yaml:"Dir"`
	Formats []string `yaml:"Formats"` // "txt" / "pdf" / "docx"
}

type Log struct {
	Level string `yaml:"Level"`
	Dir   string `yaml:"Dir"`
	File  string `yaml:"File"`
}

type Config struct {
	Sock5Proxy Sock5Proxy `yaml:"Sock5Proxy"`
	Summary    Summary    `yaml:"Summary"`
	Transcript Transcript `yaml:"Transcript"`
	Metadata   Metadata   `yaml:"Metadata"`
	Output     Output     `yaml:"Output"`
	Log        Log        `yaml:"Log"`
}

// Default 返回不依赖配置文件即可运行的默认配置
func Default() *Config {
	return &Config{
		Summary: Summary{
			NumSentences:  5,
			FallbackChars: 500,
		},
		Transcript: Transcript{
			Languages:   "en.*,en",
			Timeout:     120,
			AutoInstall: true,
		},
		Metadata: Metadata{
			Endpoint: "https://www.youtube.com/oembed",
			Timeout:  15,
		},
		Output: Output{
			Dir:     "output",
			Formats: []string{FormatText, FormatPDF},
		},
		Log: Log{
			Level: "info",
			Dir:   "logs",
			File:  "tube-summary.log",
		},
	}
}

// LoadFromFile 读取配置文件，文件中未出现的字段保留默认值
// 文件内容中的 ${VAR} 会被环境变量替换，envFile 存在时先加载
func LoadFromFile(filename, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("加载环境变量文件失败: %w", err)
		}
	}

	c := Default()
	if filename == "" {
		return c, c.Validate()
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), c)
	if err != nil {
		return nil, err
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate 验证配置的有效性并补齐缺省值
func (c *Config) Validate() error {
	// 验证 Sock5Proxy
	if c.Sock5Proxy.Enable {
		if c.Sock5Proxy.Host == "" {
			return fmt.Errorf("Sock5Proxy.Host 不能为空")
		}
		if c.Sock5Proxy.Port <= 0 {
			return fmt.Errorf("Sock5Proxy.Port 必须大于 0")
		}
	}

	// 验证 Summary
	if c.Summary.NumSentences < 0 {
		return fmt.Errorf("Summary.NumSentences 必须 >= 0")
	}
	if c.Summary.FallbackChars < 0 {
		return fmt.Errorf("Summary.FallbackChars 必须 >= 0")
	}
	if c.Summary.NumSentences == 0 {
		c.Summary.NumSentences = 5
	}
	if c.Summary.FallbackChars == 0 {
		c.Summary.FallbackChars = 500
	}

	// 验证 Transcript / Metadata
	if c.Transcript.Timeout < 0 {
		return fmt.Errorf("Transcript.Timeout 必须 >= 0")
	}
	if c.Metadata.Timeout < 0 {
		return fmt.Errorf("Metadata.Timeout 必须 >= 0")
	}
	if c.Transcript.Languages == "" {
		c.Transcript.Languages = "en.*,en"
	}
	if c.Metadata.Endpoint == "" {
		return fmt.Errorf("Metadata.Endpoint 不能为空")
	}

	// 验证 Output
	if c.Output.Dir == "" {
		return fmt.Errorf("Output.Dir 不能为空")
	}
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("Output.Formats 不能为空")
	}
	for i, format := range c.Output.Formats {
		format = strings.ToLower(strings.TrimSpace(format))
		if format != FormatText && format != FormatPDF && format != FormatDOCX {
			return fmt.Errorf("Output.Formats[%d] 必须是 'txt', 'pdf' 或 'docx'", i)
		}
		c.Output.Formats[i] = format
	}

	return nil
}

// ParseFormats 解析命令行传入的逗号分隔格式列表
func ParseFormats(s string) []string {
	var formats []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			formats = append(formats, part)
		}
	}
	return formats
}

// TranscriptTimeout 返回获取字幕的超时时间，0 表示不限
func (c *Config) TranscriptTimeout() time.Duration {
	return time.Duration(c.Transcript.Timeout) * time.Second
}

// MetadataTimeout 返回获取元数据的超时时间，0 表示不限
func (c *Config) MetadataTimeout() time.Duration {
	return time.Duration(c.Metadata.Timeout) * time.Second
}
