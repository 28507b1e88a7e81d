package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fachebot/tube-summary/internal/config"
	"github.com/fachebot/tube-summary/internal/logger"
	"github.com/fachebot/tube-summary/internal/videoid"

	"github.com/lrstanley/go-ytdlp"
)

// ErrTranscriptUnavailable 视频没有可用字幕（无字幕、私有、已删除或被限流）
var ErrTranscriptUnavailable = errors.New("没有可用的字幕")

// subtitleDownloader 下载字幕文件到 outputTemplate 指定的位置（便于测试注入 mock）
type subtitleDownloader interface {
	Download(ctx context.Context, videoURL, outputTemplate string) error
}

type ytdlpDownloader struct {
	languages string
	proxy     string
}

func (d *ytdlpDownloader) Download(ctx context.Context, videoURL, outputTemplate string) error {
	dl := ytdlp.New().
		SkipDownload().
		WriteSubs().
		WriteAutoSubs().
		SubLangs(d.languages).
		SubFormat("srv3").
		ForceOverwrites().
		Output(outputTemplate)

	if d.proxy != "" {
		dl = dl.Proxy(d.proxy)
	}

	_, err := dl.Run(ctx, videoURL)
	return err
}

// InstallYTDLP 确保本地有可用的 yt-dlp 可执行文件
func InstallYTDLP(ctx context.Context) error {
	_, err := ytdlp.Install(ctx, nil)
	return err
}

type TranscriptClient struct {
	downloader subtitleDownloader
	timeout    time.Duration
}

// NewTranscriptClient proxyURL 为空时直连
func NewTranscriptClient(c config.Transcript, proxyURL string) *TranscriptClient {
	return &TranscriptClient{
		downloader: &ytdlpDownloader{languages: c.Languages, proxy: proxyURL},
		timeout:    time.Duration(c.Timeout) * time.Second,
	}
}

// Fetch 下载并解析视频字幕，任何失败都包装为 ErrTranscriptUnavailable
func (c *TranscriptClient) Fetch(ctx context.Context, id string) ([]Fragment, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	tmpDir, err := os.MkdirTemp("", "tube-summary-*")
	if err != nil {
		return nil, fmt.Errorf("创建临时目录失败: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	logger.Debugf("[YouTube] 开始下载字幕, video: %s", id)
	outputTemplate := filepath.Join(tmpDir, id+".%(ext)s")
	if err := c.downloader.Download(ctx, videoid.WatchURL(id), outputTemplate); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}

	path, err := pickSubtitleFile(tmpDir, id)
	if err != nil {
		return nil, err
	}

	fragments, err := LoadTranscriptFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}
	if len(fragments) == 0 {
		return nil, fmt.Errorf("%w: 字幕内容为空", ErrTranscriptUnavailable)
	}

	logger.Infof("[YouTube] 获取字幕成功, video: %s, file: %s, fragments: %d", id, filepath.Base(path), len(fragments))
	return fragments, nil
}

// pickSubtitleFile 优先选择 <id>.en.srv3，否则按文件名排序取第一个
func pickSubtitleFile(dir, id string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.srv3"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: 未找到字幕文件", ErrTranscriptUnavailable)
	}

	sort.Strings(matches)
	preferred := filepath.Join(dir, id+".en.srv3")
	for _, m := range matches {
		if m == preferred {
			return m, nil
		}
	}
	return matches[0], nil
}

// LoadTranscriptFile 读取本地字幕文件
// .srv3 / .xml 按 timedtext 解析，其他文件整体视为一条纯文本字幕
func LoadTranscriptFile(path string) ([]Fragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".srv3", ".xml":
		return ParseSRV3(f)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, nil
	}
	return []Fragment{{Text: text}}, nil
}
