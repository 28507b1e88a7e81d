package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fachebot/tube-summary/internal/export"
	"github.com/fachebot/tube-summary/internal/logger"
	"github.com/fachebot/tube-summary/internal/summarizer"
	"github.com/fachebot/tube-summary/internal/videoid"
	"github.com/fachebot/tube-summary/internal/youtube"
)

// ErrExport 摘要已生成，但至少一个文件导出失败
var ErrExport = errors.New("导出摘要失败")

// transcriptProvider 获取视频字幕（便于测试注入 mock）
type transcriptProvider interface {
	Fetch(ctx context.Context, id string) ([]youtube.Fragment, error)
}

// metadataProvider 获取视频元数据（便于测试注入 mock）
type metadataProvider interface {
	Fetch(ctx context.Context, id string) youtube.MetadataResult
}

type textSummarizer interface {
	Summarize(text string, n int) string
}

type summaryExporter interface {
	Export(ctx context.Context, videoID, title, summary string) ([]string, error)
}

type Pipeline struct {
	transcripts transcriptProvider
	metadata    metadataProvider
	summarizer  textSummarizer
	exporter    summaryExporter
}

func NewPipeline(
	transcripts *youtube.TranscriptClient,
	metadata *youtube.MetadataClient,
	s *summarizer.Summarizer,
	exporter *export.Exporter,
) *Pipeline {
	p := &Pipeline{
		transcripts: transcripts,
		metadata:    metadata,
		summarizer:  s,
	}
	// exporter 为 nil 时只生成摘要，不写文件
	if exporter != nil {
		p.exporter = exporter
	}
	return p
}

// Run 依次执行：解析链接 -> 元数据 -> 字幕 -> 清洗 -> 摘要 -> 导出
// 链接无效或没有字幕时直接返回错误，不产生任何输出；元数据失败只记录日志
func (p *Pipeline) Run(ctx context.Context, rawURL string, opts Options) (*Result, error) {
	id, err := resolveVideoID(rawURL, opts.TranscriptFile)
	if err != nil {
		return nil, err
	}

	result := &Result{VideoID: id}

	// 获取元数据
	if rawURL != "" {
		result.Metadata = p.metadata.Fetch(ctx, id)
		if result.Metadata.OK() {
			logger.Infof("[Pipeline] 视频标题: %s", result.Metadata.Metadata.Title)
		} else {
			logger.Warnf("[Pipeline] 无法获取视频信息(%s), video: %s, %v", result.Metadata.Status, id, result.Metadata.Err)
		}
	} else {
		result.Metadata = youtube.MetadataResult{Status: youtube.MetadataUnavailable, Err: errors.New("未提供视频链接")}
	}

	// 获取字幕
	fragments, err := p.loadTranscript(ctx, id, opts.TranscriptFile)
	if err != nil {
		return nil, err
	}

	// 清洗并生成摘要
	result.Transcript = summarizer.Clean(youtube.JoinFragments(fragments))
	result.Summary = p.summarizer.Summarize(result.Transcript, opts.NumSentences)
	logger.Infof("[Pipeline] 摘要生成完成, video: %s, 原文 %d 字符, 摘要 %d 字符",
		id, len([]rune(result.Transcript)), len([]rune(result.Summary)))

	if p.exporter == nil {
		return result, nil
	}

	files, err := p.exporter.Export(ctx, id, result.Title(), result.Summary)
	result.Files = files
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrExport, err)
	}
	return result, nil
}

func (p *Pipeline) loadTranscript(ctx context.Context, id, file string) ([]youtube.Fragment, error) {
	if file == "" {
		return p.transcripts.Fetch(ctx, id)
	}

	fragments, err := youtube.LoadTranscriptFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", youtube.ErrTranscriptUnavailable, err)
	}
	if len(fragments) == 0 {
		return nil, fmt.Errorf("%w: 字幕文件为空", youtube.ErrTranscriptUnavailable)
	}
	logger.Infof("[Pipeline] 已读取本地字幕 %s, fragments: %d", file, len(fragments))
	return fragments, nil
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// resolveVideoID 有链接时从链接提取，只有本地字幕时使用文件名
func resolveVideoID(rawURL, transcriptFile string) (string, error) {
	if rawURL != "" || transcriptFile == "" {
		return videoid.Extract(rawURL)
	}

	name := strings.TrimSuffix(filepath.Base(transcriptFile), filepath.Ext(transcriptFile))
	name = strings.Trim(unsafeNameChars.ReplaceAllString(name, "_"), "_")
	if name == "" {
		return "", videoid.ErrInvalidInput
	}
	return name, nil
}
