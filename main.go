package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fachebot/tube-summary/internal/config"
	"github.com/fachebot/tube-summary/internal/logger"
	"github.com/fachebot/tube-summary/internal/pipeline"
	"github.com/fachebot/tube-summary/internal/svc"
	"github.com/fachebot/tube-summary/internal/videoid"
	"github.com/fachebot/tube-summary/internal/youtube"
)

const (
	exitOK = iota
	exitStartup
	exitInvalidInput
	exitTranscriptUnavailable
	exitExportFailed
)

var (
	configFile     = flag.String("f", "", "the config file (optional)")
	envFile        = flag.String("env", ".env", "the env file loaded before the config")
	numSentences   = flag.Int("n", 0, "number of summary sentences (default from config)")
	outputDir      = flag.String("o", "", "output directory (default from config)")
	formats        = flag.String("formats", "", "comma separated export formats: txt,pdf,docx")
	transcriptFile = flag.String("transcript", "", "summarize a local .srv3 or text transcript instead of fetching")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <youtube-url>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	rawURL := flag.Arg(0)
	if rawURL == "" && *transcriptFile == "" {
		flag.Usage()
		return exitInvalidInput
	}

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile, *envFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}
	applyFlags(c)
	if err := c.Validate(); err != nil {
		logger.Fatalf("参数无效, %s", err)
	}

	if err := logger.Setup(c.Log); err != nil {
		logger.Fatalf("初始化日志失败, %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(ctx, c)
	p := pipeline.NewPipeline(svcCtx.TranscriptClient, svcCtx.MetadataClient, svcCtx.Summarizer, svcCtx.Exporter)

	result, err := p.Run(ctx, rawURL, pipeline.Options{
		NumSentences:   c.Summary.NumSentences,
		TranscriptFile: *transcriptFile,
	})
	if result != nil {
		printResult(result)
	}
	return exitCode(err)
}

// applyFlags 命令行参数覆盖配置文件
func applyFlags(c *config.Config) {
	if *numSentences > 0 {
		c.Summary.NumSentences = *numSentences
	}
	if *outputDir != "" {
		c.Output.Dir = *outputDir
	}
	if *formats != "" {
		c.Output.Formats = config.ParseFormats(*formats)
	}
	// 使用本地字幕时不需要yt-dlp
	if *transcriptFile != "" {
		c.Transcript.AutoInstall = false
	}
}

func printResult(r *pipeline.Result) {
	if r.Metadata.OK() {
		fmt.Printf("%s\n", r.Metadata.Metadata.Title)
		fmt.Printf("%s\n\n", r.Metadata.Metadata.ThumbnailURL)
	} else {
		fmt.Printf("Couldn't load video details (%s)\n\n", r.Metadata.Status)
	}

	fmt.Printf("Summary:\n%s\n", r.Summary)
	for _, f := range r.Files {
		fmt.Printf("Saved: %s\n", f)
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, videoid.ErrInvalidInput):
		logger.Errorf("Invalid YouTube URL: %v", err)
		return exitInvalidInput
	case errors.Is(err, youtube.ErrTranscriptUnavailable):
		logger.Errorf("No transcript available: %v", err)
		return exitTranscriptUnavailable
	case errors.Is(err, pipeline.ErrExport):
		logger.Errorf("%v", err)
		return exitExportFailed
	default:
		logger.Errorf("运行失败: %v", err)
		return exitStartup
	}
}
