package svc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fachebot/tube-summary/internal/config"
	"github.com/fachebot/tube-summary/internal/export"
	"github.com/fachebot/tube-summary/internal/logger"
	"github.com/fachebot/tube-summary/internal/summarizer"
	"github.com/fachebot/tube-summary/internal/youtube"

	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config           *config.Config
	TransportProxy   *http.Transport
	HTTPClient       *http.Client
	Resources        *summarizer.Resources
	Summarizer       *summarizer.Summarizer
	TranscriptClient *youtube.TranscriptClient
	MetadataClient   *youtube.MetadataClient
	Exporter         *export.Exporter
}

func NewServiceContext(ctx context.Context, c *config.Config) *ServiceContext {
	// 加载语言资源
	res, err := summarizer.LoadResources()
	if err != nil {
		logger.Fatalf("加载语言资源失败, %v", err)
	}

	// 安装yt-dlp
	if c.Transcript.AutoInstall {
		if err := youtube.InstallYTDLP(ctx); err != nil {
			logger.Fatalf("安装yt-dlp失败, %v", err)
		}
	}

	// 创建SOCKS5代理
	transportProxy, err := NewProxyTransport(c.Sock5Proxy)
	if err != nil {
		logger.Fatalf("创建SOCKS5代理失败, %v", err)
	}

	httpClient := &http.Client{}
	if transportProxy != nil {
		httpClient.Transport = transportProxy
	}

	svcCtx := &ServiceContext{
		Config:           c,
		TransportProxy:   transportProxy,
		HTTPClient:       httpClient,
		Resources:        res,
		Summarizer:       summarizer.New(res, summarizer.WithFallbackChars(c.Summary.FallbackChars)),
		TranscriptClient: youtube.NewTranscriptClient(c.Transcript, ProxyURL(c.Sock5Proxy)),
		MetadataClient:   youtube.NewMetadataClient(httpClient, c.Metadata),
		Exporter:         export.NewExporter(&c.Output),
	}
	return svcCtx
}

// NewProxyTransport 未启用代理时返回 nil
func NewProxyTransport(p config.Sock5Proxy) (*http.Transport, error) {
	if !p.Enable {
		return nil, nil
	}

	socks5Proxy := fmt.Sprintf("%s:%d", p.Host, p.Port)
	dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{Dial: dialer.Dial}
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		transport.DialContext = cd.DialContext
	}
	return transport, nil
}

// ProxyURL 传给 yt-dlp 的代理地址，未启用时为空
func ProxyURL(p config.Sock5Proxy) string {
	if !p.Enable {
		return ""
	}
	return fmt.Sprintf("socks5://%s:%d", p.Host, p.Port)
}
