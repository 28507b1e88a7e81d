package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fachebot/tube-summary/internal/config"
	"github.com/fachebot/tube-summary/internal/videoid"
)

type MetadataStatus int

const (
	MetadataOK MetadataStatus = iota
	MetadataUnavailable
	MetadataMalformed
)

func (s MetadataStatus) String() string {
	switch s {
	case MetadataOK:
		return "ok"
	case MetadataUnavailable:
		return "unavailable"
	case MetadataMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("MetadataStatus(%d)", int(s))
	}
}

// Metadata 视频展示信息
type Metadata struct {
	Title        string
	ThumbnailURL string
	Author       string
}

// MetadataResult 元数据获取结果，失败时 Err 记录原因
type MetadataResult struct {
	Status   MetadataStatus
	Metadata Metadata
	Err      error
}

func (r MetadataResult) OK() bool {
	return r.Status == MetadataOK
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type MetadataClient struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
}

func NewMetadataClient(httpClient *http.Client, c config.Metadata) *MetadataClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &MetadataClient{
		httpClient: httpClient,
		endpoint:   c.Endpoint,
		timeout:    time.Duration(c.Timeout) * time.Second,
	}
}

// Fetch 通过 oEmbed 接口获取标题和缩略图，不返回 error，失败原因见 MetadataResult
func (c *MetadataClient) Fetch(ctx context.Context, id string) MetadataResult {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	query := url.Values{}
	query.Set("url", videoid.WatchURL(id))
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return MetadataResult{Status: MetadataUnavailable, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return MetadataResult{Status: MetadataUnavailable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return MetadataResult{
			Status: MetadataUnavailable,
			Err:    fmt.Errorf("oEmbed 返回状态码 %d", resp.StatusCode),
		}
	}

	var data oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return MetadataResult{Status: MetadataMalformed, Err: fmt.Errorf("解析 oEmbed 响应失败: %w", err)}
	}

	title := strings.TrimSpace(data.Title)
	if title == "" {
		return MetadataResult{Status: MetadataMalformed, Err: fmt.Errorf("oEmbed 响应缺少标题")}
	}

	thumbnail := data.ThumbnailURL
	if thumbnail == "" {
		thumbnail = ThumbnailURL(id)
	}

	return MetadataResult{
		Status: MetadataOK,
		Metadata: Metadata{
			Title:        title,
			ThumbnailURL: thumbnail,
			Author:       data.AuthorName,
		},
	}
}

// ThumbnailURL 返回视频的默认高清缩略图地址
func ThumbnailURL(id string) string {
	return "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"
}
