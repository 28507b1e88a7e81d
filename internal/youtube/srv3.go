package youtube

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Fragment 一条带时间轴的字幕
type Fragment struct {
	Start    time.Duration
	Duration time.Duration
	Text     string
}

// srv3 timedtext 格式
type timedText struct {
	XMLName xml.Name `xml:"timedtext"`
	Body    body     `xml:"body"`
}

type body struct {
	Paragraphs []paragraph `xml:"p"`
}

type paragraph struct {
	Time     string    `xml:"t,attr"`
	Duration string    `xml:"d,attr"`
	Content  string    `xml:",chardata"`
	Segments []segment `xml:"s"`
}

// segment 自动字幕中的逐词片段
type segment struct {
	Time string `xml:"t,attr"`
	Text string `xml:",chardata"`
}

// ParseSRV3 解析 yt-dlp 下载的 srv3 字幕，跳过空段落
func ParseSRV3(r io.Reader) ([]Fragment, error) {
	var tt timedText
	if err := xml.NewDecoder(r).Decode(&tt); err != nil {
		return nil, fmt.Errorf("解析 srv3 字幕失败: %w", err)
	}

	fragments := make([]Fragment, 0, len(tt.Body.Paragraphs))
	for _, p := range tt.Body.Paragraphs {
		text := p.Content
		if len(p.Segments) > 0 {
			var sb strings.Builder
			for _, s := range p.Segments {
				sb.WriteString(s.Text)
			}
			text = sb.String()
		}

		text = strings.Join(strings.Fields(text), " ")
		if text == "" {
			continue
		}

		fragments = append(fragments, Fragment{
			Start:    parseMillis(p.Time),
			Duration: parseMillis(p.Duration),
			Text:     text,
		})
	}
	return fragments, nil
}

func parseMillis(s string) time.Duration {
	ms, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// JoinFragments 把字幕文本以单个空格拼接为完整文稿
func JoinFragments(fragments []Fragment) string {
	texts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		text := strings.TrimSpace(f.Text)
		if text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, " ")
}
