package pipeline

import "github.com/fachebot/tube-summary/internal/youtube"

// Options 单次运行参数
type Options struct {
	NumSentences   int    // 摘要句子数，<=0 时使用默认值
	TranscriptFile string // 本地字幕文件，非空时不再在线获取字幕
}

// Result 一次运行的结果
type Result struct {
	VideoID    string
	Metadata   youtube.MetadataResult
	Transcript string // 清洗后的文稿
	Summary    string
	Files      []string
}

// Title 展示用标题，元数据不可用时退回视频 ID
func (r *Result) Title() string {
	if r.Metadata.OK() {
		return r.Metadata.Metadata.Title
	}
	return r.VideoID
}
