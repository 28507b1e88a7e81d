package videoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"标准观看链接", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"v 不在首位", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ"},
		{"短链接", "https://youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ"},
		{"嵌入链接", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"旧式 v 路径", "http://youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts", "https://youtube.com/shorts/a-_B1c2D3e4", "a-_B1c2D3e4"},
		{"直播", "https://www.youtube.com/live/dQw4w9WgXcQ?feature=shared", "dQw4w9WgXcQ"},
		{"移动端", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"music", "https://music.youtube.com/watch?v=dQw4w9WgXcQ&list=RD", "dQw4w9WgXcQ"},
		{"nocookie", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"无协议", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"前后空白", "  https://youtu.be/dQw4w9WgXcQ\n", "dQw4w9WgXcQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Extract(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestExtract_Invalid(t *testing.T) {
	urls := []string{
		"",
		"https://example.com/video",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQX",
		"https://www.youtube.com/channel/UC1234567890",
		"https://youtu.be/",
		"https://www.youtube.com/embed/dQw4w9Wg!cQ",
		"not a url",
	}

	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			_, err := Extract(u)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", WatchURL("dQw4w9WgXcQ"))
}
