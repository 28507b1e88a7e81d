package videoid

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidInput 链接不是可识别的视频地址
var ErrInvalidInput = errors.New("无法从链接中识别视频 ID")

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// 路径形式的链接前缀，如 /embed/ID、/shorts/ID
var pathPrefixes = []string{"embed", "v", "e", "shorts", "live"}

// Extract 从视频链接中提取 11 位视频 ID
// 支持 watch?v=、youtu.be/、/embed/、/v/、/e/、/shorts/、/live/ 以及 youtube-nocookie.com
func Extract(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrInvalidInput
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrInvalidInput
	}

	host := strings.ToLower(u.Hostname())
	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })

	var id string
	switch {
	case host == "youtu.be":
		if len(segments) > 0 {
			id = segments[0]
		}
	case isYouTubeHost(host):
		id = u.Query().Get("v")
		if id == "" && len(segments) >= 2 {
			for _, prefix := range pathPrefixes {
				if segments[0] == prefix {
					id = segments[1]
					break
				}
			}
		}
	}

	if !idPattern.MatchString(id) {
		return "", ErrInvalidInput
	}
	return id, nil
}

func isYouTubeHost(host string) bool {
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")
	host = strings.TrimPrefix(host, "music.")
	return host == "youtube.com" || host == "youtube-nocookie.com"
}

// WatchURL 构造标准观看链接
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
