package summarizer

import (
	"sort"
	"strings"
	"unicode"
)

const (
	// DefaultSentences 默认摘要句子数
	DefaultSentences = 5
	// DefaultFallbackChars 无法打分时截取的字符数
	DefaultFallbackChars = 500
)

const ellipsis = "..."

type Option func(s *Summarizer)

// WithFallbackChars 设置回退截取的字符数，非正数时使用默认值
func WithFallbackChars(n int) Option {
	return func(s *Summarizer) {
		if n > 0 {
			s.fallbackChars = n
		}
	}
}

// Summarizer 基于词频的抽取式摘要
type Summarizer struct {
	res           *Resources
	fallbackChars int
}

func New(res *Resources, opts ...Option) *Summarizer {
	s := &Summarizer{
		res:           res,
		fallbackChars: DefaultFallbackChars,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze 切分句子，统计词频并为每个句子打分
func (s *Summarizer) Analyze(text string) Analysis {
	sentences := s.res.Sentences.Split(text)

	counts := make(map[string]int)
	for _, sentence := range sentences {
		for _, token := range s.res.Words.Tokenize(sentence) {
			if !isAlnum(token) {
				continue
			}
			word := strings.ToLower(token)
			if s.res.IsStopword(word) {
				continue
			}
			counts[word]++
		}
	}
	freq := newFrequencyTable(counts)

	var scores []SentenceScore
	for i, sentence := range sentences {
		score, hit := 0, false
		for _, token := range s.res.Words.Tokenize(strings.ToLower(sentence)) {
			if freq.Contains(token) {
				score += freq.Count(token)
				hit = true
			}
		}
		if hit {
			scores = append(scores, SentenceScore{Index: i, Score: score})
		}
	}

	return Analysis{
		Sentences:   sentences,
		Frequencies: freq,
		Scores:      ScoreTable{scores: scores},
	}
}

// Summarize 选出得分最高的 n 个句子，按原文顺序以空格拼接
// 没有句子得分时返回文本前若干字符加 "..."
func (s *Summarizer) Summarize(text string, n int) string {
	if n <= 0 {
		n = DefaultSentences
	}

	analysis := s.Analyze(text)
	if analysis.Scores.Len() == 0 {
		return truncate(text, s.fallbackChars) + ellipsis
	}

	ranked := analysis.Scores.Ranked()
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	indexes := make([]int, len(ranked))
	for i, item := range ranked {
		indexes[i] = item.Index
	}
	sort.Ints(indexes)

	selected := make([]string, len(indexes))
	for i, index := range indexes {
		selected[i] = analysis.Sentences[index]
	}
	return strings.Join(selected, " ")
}

func isAlnum(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// truncate 按字符（而非字节）截取前 n 个
func truncate(text string, n int) string {
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}
