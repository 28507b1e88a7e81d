package summarizer

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jdkato/prose/tokenize"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

//go:embed stopwords.txt
var englishStopwords string

// SentenceSplitter 把文本切分为句子（便于测试注入）
type SentenceSplitter interface {
	Split(text string) []string
}

// WordTokenizer 把单个句子切分为词元（便于测试注入）
type WordTokenizer interface {
	Tokenize(text string) []string
}

// Resources 摘要所需的只读语言资源，进程启动时加载一次
type Resources struct {
	Stopwords map[string]struct{}
	Sentences SentenceSplitter
	Words     WordTokenizer
}

// LoadResources 加载英文停用词、Punkt 句子模型和 Treebank 分词器
func LoadResources() (*Resources, error) {
	punkt, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("加载 Punkt 句子模型失败: %w", err)
	}

	return &Resources{
		Stopwords: ParseStopwords(englishStopwords),
		Sentences: &punktSplitter{tokenizer: punkt},
		Words:     tokenize.NewTreebankWordTokenizer(),
	}, nil
}

// ParseStopwords 解析每行一个词的停用词表
func ParseStopwords(data string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, line := range strings.Split(data, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line != "" {
			words[line] = struct{}{}
		}
	}
	return words
}

// IsStopword 判断小写词是否为停用词
func (r *Resources) IsStopword(word string) bool {
	_, ok := r.Stopwords[word]
	return ok
}

type punktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func (p *punktSplitter) Split(text string) []string {
	var result []string
	for _, s := range p.tokenizer.Tokenize(text) {
		sentence := strings.TrimSpace(s.Text)
		if sentence != "" {
			result = append(result, sentence)
		}
	}
	return result
}
