package summarizer

import "sort"

// WordCount 词频表中的一项
type WordCount struct {
	Word  string
	Count int
}

// FrequencyTable 归一化词语的出现次数，构造后不可修改
type FrequencyTable struct {
	counts map[string]int
}

func newFrequencyTable(counts map[string]int) FrequencyTable {
	return FrequencyTable{counts: counts}
}

// Count 返回词语出现次数，不存在时为 0
func (t FrequencyTable) Count(word string) int {
	return t.counts[word]
}

// Contains 判断词语是否在表中
func (t FrequencyTable) Contains(word string) bool {
	_, ok := t.counts[word]
	return ok
}

func (t FrequencyTable) Len() int {
	return len(t.counts)
}

// Entries 按次数降序、词语升序返回全部词频
func (t FrequencyTable) Entries() []WordCount {
	entries := make([]WordCount, 0, len(t.counts))
	for word, count := range t.counts {
		entries = append(entries, WordCount{Word: word, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// SentenceScore 句子序号及其得分
type SentenceScore struct {
	Index int
	Score int
}

// ScoreTable 有得分的句子，按序号升序保存
// 没有任何计分词的句子不在表中
type ScoreTable struct {
	scores []SentenceScore
}

func (t ScoreTable) Len() int {
	return len(t.scores)
}

// Scores 按句子序号升序返回
func (t ScoreTable) Scores() []SentenceScore {
	return append([]SentenceScore(nil), t.scores...)
}

// Score 返回指定句子的得分，未计分的句子返回 false
func (t ScoreTable) Score(index int) (int, bool) {
	i := sort.Search(len(t.scores), func(i int) bool { return t.scores[i].Index >= index })
	if i < len(t.scores) && t.scores[i].Index == index {
		return t.scores[i].Score, true
	}
	return 0, false
}

// Ranked 按得分降序返回，同分时序号小的在前
func (t ScoreTable) Ranked() []SentenceScore {
	ranked := t.Scores()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Analysis 一次摘要的中间结果
type Analysis struct {
	Sentences   []string
	Frequencies FrequencyTable
	Scores      ScoreTable
}
