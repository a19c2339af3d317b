// Package model 提供文本向量化模型，内容推荐用它把商品文本转成可比较的向量。
package model

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// TFIDFVectorizer 是 TF-IDF 文本向量化器。
//
// 计算口径：
//   - 分词：小写化后按非字母数字切分，丢弃单字符 token 与英文停用词
//   - 词表：全语料词频最高的 MaxFeatures 个词，词频相同按词典序升序
//   - idf：平滑形式 ln((1+n)/(1+df)) + 1，n 为文档数，df 为包含该词的文档数
//   - tf：文档内原始词频
//   - 行向量做 l2 归一化；空文档得到全零向量
//
// Fit 之后词表与 idf 固定，Transform 可重复调用且结果确定。
type TFIDFVectorizer struct {
	// MaxFeatures 词表容量上限，<=0 时使用默认值 100。
	MaxFeatures int

	// StopWords 停用词表；nil 时使用内置英文停用词。
	StopWords map[string]struct{}

	vocab []string
	index map[string]int
	idf   []float64
}

// TFIDFOption 配置 TFIDFVectorizer。
type TFIDFOption func(*TFIDFVectorizer)

// WithMaxFeatures 设置词表容量上限。
func WithMaxFeatures(n int) TFIDFOption {
	return func(v *TFIDFVectorizer) { v.MaxFeatures = n }
}

// WithStopWords 设置自定义停用词表。
func WithStopWords(words []string) TFIDFOption {
	return func(v *TFIDFVectorizer) {
		v.StopWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			v.StopWords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// NewTFIDFVectorizer 创建 TF-IDF 向量化器，默认词表容量 100、英文停用词。
func NewTFIDFVectorizer(opts ...TFIDFOption) *TFIDFVectorizer {
	v := &TFIDFVectorizer{
		MaxFeatures: 100,
		StopWords:   englishStopWords,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.MaxFeatures <= 0 {
		v.MaxFeatures = 100
	}
	return v
}

// Fit 在语料上构建词表与 idf。空语料得到空词表，Transform 将产出零维向量。
func (v *TFIDFVectorizer) Fit(docs []string) {
	type termStat struct {
		term  string
		count int // 全语料词频
		df    int // 文档频次
	}

	stats := make(map[string]*termStat)
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokens := v.tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			st, ok := stats[tok]
			if !ok {
				st = &termStat{term: tok}
				stats[tok] = st
			}
			st.count++
			if _, dup := seen[tok]; !dup {
				st.df++
				seen[tok] = struct{}{}
			}
		}
	}

	ordered := make([]*termStat, 0, len(stats))
	for _, st := range stats {
		ordered = append(ordered, st)
	}
	// 词频降序，词频相同按词典序升序，保证词表可复现
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].term < ordered[j].term
	})
	if len(ordered) > v.MaxFeatures {
		ordered = ordered[:v.MaxFeatures]
	}

	v.vocab = make([]string, len(ordered))
	v.index = make(map[string]int, len(ordered))
	v.idf = make([]float64, len(ordered))
	n := float64(len(docs))
	for i, st := range ordered {
		v.vocab[i] = st.term
		v.index[st.term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(st.df))) + 1
	}
}

// Transform 把文档转为 TF-IDF 向量（l2 归一化）。必须先 Fit。
func (v *TFIDFVectorizer) Transform(docs []string) [][]float64 {
	rows := make([][]float64, len(docs))
	for i, doc := range docs {
		rows[i] = v.transformOne(doc)
	}
	return rows
}

// FitTransform 等价于 Fit 后 Transform。
func (v *TFIDFVectorizer) FitTransform(docs []string) [][]float64 {
	v.Fit(docs)
	return v.Transform(docs)
}

// Vocabulary 返回词表（按特征维度顺序）。
func (v *TFIDFVectorizer) Vocabulary() []string {
	return v.vocab
}

func (v *TFIDFVectorizer) transformOne(doc string) []float64 {
	row := make([]float64, len(v.vocab))
	if len(v.vocab) == 0 {
		return row
	}
	for _, tok := range v.tokenize(doc) {
		if j, ok := v.index[tok]; ok {
			row[j] += v.idf[j]
		}
	}
	var norm float64
	for _, x := range row {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for j := range row {
			row[j] /= norm
		}
	}
	return row
}

func (v *TFIDFVectorizer) tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := v.StopWords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}
