// Package samples generates synthetic original/copied text pairs for demos,
// warm-up and benchmarks.
package samples

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var (
	subjects = []string{"我", "你", "他", "小明", "老师", "学生"}
	verbs    = []string{"喜欢", "讨厌", "学习", "研究", "使用", "编写"}
	objects  = []string{"人工智能", "机器学习", "Python", "C++", "论文", "算法"}
)

// replacements are applied in order, each at most once per sentence.
var replacements = []struct{ from, to string }{
	{"喜欢", "热爱"},
	{"讨厌", "不喜欢"},
	{"学习", "研究"},
	{"研究", "学习"},
	{"使用", "利用"},
	{"编写", "撰写"},
	{"人工智能", "AI"},
	{"机器学习", "Machine Learning"},
	{"论文", "文章"},
	{"算法", "方法"},
}

// ReplaceProbability is the chance each applicable replacement is made.
const ReplaceProbability = 0.5

// Generator produces sentences and their paraphrased copies. It is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Sentence returns subject + verb + object + "。".
func (g *Generator) Sentence() string {
	return subjects[g.rng.Intn(len(subjects))] +
		verbs[g.rng.Intn(len(verbs))] +
		objects[g.rng.Intn(len(objects))] + "。"
}

// Copy paraphrases a sentence by swapping in synonyms.
func (g *Generator) Copy(sentence string) string {
	out := sentence
	for _, r := range replacements {
		if strings.Contains(out, r.from) && g.rng.Float64() < ReplaceProbability {
			out = strings.Replace(out, r.from, r.to, 1)
		}
	}
	return out
}

// Pair returns an original of n sentences, one per line, and its copy.
func (g *Generator) Pair(n int) (original, copied string) {
	orig := make([]string, n)
	cp := make([]string, n)
	for i := range orig {
		orig[i] = g.Sentence()
		cp[i] = g.Copy(orig[i])
	}
	return strings.Join(orig, "\n"), strings.Join(cp, "\n")
}

// Text returns generated sentences totalling at least size runes, trimmed to size.
func (g *Generator) Text(size int) string {
	if size <= 0 {
		return ""
	}
	var sb strings.Builder
	runes := 0
	for runes < size {
		s := g.Sentence()
		sb.WriteString(s)
		runes += len([]rune(s))
	}
	return string([]rune(sb.String())[:size])
}

// PairFiles names the files written for one pair.
type PairFiles struct {
	Original string
	Copied   string
}

// DefaultSentences is the number of sentences per generated file.
const DefaultSentences = 5

// WriteDataset writes pairs orig_<i>.txt / copy_<i>.txt (1-based) into dir.
func (g *Generator) WriteDataset(dir string, pairs int) ([]PairFiles, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dataset directory: %w", err)
	}
	files := make([]PairFiles, 0, pairs)
	for i := 1; i <= pairs; i++ {
		orig, cp := g.Pair(DefaultSentences)
		pf := PairFiles{
			Original: filepath.Join(dir, fmt.Sprintf("orig_%d.txt", i)),
			Copied:   filepath.Join(dir, fmt.Sprintf("copy_%d.txt", i)),
		}
		if err := os.WriteFile(pf.Original, []byte(orig), 0o644); err != nil {
			return files, fmt.Errorf("write %s: %w", pf.Original, err)
		}
		if err := os.WriteFile(pf.Copied, []byte(cp), 0o644); err != nil {
			return files, fmt.Errorf("write %s: %w", pf.Copied, err)
		}
		files = append(files, pf)
	}
	return files, nil
}
