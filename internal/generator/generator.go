// Package generator builds sample texts from word lists.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Generator produces randomized sample texts.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with seed, or with the current time when seed is 0.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate picks count words uniformly and joins them with single spaces.
// Each word gets a capitalized first letter with probability capsPct.
func (g *Generator) Generate(words []string, count int, capsPct float64) string {
	if len(words) == 0 || count <= 0 {
		return ""
	}
	picked := make([]string, 0, count)
	prev := -1
	for i := 0; i < count; i++ {
		idx := g.rnd.Intn(len(words))
		// Avoid immediate repeats when the list allows it.
		if idx == prev && len(words) > 1 {
			idx = (idx + 1 + g.rnd.Intn(len(words)-1)) % len(words)
		}
		prev = idx
		picked = append(picked, applyCaps(g.rnd, words[idx], capsPct))
	}
	return strings.Join(picked, " ")
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() >= capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
