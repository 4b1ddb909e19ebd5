package typing

import (
	"math/rand"
	"time"
)

// Picker chooses target phrases from a corpus.
type Picker struct {
	rnd *rand.Rand
}

// NewPicker returns a Picker with a fixed seed. A zero seed uses the current time.
func NewPicker(seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects a phrase uniformly. Consecutive picks may repeat.
func (p *Picker) Pick(corpus Corpus) string {
	if len(corpus) == 0 {
		return ""
	}
	return corpus[p.rnd.Intn(len(corpus))]
}

// PickWeighted selects a phrase with a bias toward phrases containing weak
// characters. Each phrase weighs 1 + weakRunes*factor.
func (p *Picker) PickWeighted(corpus Corpus, weakSet map[rune]struct{}, factor float64) string {
	if len(corpus) == 0 {
		return ""
	}
	if len(weakSet) == 0 || factor <= 0 {
		return p.Pick(corpus)
	}
	weights := make([]float64, len(corpus))
	total := 0.0
	for i, phrase := range corpus {
		weakCount := 0
		for _, r := range phrase {
			if _, ok := weakSet[r]; ok {
				weakCount++
			}
		}
		w := 1.0 + float64(weakCount)*factor
		weights[i] = w
		total += w
	}

	r := p.rnd.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return corpus[i]
		}
	}
	return corpus[len(corpus)-1]
}
