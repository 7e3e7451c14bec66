// Package sentences holds the fixed practice corpus and draws the
// randomized sentence sequence used by each test.
package sentences

import (
	_ "embed"
	"math/rand"
	"strings"
	"time"
)

// Bounds on how many sentences a single test presents.
const (
	MinPerSession = 20
	MaxPerSession = 30
)

//go:embed sentences.txt
var corpusText string

var corpus = parseCorpus(corpusText)

// parseCorpus splits the embedded file into one sentence per non-blank line
func parseCorpus(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Corpus returns a copy of the full sentence list in file order.
func Corpus() []string {
	out := make([]string, len(corpus))
	copy(out, corpus)
	return out
}

// Provider draws sentence sequences from a corpus.
type Provider struct {
	rng    *rand.Rand
	corpus []string
}

// New returns a Provider over the embedded corpus seeded from the wall clock.
func New() *Provider {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Provider using rng, so tests can fix the seed.
func NewWithRand(rng *rand.Rand) *Provider {
	return &Provider{rng: rng, corpus: corpus}
}

// Select shuffles the corpus and returns a prefix whose length is drawn
// uniformly from [MinPerSession, MaxPerSession], capped at the corpus size.
func (p *Provider) Select() []string {
	shuffled := make([]string, len(p.corpus))
	copy(shuffled, p.corpus)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := MinPerSession + p.rng.Intn(MaxPerSession-MinPerSession+1)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
