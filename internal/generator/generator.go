// Package generator assembles model-specific prompts from the lexicon tables.
package generator

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/lexicon"

	"github.com/samber/lo"
)

// Rand is the random source a generator draws from.
type Rand interface {
	IntN(n int) int
}

// Generator builds a prompt and its matching negative prompt for one model.
type Generator interface {
	GeneratePrompt(rng Rand, req core.GenerationRequest) string
	GenerateNegativePrompt() string
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// LockedRand is a Rand that is safe for concurrent use.
type LockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand wraps a seeded source with a mutex.
func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{rnd: NewRand(seed)}
}

// NewProcessRand returns the process-level source, seeded from the clock.
func NewProcessRand() *LockedRand {
	return NewLockedRand(time.Now().UTC().UnixNano())
}

// IntN returns a uniform int in [0, n).
func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.IntN(n)
}

func pick(rng Rand, items []string) string {
	return lo.SampleBy(items, rng.IntN)
}

// pickN samples up to n distinct items; n is clamped to [0, len(items)].
func pickN(rng Rand, items []string, n int) []string {
	n = max(0, min(n, len(items)))
	if n == 0 {
		return nil
	}
	return lo.SamplesBy(items, n, rng.IntN)
}

func isRandomSelector(selector string) bool {
	return selector == core.SelectorRandom || selector == core.SelectorAll || selector == ""
}

// resolveSelector applies the none / random / literal rule to an artist or image type selector.
func resolveSelector(rng Rand, selector string, options []string) (string, bool) {
	switch {
	case selector == core.SelectorNone:
		return "", false
	case isRandomSelector(selector):
		return pick(rng, options), true
	default:
		return selector, true
	}
}

// resolveSubject returns the manual subject verbatim or samples one from the subject lexicon.
func resolveSubject(rng Rand, subjects *lexicon.Set, req core.GenerationRequest) string {
	if req.ManualSubject != "" {
		return req.ManualSubject
	}

	var category string
	switch {
	case req.SubjectType == core.SelectorRandom || req.SubjectType == core.SelectorAll:
		category = pick(rng, subjects.Categories())
	case subjects.Has(req.SubjectType):
		category = req.SubjectType
	default:
		category = core.CategoryObject
	}
	return pick(rng, subjects.Phrases(category))
}

type fragments []string

func newFragments(prefix string) fragments {
	f := make(fragments, 0, 16)
	f.add(prefix)
	return f
}

// add appends non-empty fragments.
func (f *fragments) add(parts ...string) {
	for _, p := range parts {
		if p != "" {
			*f = append(*f, p)
		}
	}
}

func (f fragments) join(sep string) string {
	return strings.Join(f, sep)
}
