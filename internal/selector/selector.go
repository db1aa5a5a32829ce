package selector

import (
	"math/rand"
	"time"

	"github.com/kapu/vocab-sampler-go/internal/domain"
)

// Selector draws practice words from a loaded dataset.
type Selector struct {
	rng *rand.Rand
}

func New() *Selector {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded builds a selector with a deterministic source: the same seed and
// the same input always produce the same draw sequence.
func NewSeeded(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// Select draws up to count entries uniformly without replacement, keeping
// only entries tagged with level when the filter is non-empty (matched
// case-insensitively). The returned order is the draw order. The input
// slice is never reordered; shuffling happens on a copy.
func (s *Selector) Select(entries []domain.VocabularyEntry, count int, level string) []domain.VocabularyEntry {
	filtered := filterByLevel(entries, level)
	if count <= 0 || len(filtered) == 0 {
		return []domain.VocabularyEntry{}
	}

	n := min(count, len(filtered))

	// Partial Fisher-Yates: after i rounds the first i slots hold the draw.
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(filtered)-i)
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}

	return filtered[:n:n]
}

func filterByLevel(entries []domain.VocabularyEntry, level string) []domain.VocabularyEntry {
	filtered := make([]domain.VocabularyEntry, 0, len(entries))
	for i := range entries {
		if entries[i].MatchesLevel(level) {
			filtered = append(filtered, entries[i])
		}
	}
	return filtered
}
