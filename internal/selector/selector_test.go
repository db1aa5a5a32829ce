package selector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kapu/vocab-sampler-go/internal/domain"
)

func makeEntries(n int) []domain.VocabularyEntry {
	levels := []string{"A1", "A2", "B1", "B2", "C1"}
	entries := make([]domain.VocabularyEntry, n)
	for i := range entries {
		entries[i] = domain.VocabularyEntry{
			Word:  fmt.Sprintf("word%02d", i),
			Level: levels[i%len(levels)],
		}
	}
	return entries
}

func words(entries []domain.VocabularyEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Word
	}
	return out
}

func TestSelectClampsToPoolSize(t *testing.T) {
	entries := makeEntries(3)

	picked := NewSeeded(1).Select(entries, 10, "")
	require.Len(t, picked, 3)
	assert.ElementsMatch(t, words(entries), words(picked))
}

func TestSelectDrawsExactCount(t *testing.T) {
	picked := NewSeeded(1).Select(makeEntries(20), 5, "")
	assert.Len(t, picked, 5)
}

func TestSelectNoDuplicates(t *testing.T) {
	picked := NewSeeded(7).Select(makeEntries(30), 30, "")
	require.Len(t, picked, 30)

	seen := make(map[string]bool, len(picked))
	for _, entry := range picked {
		assert.False(t, seen[entry.Word], "duplicate draw: %s", entry.Word)
		seen[entry.Word] = true
	}
}

func TestSelectLevelFilterClampsToMatches(t *testing.T) {
	// makeEntries(20) tags exactly 4 entries with B1.
	entries := makeEntries(20)

	picked := NewSeeded(3).Select(entries, 10, "B1")
	require.Len(t, picked, 4)
	for _, entry := range picked {
		assert.Equal(t, "B1", entry.Level)
	}
}

func TestSelectLevelFilterCaseInsensitive(t *testing.T) {
	entries := makeEntries(20)

	lower := NewSeeded(3).Select(entries, 10, "b1")
	upper := NewSeeded(3).Select(entries, 10, "B1")
	assert.Equal(t, words(upper), words(lower))
}

func TestSelectEmptyFilterResult(t *testing.T) {
	picked := NewSeeded(1).Select(makeEntries(20), 10, "D9")
	assert.Empty(t, picked)
}

func TestSelectZeroAndNegativeCount(t *testing.T) {
	entries := makeEntries(10)
	assert.Empty(t, NewSeeded(1).Select(entries, 0, ""))
	assert.Empty(t, NewSeeded(1).Select(entries, -3, ""))
}

func TestSelectDeterministicForSeed(t *testing.T) {
	entries := makeEntries(50)

	first := NewSeeded(42).Select(entries, 10, "")
	second := NewSeeded(42).Select(entries, 10, "")
	assert.Equal(t, words(first), words(second))
}

func TestSelectSeedChangesDraw(t *testing.T) {
	entries := makeEntries(50)

	first := NewSeeded(1).Select(entries, 10, "")
	second := NewSeeded(2).Select(entries, 10, "")
	assert.NotEqual(t, words(first), words(second))
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	entries := makeEntries(25)
	original := make([]domain.VocabularyEntry, len(entries))
	copy(original, entries)

	_ = NewSeeded(9).Select(entries, 10, "")
	assert.Equal(t, original, entries)
}

func TestSelectOnEmptyDataset(t *testing.T) {
	assert.Empty(t, NewSeeded(1).Select(nil, 5, ""))
	assert.Empty(t, NewSeeded(1).Select([]domain.VocabularyEntry{}, 5, "A1"))
}
