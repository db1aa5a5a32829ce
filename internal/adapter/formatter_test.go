package adapter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kapu/vocab-sampler-go/internal/domain"
)

func sampleReport() domain.SessionReport {
	freq := 4.61
	pron := "'wɔtər"
	info := &domain.LexicalInfo{
		Word:          "water",
		Pronunciation: &pron,
		Definitions: []domain.Definition{
			{PartOfSpeech: "noun", Text: "a clear liquid essential for life"},
			{PartOfSpeech: "verb", Text: "to pour liquid on plants"},
			{PartOfSpeech: "noun", Text: "a body such as a lake or sea"},
		},
		Examples: []string{"drink some water", "the water is cold", "still waters run deep"},
		Synonyms: []string{"aqua", "H2O", "liquid", "fluid", "drink", "rain", "sea"},
	}

	return domain.SessionReport{
		GeneratedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Count:       2,
		Words: []domain.WordReport{
			{
				Entry:   domain.VocabularyEntry{Word: "water", Level: "A1", PartOfSpeech: "noun", Frequency: &freq},
				Lexical: info,
			},
			{
				Entry: domain.VocabularyEntry{Word: "petrichor", Level: "C2"},
			},
		},
	}
}

func TestFormatSessionAppliesLimits(t *testing.T) {
	out := NewReportFormatter().FormatSession(sampleReport(), "")

	// Two of three definitions survive.
	assert.Contains(t, out, "1) noun: a clear liquid essential for life")
	assert.Contains(t, out, "2) verb: to pour liquid on plants")
	assert.NotContains(t, out, "a body such as a lake or sea")

	// Two of three examples survive.
	assert.Equal(t, 2, strings.Count(out, "e.g. "))
	assert.NotContains(t, out, "still waters run deep")

	// Five of seven synonyms survive.
	assert.Contains(t, out, "synonyms: aqua, H2O, liquid, fluid, drink")
	assert.NotContains(t, out, "rain")
}

func TestFormatSessionShowsEntryFields(t *testing.T) {
	out := NewReportFormatter().FormatSession(sampleReport(), "")

	assert.Contains(t, out, "1. water [A1] (noun) freq 4.61")
	assert.Contains(t, out, "/'wɔtər/")
}

func TestFormatSessionMarksMissingEnrichment(t *testing.T) {
	out := NewReportFormatter().FormatSession(sampleReport(), "")

	require.Contains(t, out, "2. petrichor [C2]")
	assert.Contains(t, out, "(no dictionary data)")
}

func TestFormatSessionHeaderWithLevel(t *testing.T) {
	out := NewReportFormatter().FormatSession(sampleReport(), "a1")
	assert.Contains(t, out, "Vocabulary practice session: 2 words (level A1)")
}

func TestFormatSessionEmpty(t *testing.T) {
	report := domain.SessionReport{GeneratedAt: time.Now().UTC()}
	out := NewReportFormatter().FormatSession(report, "D1")

	assert.Contains(t, out, "0 words")
	assert.Contains(t, out, "No words matched the requested filter.")
}

func TestFormatLevelDistribution(t *testing.T) {
	out := NewReportFormatter().FormatLevelDistribution("data/words.csv", 10, map[string]int{
		"B1": 4,
		"A1": 3,
		"":   1,
		"C2": 2,
	})

	assert.Contains(t, out, "Dataset data/words.csv: 10 entries")

	a1 := strings.Index(out, "A1")
	b1 := strings.Index(out, "B1")
	c2 := strings.Index(out, "C2")
	none := strings.Index(out, "(none)")
	require.True(t, a1 >= 0 && b1 >= 0 && c2 >= 0 && none >= 0)
	assert.True(t, a1 < b1 && b1 < c2 && c2 < none, "tags sorted with untagged last")
}
