package domain

import "strings"

// VocabularyEntry is a single row of the practice dataset.
type VocabularyEntry struct {
	Word         string   `json:"word"`
	Level        string   `json:"level,omitempty"`
	PartOfSpeech string   `json:"part_of_speech,omitempty"`
	Frequency    *float64 `json:"frequency,omitempty"`
}

// MatchesLevel reports whether the entry carries the given level tag.
// Comparison is case-insensitive; an empty filter matches every entry.
func (e *VocabularyEntry) MatchesLevel(level string) bool {
	if e == nil {
		return false
	}
	if strings.TrimSpace(level) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(level), e.Level)
}

func (e *VocabularyEntry) HasFrequency() bool {
	return e != nil && e.Frequency != nil
}
