package domain

import "time"

// SessionReport is the JSON artifact written at the end of a practice run.
// Given the same dataset, count, level and seed it serializes identically
// apart from GeneratedAt.
type SessionReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Count       int          `json:"count"`
	Words       []WordReport `json:"words"`
}

// WordReport pairs a selected dataset entry with its lexical record.
// Lexical is nil when enrichment failed or was skipped for that word.
type WordReport struct {
	Entry   VocabularyEntry `json:"entry"`
	Lexical *LexicalInfo    `json:"lexical,omitempty"`
}

// NewSessionReport pairs every selected entry, in selection order, with its
// enrichment outcome. A nil enrichment leaves every pair without a record.
func NewSessionReport(entries []VocabularyEntry, enrichment *EnrichmentResult) SessionReport {
	words := make([]WordReport, 0, len(entries))
	for _, entry := range entries {
		info, _ := enrichment.Get(entry.Word)
		words = append(words, WordReport{
			Entry:   entry,
			Lexical: info,
		})
	}

	return SessionReport{
		GeneratedAt: time.Now().UTC(),
		Count:       len(entries),
		Words:       words,
	}
}
