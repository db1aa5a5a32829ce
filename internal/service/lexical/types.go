package lexical

import (
	"encoding/json"
	"strings"

	"github.com/kapu/vocab-sampler-go/internal/domain"
)

// wordRaw mirrors the lexical API response. The API is loose about two
// fields: pronunciation arrives as a bare string or an object, frequency as
// a bare zipf number or a full stats object.
type wordRaw struct {
	Word          string            `json:"word"`
	Results       []resultRaw       `json:"results,omitempty"`
	Pronunciation *pronunciationRaw `json:"pronunciation,omitempty"`
	Syllables     *syllablesRaw     `json:"syllables,omitempty"`
	Frequency     *frequencyRaw     `json:"frequency,omitempty"`
	Rhymes        []string          `json:"rhymes,omitempty"`
}

type resultRaw struct {
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms,omitempty"`
	Antonyms     []string `json:"antonyms,omitempty"`
	Examples     []string `json:"examples,omitempty"`
}

type pronunciationRaw struct {
	All   string
	Audio string
}

func (p *pronunciationRaw) UnmarshalJSON(data []byte) error {
	// Bare string form: "pronunciation": "ˈsæmpəl"
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		p.All = plain
		return nil
	}

	var obj struct {
		All   string `json:"all"`
		Audio string `json:"audio"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.All = obj.All
	p.Audio = obj.Audio
	return nil
}

type syllablesRaw struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

type frequencyRaw struct {
	Zipf       float64
	PerMillion float64
	Diversity  float64
}

func (f *frequencyRaw) UnmarshalJSON(data []byte) error {
	// Bare number form carries the zipf score only.
	var zipf float64
	if err := json.Unmarshal(data, &zipf); err == nil {
		f.Zipf = zipf
		return nil
	}

	var obj struct {
		Zipf       float64 `json:"zipf"`
		PerMillion float64 `json:"perMillion"`
		Diversity  float64 `json:"diversity"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	f.Zipf = obj.Zipf
	f.PerMillion = obj.PerMillion
	f.Diversity = obj.Diversity
	return nil
}

// mapWordResponse converts the wire shape into the domain record. Top-level
// example/synonym/antonym lists aggregate the per-definition lists,
// de-duplicated in first-seen order.
func mapWordResponse(requested string, raw *wordRaw) *domain.LexicalInfo {
	info := &domain.LexicalInfo{
		Word:        raw.Word,
		Definitions: make([]domain.Definition, 0, len(raw.Results)),
	}
	if info.Word == "" {
		info.Word = requested
	}

	for _, res := range raw.Results {
		text := strings.TrimSpace(res.Definition)
		if text == "" {
			continue
		}
		info.Definitions = append(info.Definitions, domain.Definition{
			PartOfSpeech: strings.TrimSpace(res.PartOfSpeech),
			Text:         text,
			Synonyms:     cleanList(res.Synonyms),
			Antonyms:     cleanList(res.Antonyms),
			Examples:     cleanList(res.Examples),
		})
	}

	seenExamples := make(map[string]bool)
	seenSynonyms := make(map[string]bool)
	seenAntonyms := make(map[string]bool)
	for _, def := range info.Definitions {
		info.Examples = dedupAppend(info.Examples, seenExamples, def.Examples)
		info.Synonyms = dedupAppend(info.Synonyms, seenSynonyms, def.Synonyms)
		info.Antonyms = dedupAppend(info.Antonyms, seenAntonyms, def.Antonyms)
	}

	info.Rhymes = cleanList(raw.Rhymes)

	if raw.Pronunciation != nil {
		if all := strings.TrimSpace(raw.Pronunciation.All); all != "" {
			info.Pronunciation = &all
		}
		if audio := strings.TrimSpace(raw.Pronunciation.Audio); audio != "" {
			info.AudioURL = &audio
		}
	}

	if raw.Syllables != nil && raw.Syllables.Count > 0 {
		info.Syllables = &domain.Syllables{
			Count: raw.Syllables.Count,
			Parts: cleanList(raw.Syllables.List),
		}
	}

	if raw.Frequency != nil && raw.Frequency.Zipf > 0 {
		info.Frequency = &domain.FrequencyStats{
			Zipf:       raw.Frequency.Zipf,
			PerMillion: raw.Frequency.PerMillion,
			Diversity:  raw.Frequency.Diversity,
		}
	}

	return info
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func dedupAppend(dst []string, seen map[string]bool, items []string) []string {
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		dst = append(dst, item)
	}
	return dst
}
