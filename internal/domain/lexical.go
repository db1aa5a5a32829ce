package domain

// LexicalInfo is the dictionary record for a single word as returned by the
// lexical API, already mapped out of the wire shape.
type LexicalInfo struct {
	Word          string          `json:"word"`
	Pronunciation *string         `json:"pronunciation,omitempty"`
	AudioURL      *string         `json:"audio_url,omitempty"`
	Definitions   []Definition    `json:"definitions"`
	Examples      []string        `json:"examples,omitempty"`
	Synonyms      []string        `json:"synonyms,omitempty"`
	Antonyms      []string        `json:"antonyms,omitempty"`
	Rhymes        []string        `json:"rhymes,omitempty"`
	Syllables     *Syllables      `json:"syllables,omitempty"`
	Frequency     *FrequencyStats `json:"frequency,omitempty"`
}

// Definition is one sense of a word. Order follows the API response.
type Definition struct {
	PartOfSpeech string   `json:"part_of_speech,omitempty"`
	Text         string   `json:"text"`
	Synonyms     []string `json:"synonyms,omitempty"`
	Antonyms     []string `json:"antonyms,omitempty"`
	Examples     []string `json:"examples,omitempty"`
}

type Syllables struct {
	Count int      `json:"count"`
	Parts []string `json:"parts,omitempty"`
}

// FrequencyStats carries corpus frequency measures (zipf scale, occurrences
// per million tokens, document diversity in [0,1]).
type FrequencyStats struct {
	Zipf       float64 `json:"zipf"`
	PerMillion float64 `json:"per_million"`
	Diversity  float64 `json:"diversity"`
}

func (l *LexicalInfo) HasPronunciation() bool {
	return l != nil && l.Pronunciation != nil && *l.Pronunciation != ""
}

func (l *LexicalInfo) GetPronunciation() string {
	if !l.HasPronunciation() {
		return ""
	}
	return *l.Pronunciation
}

// TopDefinitions returns at most n definitions in response order.
func (l *LexicalInfo) TopDefinitions(n int) []Definition {
	if l == nil || n <= 0 || len(l.Definitions) == 0 {
		return nil
	}
	if n > len(l.Definitions) {
		n = len(l.Definitions)
	}
	return l.Definitions[:n]
}

// TopExamples returns at most n example sentences in response order.
func (l *LexicalInfo) TopExamples(n int) []string {
	if l == nil || n <= 0 || len(l.Examples) == 0 {
		return nil
	}
	if n > len(l.Examples) {
		n = len(l.Examples)
	}
	return l.Examples[:n]
}

// TopSynonyms returns at most n synonyms in response order.
func (l *LexicalInfo) TopSynonyms(n int) []string {
	if l == nil || n <= 0 || len(l.Synonyms) == 0 {
		return nil
	}
	if n > len(l.Synonyms) {
		n = len(l.Synonyms)
	}
	return l.Synonyms[:n]
}
