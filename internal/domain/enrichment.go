package domain

// EnrichmentResult maps each fetched word to its lexical record, or to nil
// when the lookup failed. Iteration order is insertion order, so a batch
// result always mirrors the order the words were requested in.
type EnrichmentResult struct {
	words []string
	infos map[string]*LexicalInfo
}

func NewEnrichmentResult() *EnrichmentResult {
	return &EnrichmentResult{
		infos: make(map[string]*LexicalInfo),
	}
}

// Add records the outcome for a word. A nil info marks a failed lookup.
// Re-adding a word replaces its record but keeps the original position.
func (r *EnrichmentResult) Add(word string, info *LexicalInfo) {
	if r == nil {
		return
	}
	if r.infos == nil {
		r.infos = make(map[string]*LexicalInfo)
	}
	if _, seen := r.infos[word]; !seen {
		r.words = append(r.words, word)
	}
	r.infos[word] = info
}

// Get returns the record for a word. The second result distinguishes a word
// that was never fetched from one that was fetched and failed.
func (r *EnrichmentResult) Get(word string) (*LexicalInfo, bool) {
	if r == nil || r.infos == nil {
		return nil, false
	}
	info, ok := r.infos[word]
	return info, ok
}

// Words returns the fetched words in insertion order.
func (r *EnrichmentResult) Words() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.words))
	copy(out, r.words)
	return out
}

func (r *EnrichmentResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.words)
}

// Hits counts words whose lookup succeeded.
func (r *EnrichmentResult) Hits() int {
	if r == nil {
		return 0
	}
	hits := 0
	for _, word := range r.words {
		if r.infos[word] != nil {
			hits++
		}
	}
	return hits
}
