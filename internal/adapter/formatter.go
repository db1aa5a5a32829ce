package adapter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kapu/vocab-sampler-go/internal/constants"
	"github.com/kapu/vocab-sampler-go/internal/domain"
	"github.com/kapu/vocab-sampler-go/internal/util"
)

// ReportFormatter renders a practice session for the console.
type ReportFormatter struct {
	maxDefinitions int
	maxExamples    int
	maxSynonyms    int
	definitionLen  int
}

// NewReportFormatter creates a formatter with the standard report limits.
func NewReportFormatter() *ReportFormatter {
	return &ReportFormatter{
		maxDefinitions: constants.ReportLimits.MaxDefinitions,
		maxExamples:    constants.ReportLimits.MaxExamples,
		maxSynonyms:    constants.ReportLimits.MaxSynonyms,
		definitionLen:  constants.ReportLimits.DefinitionLen,
	}
}

// FormatSession renders the whole report. A non-empty level annotates the
// header with the filter the session ran under.
func (f *ReportFormatter) FormatSession(report domain.SessionReport, level string) string {
	var sb strings.Builder

	if level != "" {
		sb.WriteString(fmt.Sprintf("Vocabulary practice session: %d words (level %s)\n",
			report.Count, strings.ToUpper(level)))
	} else {
		sb.WriteString(fmt.Sprintf("Vocabulary practice session: %d words\n", report.Count))
	}
	sb.WriteString(fmt.Sprintf("Generated at %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))

	if report.Count == 0 {
		sb.WriteString("\nNo words matched the requested filter.\n")
		return sb.String()
	}

	for i, wordReport := range report.Words {
		sb.WriteString("\n")
		sb.WriteString(f.formatWord(i+1, wordReport))
	}

	return sb.String()
}

func (f *ReportFormatter) formatWord(index int, wordReport domain.WordReport) string {
	var sb strings.Builder

	entry := wordReport.Entry
	sb.WriteString(fmt.Sprintf("%d. %s", index, entry.Word))
	if entry.Level != "" {
		sb.WriteString(fmt.Sprintf(" [%s]", entry.Level))
	}
	if entry.PartOfSpeech != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", entry.PartOfSpeech))
	}
	if entry.HasFrequency() {
		sb.WriteString(fmt.Sprintf(" freq %.2f", *entry.Frequency))
	}
	sb.WriteString("\n")

	info := wordReport.Lexical
	if info == nil {
		sb.WriteString("   (no dictionary data)\n")
		return sb.String()
	}

	if info.HasPronunciation() {
		sb.WriteString(fmt.Sprintf("   /%s/\n", info.GetPronunciation()))
	}

	for j, def := range info.TopDefinitions(f.maxDefinitions) {
		text := util.TruncateString(def.Text, f.definitionLen)
		if def.PartOfSpeech != "" {
			sb.WriteString(fmt.Sprintf("   %d) %s: %s\n", j+1, def.PartOfSpeech, text))
		} else {
			sb.WriteString(fmt.Sprintf("   %d) %s\n", j+1, text))
		}
	}

	for _, example := range info.TopExamples(f.maxExamples) {
		sb.WriteString(fmt.Sprintf("   e.g. %s\n", example))
	}

	if synonyms := info.TopSynonyms(f.maxSynonyms); len(synonyms) > 0 {
		sb.WriteString(fmt.Sprintf("   synonyms: %s\n", strings.Join(synonyms, ", ")))
	}

	return sb.String()
}

// FormatLevelDistribution renders per-level entry counts. Tags print in
// ascending order with untagged entries last.
func (f *ReportFormatter) FormatLevelDistribution(path string, total int, counts map[string]int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dataset %s: %d entries\n", path, total))

	tags := make([]string, 0, len(counts))
	untagged := 0
	for tag, n := range counts {
		if tag == "" {
			untagged = n
			continue
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		sb.WriteString(fmt.Sprintf("  %-6s %d\n", tag, counts[tag]))
	}
	if untagged > 0 {
		sb.WriteString(fmt.Sprintf("  %-6s %d\n", "(none)", untagged))
	}

	return sb.String()
}
