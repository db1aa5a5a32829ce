package adapter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kapu/vocab-sampler-go/internal/domain"
)

func TestWriteSessionReportRoundTrip(t *testing.T) {
	report := domain.SessionReport{
		GeneratedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Count:       3,
		Words: []domain.WordReport{
			{Entry: domain.VocabularyEntry{Word: "alpha", Level: "A1"}, Lexical: &domain.LexicalInfo{Word: "alpha"}},
			{Entry: domain.VocabularyEntry{Word: "beta", Level: "B1"}},
			{Entry: domain.VocabularyEntry{Word: "gamma", Level: "C1"}, Lexical: &domain.LexicalInfo{Word: "gamma"}},
		},
	}

	path := filepath.Join(t.TempDir(), "out", "nested", "session.json")
	require.NoError(t, WriteSessionReport(report, path, zap.NewNop()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded domain.SessionReport
	require.NoError(t, json.Unmarshal(data, &loaded))

	require.Equal(t, report.Count, loaded.Count)
	require.Len(t, loaded.Words, 3)
	for i, word := range loaded.Words {
		assert.Equal(t, report.Words[i].Entry.Word, word.Entry.Word)
		assert.Equal(t, report.Words[i].Lexical == nil, word.Lexical == nil,
			"presence pattern must survive the round trip for %s", word.Entry.Word)
	}
}

func TestWriteSessionReportLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")

	report := domain.SessionReport{GeneratedAt: time.Now().UTC()}
	require.NoError(t, WriteSessionReport(report, path, zap.NewNop()))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriteSessionReportOverwritesPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")

	first := domain.SessionReport{GeneratedAt: time.Now().UTC(), Count: 1, Words: []domain.WordReport{
		{Entry: domain.VocabularyEntry{Word: "old"}},
	}}
	require.NoError(t, WriteSessionReport(first, path, zap.NewNop()))

	second := domain.SessionReport{GeneratedAt: time.Now().UTC(), Count: 1, Words: []domain.WordReport{
		{Entry: domain.VocabularyEntry{Word: "new"}},
	}}
	require.NoError(t, WriteSessionReport(second, path, zap.NewNop()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded domain.SessionReport
	require.NoError(t, json.Unmarshal(data, &loaded))
	require.Len(t, loaded.Words, 1)
	assert.Equal(t, "new", loaded.Words[0].Entry.Word)
}
