package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/vocab-sampler-go/internal/constants"
	"github.com/kapu/vocab-sampler-go/internal/domain"
	"github.com/kapu/vocab-sampler-go/internal/util"
	"github.com/kapu/vocab-sampler-go/pkg/errors"
)

// columnIndex holds the position of each recognized header column, -1 when absent.
type columnIndex struct {
	word      int
	level     int
	pos       int
	frequency int
}

// Load reads the vocabulary dataset at path. The file is CSV with a header
// row; column order is free and unknown columns are ignored. Rows with an
// empty word are skipped silently, malformed rows are logged and skipped.
// A missing file yields *errors.NotFoundError, an unreadable stream or a
// header without a word column yields *errors.LoadError.
func Load(path string, logger *zap.Logger) ([]domain.VocabularyEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(path)
		}
		return nil, errors.NewLoadError("failed to open dataset", err, map[string]any{
			"path": path,
		})
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows carry absent fields, not errors
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewLoadError("failed to read dataset header", err, map[string]any{
			"path": path,
		})
	}

	cols, err := mapColumns(header, path)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.VocabularyEntry, 0, 256)
	skippedEmpty := 0
	skippedMalformed := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if parseErr, ok := err.(*csv.ParseError); ok {
				skippedMalformed++
				logger.Warn("Skipping malformed dataset row",
					zap.Int("line", parseErr.Line),
					zap.Error(err),
				)
				continue
			}
			return nil, errors.NewLoadError("failed to read dataset", err, map[string]any{
				"path": path,
			})
		}

		word := strings.TrimSpace(field(record, cols.word))
		if word == "" {
			skippedEmpty++
			continue
		}

		entry := domain.VocabularyEntry{
			Word:         word,
			Level:        strings.TrimSpace(field(record, cols.level)),
			PartOfSpeech: strings.TrimSpace(field(record, cols.pos)),
		}

		if raw := strings.TrimSpace(field(record, cols.frequency)); raw != "" {
			// ParseFloat accepts NaN and infinities, which the JSON
			// artifact cannot carry; only finite values are kept.
			freq, parseErr := strconv.ParseFloat(raw, 64)
			if parseErr == nil && !math.IsNaN(freq) && !math.IsInf(freq, 0) {
				entry.Frequency = &freq
			} else {
				logger.Debug("Ignoring invalid frequency",
					zap.String("word", word),
					zap.String("value", raw),
				)
			}
		}

		entries = append(entries, entry)
	}

	logger.Info("Dataset loaded",
		zap.String("path", path),
		zap.Int("entries", len(entries)),
		zap.Int("skipped_empty", skippedEmpty),
		zap.Int("skipped_malformed", skippedMalformed),
	)

	return entries, nil
}

// mapColumns resolves header names case-insensitively. The word column is
// required; everything else defaults to absent.
func mapColumns(header []string, path string) (*columnIndex, error) {
	cols := &columnIndex{word: -1, level: -1, pos: -1, frequency: -1}

	for i, name := range header {
		switch util.Normalize(name) {
		case constants.DatasetColumns.Word:
			cols.word = i
		case constants.DatasetColumns.Level:
			cols.level = i
		case constants.DatasetColumns.PartOfSpeech:
			cols.pos = i
		case constants.DatasetColumns.Frequency:
			cols.frequency = i
		}
	}

	if cols.word < 0 {
		return nil, errors.NewLoadError("dataset header has no word column", nil, map[string]any{
			"path":   path,
			"header": strings.Join(header, ","),
		})
	}

	return cols, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
