package adapter

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kapu/vocab-sampler-go/internal/domain"
)

// WriteSessionReport serializes the session artifact to path, creating the
// output directory when missing. The bytes land in a temp file first and are
// renamed into place so readers never see a half-written report.
func WriteSessionReport(report domain.SessionReport, path string, logger *zap.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		return err
	}

	logger.Info("Session report written",
		zap.String("path", path),
		zap.Int("words", report.Count),
	)

	return nil
}
