package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/vocab-sampler-go/internal/adapter"
	"github.com/kapu/vocab-sampler-go/internal/config"
	"github.com/kapu/vocab-sampler-go/internal/dataset"
	"github.com/kapu/vocab-sampler-go/internal/domain"
	"github.com/kapu/vocab-sampler-go/internal/selector"
	"github.com/kapu/vocab-sampler-go/internal/service/lexical"
	"github.com/kapu/vocab-sampler-go/internal/util"
)

// Pipeline runs one practice session: load the dataset, draw a sample,
// enrich each word, then print the report and persist the JSON artifact.
type Pipeline struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
}

// NewPipeline wires a pipeline that reports to stdout. Logs go to stderr so
// the two streams stay separable.
func NewPipeline(cfg *config.Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		logger: logger,
		out:    os.Stdout,
	}
}

// Run executes the session end to end. Dataset errors abort the run; a
// missing API credential only degrades it to an enrichment-free report.
func (p *Pipeline) Run(ctx context.Context) error {
	entries, err := dataset.Load(p.cfg.Dataset.Path, p.logger)
	if err != nil {
		return err
	}

	var sel *selector.Selector
	if p.cfg.Sampler.Seed != 0 {
		p.logger.Info("Using fixed sampler seed", zap.Int64("seed", p.cfg.Sampler.Seed))
		sel = selector.NewSeeded(p.cfg.Sampler.Seed)
	} else {
		sel = selector.New()
	}

	picked := sel.Select(entries, p.cfg.Sampler.Count, p.cfg.Sampler.Level)
	p.logger.Info("Sampled vocabulary words",
		zap.Int("requested", p.cfg.Sampler.Count),
		zap.Int("picked", len(picked)),
		zap.String("level", p.cfg.Sampler.Level))

	enrichment := p.enrich(ctx, picked)
	report := domain.NewSessionReport(picked, enrichment)

	formatter := adapter.NewReportFormatter()
	if _, err := fmt.Fprint(p.out, formatter.FormatSession(report, p.cfg.Sampler.Level)); err != nil {
		return fmt.Errorf("failed to print session report: %w", err)
	}

	return adapter.WriteSessionReport(report, p.cfg.Output.Path, p.logger)
}

func (p *Pipeline) enrich(ctx context.Context, picked []domain.VocabularyEntry) *domain.EnrichmentResult {
	if len(picked) == 0 {
		return domain.NewEnrichmentResult()
	}

	if !p.cfg.HasAPIKey() {
		p.logger.Warn("WORDS_API_KEY is not set; skipping dictionary enrichment")
		return domain.NewEnrichmentResult()
	}

	p.logger.Info("Enriching sampled words",
		zap.String("host", p.cfg.Lexical.APIHost),
		zap.String("api_key", util.MaskSecret(p.cfg.Lexical.APIKey)))

	client := lexical.New(lexical.Config{
		BaseURL:      p.cfg.Lexical.BaseURL,
		APIKey:       p.cfg.Lexical.APIKey,
		APIHost:      p.cfg.Lexical.APIHost,
		Timeout:      p.cfg.Lexical.Timeout,
		RequestDelay: p.cfg.Lexical.RequestDelay,
	}, p.logger)

	words := make([]string, len(picked))
	for i, entry := range picked {
		words[i] = entry.Word
	}

	return client.FetchMany(ctx, words)
}

// LevelDistribution loads the dataset at path and tallies entries per level
// tag. Tags fold to upper case; untagged entries count under the empty key.
func LevelDistribution(path string, logger *zap.Logger) (int, map[string]int, error) {
	entries, err := dataset.Load(path, logger)
	if err != nil {
		return 0, nil, err
	}

	counts := make(map[string]int)
	for _, entry := range entries {
		counts[strings.ToUpper(strings.TrimSpace(entry.Level))]++
	}

	return len(entries), counts, nil
}
