package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kapu/vocab-sampler-go/internal/config"
)

func TestLevelsCommandWritesTableToStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte("word,level\nalpha,A1\nbeta,B2\n"), 0o644))

	origCfg, origLogger := cfg, logger
	t.Cleanup(func() {
		cfg = origCfg
		logger = origLogger
	})
	cfg = &config.Config{Dataset: config.DatasetConfig{Path: path}}
	logger = zap.NewNop()

	cmd := newLevelsCommand()
	// Empty non-nil args keep Execute from falling back to os.Args.
	cmd.SetArgs([]string{})

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	execErr := cmd.Execute()

	os.Stdout = origStdout
	require.NoError(t, w.Close())
	out, readErr := io.ReadAll(r)
	require.NoError(t, r.Close())
	require.NoError(t, readErr)
	require.NoError(t, execErr)

	table := string(out)
	assert.Contains(t, table, "2 entries")
	assert.Contains(t, table, "A1")
	assert.Contains(t, table, "B2")
}
