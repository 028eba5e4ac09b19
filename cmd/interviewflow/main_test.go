package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildFileLogger_CreatesMissingStateDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".interviewflow", "cache.sqlite.log")

	log, err := buildFileLogger(zap.NewProductionConfig(), path)

	require.NoError(t, err, "first run on a fresh machine must not fail on the log sink")
	log.Info("hello")
	_ = log.Sync()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
