package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgercheck/internal/config"
	"github.com/cleared-dev/ledgercheck/internal/model"
	"github.com/cleared-dev/ledgercheck/internal/options"
)

func testApp() *app {
	cfg := config.Default()
	cfg.Check.WatchDebounce = 10 * time.Millisecond
	return &app{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		runID:  "test",
	}
}

func TestWatch_RerunsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.beancount")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	a := testApp()
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.watch(ctx, path, func() { runs.Add(1) })
	}()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	// Changes to other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.beancount"), []byte("x"), 0o644))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	require.NoError(t, os.WriteFile(path, []byte("option \"name_assets\" \"Actif\"\n"), 0o644))
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	a := testApp()
	err := a.watch(context.Background(), filepath.Join(t.TempDir(), "nope", "main.beancount"), func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching")
}

func TestMergeErrors(t *testing.T) {
	at := func(line int) model.Location { return model.Location{File: "f", Line: line} }
	read := []model.Error{
		{Kind: model.ErrorSyntax, Location: at(5)},
		{Kind: model.ErrorSyntax, Location: at(9)},
	}
	processed := []model.Error{
		{Kind: model.ErrorInvalidAccountName, Location: at(2)},
		{Kind: model.ErrorInvalidAccountName, Location: at(5)},
		{Kind: model.ErrorInvalidOptionValue},
	}

	got := mergeErrors(read, processed)
	require.Len(t, got, 5)
	assert.Equal(t, 2, got[0].Location.Line)
	assert.Equal(t, model.ErrorSyntax, got[1].Kind, "stable for equal lines")
	assert.Equal(t, model.ErrorInvalidAccountName, got[2].Kind)
	assert.Equal(t, 9, got[3].Location.Line)
	assert.False(t, got[4].Location.IsValid())
}

func TestStartOptions(t *testing.T) {
	a := testApp()
	a.cfg.Options = map[string]string{"name_equity": "Capital", "plugin_processing_mode": "raw"}

	cfg, err := a.startOptions()
	require.NoError(t, err)
	assert.Equal(t, "Capital", cfg.Text(options.NameEquity))
	assert.Equal(t, options.ProcessingRaw, cfg.ProcessingMode())
}

func TestStartOptions_Collision(t *testing.T) {
	a := testApp()
	a.cfg.Options = map[string]string{"name_income": "Assets"}

	_, err := a.startOptions()
	require.Error(t, err)
	assert.ErrorIs(t, err, options.ErrInvalidOptionValue)
}
