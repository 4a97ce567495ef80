package chain

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"undeath/internal/grid"
)

func gliderTarget() grid.Grid {
	var g grid.Grid
	for _, p := range []grid.Point{{1, 1}, {2, 2}, {2, 3}, {1, 3}, {0, 3}} {
		g.Set(p.X, p.Y, 1)
	}
	return g
}

func TestSequenceForkExtendsWithoutMutatingParent(t *testing.T) {
	start := gliderTarget()
	seq := NewSequence(start)
	require.Equal(t, 1, seq.Len())

	var predecessor grid.Grid
	predecessor.Set(4, 4, 1)
	forked := seq.fork(predecessor)

	require.Equal(t, 1, seq.Len(), "forking must not mutate the parent chain")
	require.Equal(t, 2, forked.Len())
	oldest := forked.Oldest()
	require.True(t, oldest.Equal(&predecessor))
}

func TestFitnessKeyPrefersFewerLiveCellsAndLongerChains(t *testing.T) {
	sparse := NewSequence(func() grid.Grid {
		var g grid.Grid
		g.Set(0, 0, 1)
		return g
	}())
	dense := NewSequence(gliderTarget())

	require.Less(t, sparse.fitnessKey(), dense.fitnessKey())

	longer := dense.fork(gliderTarget())
	require.Less(t, longer.fitnessKey(), dense.fitnessKey())
}

func TestDriverStepAdvancesAndLogsWithoutPanicking(t *testing.T) {
	target := gliderTarget()
	cfg := Config{Workers: 2, MicroStepSize: 10_000, MaxAttempts: 8, Shuffle: true}
	driver := NewDriver(cfg, target, zerolog.Nop(), 1)

	running := true
	var err error
	for i := 0; i < 20 && running; i++ {
		running, err = driver.Step(context.Background())
		require.NoError(t, err)
	}
	require.GreaterOrEqual(t, driver.MacroStep(), 1)
}

func TestWriteSnapshotAndNewRunDir(t *testing.T) {
	base := t.TempDir()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	dir, err := NewRunDir(base, at)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "out-2026-01-02-03-04-05"), dir)

	seq := NewSequence(gliderTarget())
	require.NoError(t, WriteSnapshot(dir, 1, seq))

	contents, err := os.ReadFile(filepath.Join(dir, "000001.txt"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "┌")
}
