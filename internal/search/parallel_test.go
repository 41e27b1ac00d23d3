package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wwnames/fnvbrute/internal/banlist"
	"github.com/wwnames/fnvbrute/internal/fnvhash"
)

func TestParallelMatchesSequential(t *testing.T) {
	table := banlist.Permissive()
	table.Disallow(banlist.Start, 'z', 'b')
	table.Disallow(banlist.Inner, 'a', 'q')

	cfg := Config{Target: fnvhash.Sum("bgm_zap"), Prefix: "bgm_", MaxDepth: 3}
	engine, err := New(cfg, table)
	require.NoError(t, err)

	seq := &recorder{}
	seqStats, err := engine.Run(context.Background(), seq)
	require.NoError(t, err)

	par := &recorder{}
	parStats, err := engine.RunParallel(context.Background(), 4, par)
	require.NoError(t, err)

	assert.Contains(t, par.names(), "bgm_zap")
	assert.Equal(t, seq.matches, par.matches)
	assert.Equal(t, seq.letters, par.letters)
	assert.Equal(t, seqStats, parStats)
}

func TestParallelSingleWorkerRunsSequentially(t *testing.T) {
	engine, err := New(Config{Target: fnvhash.Sum("ab"), MaxDepth: 2, IgnoreBanList: true}, nil)
	require.NoError(t, err)

	rec := &recorder{}
	stats, err := engine.RunParallel(context.Background(), 1, rec)
	require.NoError(t, err)
	assert.Contains(t, rec.names(), "ab")
	assert.Equal(t, 37, stats.Letters)
}

func TestParallelCancelled(t *testing.T) {
	engine, err := New(Config{Target: 1, MaxDepth: 2}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = engine.RunParallel(ctx, 4, &recorder{})
	assert.ErrorIs(t, err, context.Canceled)
}

type slowRecorder struct {
	recorder
	delay time.Duration
}

func (r *slowRecorder) Letter(c byte) {
	time.Sleep(r.delay)
	r.recorder.Letter(c)
}

func TestParallelFlushesEveryLetter(t *testing.T) {
	engine, err := New(Config{Target: fnvhash.Sum("z9"), MaxDepth: 2, IgnoreBanList: true}, nil)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		rec := &slowRecorder{delay: time.Millisecond}
		stats, err := engine.RunParallel(context.Background(), 8, rec)
		require.NoError(t, err)
		require.Equal(t, 37, stats.Letters, "run %d", i)
		require.Len(t, rec.letters, 37, "run %d", i)
		require.Equal(t, []string{"z9"}, rec.names(), "run %d", i)
	}
}
