package search

import (
	"context"

	"github.com/wwnames/fnvbrute/internal/alphabet"
	"golang.org/x/sync/errgroup"
)

type letterResult struct {
	matches []Match
	nodes   uint64
	// ran is false when the job was cancelled before exploring its subtree.
	ran bool
}

type collector struct {
	matches []Match
}

func (c *collector) Match(m Match) {
	c.matches = append(c.matches, m)
}

// RunParallel splits the search by first symbol and explores up to workers
// subtrees at a time, each with its own state. Matches of one first symbol are
// held until every earlier symbol has been reported, so emit sees the same
// sequence as with Run.
func (e *Engine) RunParallel(ctx context.Context, workers int, emit Emitter) (Stats, error) {
	if workers <= 1 {
		return e.Run(ctx, emit)
	}
	progress, _ := emit.(ProgressEmitter)

	count := e.firstHi - e.firstLo + 1
	results := make([]letterResult, count)
	done := make([]chan struct{}, count)
	for i := range done {
		done[i] = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	waitErr := make(chan error, 1)
	go func() {
		for i := 0; i < count; i++ {
			i := i
			g.Go(func() error {
				defer close(done[i])
				if err := gctx.Err(); err != nil {
					return err
				}
				out := &collector{}
				s := e.newState(out)
				s.root(e.firstLo + i)
				results[i] = letterResult{matches: out.matches, nodes: s.stats.Nodes, ran: true}
				return nil
			})
		}
		waitErr <- g.Wait()
	}()

	s := e.newState(emit)
	s.testPrefix()

	for i := 0; i < count; i++ {
		<-done[i]
		// gctx is also cancelled once every job has returned, so only the
		// caller's ctx tells an interrupted search apart.
		if !results[i].ran || ctx.Err() != nil {
			continue
		}
		if progress != nil {
			progress.Letter(alphabet.Symbols[e.firstLo+i])
		}
		for _, m := range results[i].matches {
			emit.Match(m)
		}
		s.stats.Nodes += results[i].nodes
		s.stats.Matches += len(results[i].matches)
		s.stats.Letters++
	}

	if err := <-waitErr; err != nil {
		return s.stats, err
	}
	return s.stats, ctx.Err()
}
