package assets

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/raccoon/internal/config"
)

// Progress is reported once per finished asset.
type Progress struct {
	Key    string
	Loaded int // Assets finished so far, successful or not
	Failed int
	Total  int
}

// Done reports whether every asset has finished.
func (p Progress) Done() bool {
	return p.Loaded >= p.Total
}

// Preload warms the cache with every key in the manifest. The critical, ui
// and projects groups load in parallel with at most concurrency loads in
// flight; content then loads one at a time. Failed assets are logged and
// skipped. onProgress may be called from any goroutine. Preload only
// returns an error when ctx is cancelled.
func (c *Cache) Preload(ctx context.Context, m config.Manifest, concurrency int, onProgress func(Progress)) error {
	parallel := make([]string, 0, len(m.Critical)+len(m.UI)+len(m.Projects))
	parallel = append(parallel, m.Critical...)
	parallel = append(parallel, m.UI...)
	parallel = append(parallel, m.Projects...)

	total := len(parallel) + len(m.Content)
	c.mu.Lock()
	c.total = total
	c.mu.Unlock()

	var (
		mu       sync.Mutex
		progress = Progress{Total: total}
	)
	finish := func(key string, err error) {
		mu.Lock()
		progress.Key = key
		progress.Loaded++
		if err != nil {
			progress.Failed++
		}
		p := progress
		mu.Unlock()

		if err != nil {
			log.Printf("Warning: Skipping asset %s: %v", key, err)
		}
		if onProgress != nil {
			onProgress(p)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for _, key := range parallel {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := c.Load(gctx, key)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			finish(key, err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, key := range m.Content {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := c.Load(ctx, key)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		finish(key, err)
	}

	log.Printf("Preloaded %d assets (%d failed)", progress.Loaded-progress.Failed, progress.Failed)
	return nil
}
