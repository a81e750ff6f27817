package quadtree

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// NearestBatch runs GetNearestObjects for every element of objs concurrently
// and returns the results in input order.
//
// All objects are validated before any query runs. The tree must not be
// modified until NearestBatch returns. Cancelling ctx stops queries that have
// not started yet and returns ctx's error.
func (qt *QuadTree[T]) NearestBatch(ctx context.Context, objs []T) ([][]T, error) {
	start := time.Now()
	if objs == nil {
		err := nilArgument("objs")
		qt.logger.LogBatch(ctx, 0, 0, err)
		return nil, err
	}
	for i, obj := range objs {
		if isNil(obj) {
			err := nilElement("objs", i)
			qt.logger.LogBatch(ctx, len(objs), 0, err)
			return nil, err
		}
	}

	results := make([][]T, len(objs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(qt.queryConcurrency)

	for i, obj := range objs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = qt.nearest(obj)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		qt.metrics.RecordQuery(0, time.Since(start), err)
		qt.logger.LogBatch(ctx, len(objs), 0, err)
		return nil, err
	}

	candidates := 0
	for _, r := range results {
		candidates += len(r)
	}
	qt.metrics.RecordQuery(candidates, time.Since(start), nil)
	qt.logger.LogBatch(ctx, len(objs), candidates, nil)
	return results, nil
}
