/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ranking

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	logger "github.com/statsml/statsml/internal/dflog"
)

// DefaultConcurrency is the default number of snapshots computed in parallel.
const DefaultConcurrency = 4

// Snapshot holds the ratings of every team that played on or before Date.
type Snapshot struct {
	Date    string   `json:"date"`
	Ratings []Rating `json:"ratings"`
}

// Option is a functional option for configuring the engine.
type Option func(e *Engine)

// WithConcurrency sets the number of snapshots computed in parallel.
func WithConcurrency(concurrency int) Option {
	return func(e *Engine) {
		if concurrency > 0 {
			e.concurrency = concurrency
		}
	}
}

// Engine computes daily rating snapshots.
type Engine struct {
	concurrency int
}

// New returns a new engine.
func New(options ...Option) *Engine {
	e := &Engine{concurrency: DefaultConcurrency}
	for _, opt := range options {
		opt(e)
	}

	return e
}

// Compute returns one snapshot per calendar day from the first to the last
// completed game inclusive. Every snapshot is fit from scratch on all games
// played up to its date, days without games carry the previous ratings.
func (e *Engine) Compute(ctx context.Context, games []Game, estimator Estimator) ([]*Snapshot, error) {
	completed := make([]Game, 0, len(games))
	for _, game := range games {
		if game.Completed() {
			completed = append(completed, game)
		}
	}

	if len(completed) == 0 {
		return []*Snapshot{}, nil
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Day().Before(completed[j].Day())
	})

	// Number of games played up to each day.
	first, last := completed[0].Day(), completed[len(completed)-1].Day()
	var (
		days    []time.Time
		counts  []int
		played  int
		changed []int
	)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		for played < len(completed) && !completed[played].Day().After(day) {
			played++
		}

		if len(counts) == 0 || counts[len(counts)-1] != played {
			changed = append(changed, len(days))
		}

		days = append(days, day)
		counts = append(counts, played)
	}

	ratings := make([][]Rating, len(days))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.concurrency)
	for _, i := range changed {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := estimator.Estimate(completed[:counts[i]])
			if err != nil {
				return err
			}

			ratings[i] = r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.RankingLogger.Errorf("%s rankings failed: %s", estimator.Name(), err.Error())
		return nil, err
	}

	snapshots := make([]*Snapshot, len(days))
	for i, day := range days {
		if ratings[i] == nil {
			ratings[i] = ratings[i-1]
		}

		snapshots[i] = &Snapshot{
			Date:    day.Format(DateLayout),
			Ratings: ratings[i],
		}
	}

	logger.RankingLogger.Infof("%s rankings computed %d snapshots from %d games in %d fits",
		estimator.Name(), len(snapshots), len(completed), len(changed))
	return snapshots, nil
}
