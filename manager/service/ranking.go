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

package service

import (
	"context"

	logger "github.com/statsml/statsml/internal/dflog"
	"github.com/statsml/statsml/manager/metrics"
	"github.com/statsml/statsml/manager/store"
	"github.com/statsml/statsml/manager/types"
	"github.com/statsml/statsml/pkg/dferrors"
	"github.com/statsml/statsml/pkg/ranking"
)

func (s *service) GetRankings(ctx context.Context, name string, q types.GetRankingsQuery) ([]*ranking.Snapshot, error) {
	estimator, err := ranking.NewEstimator(name)
	if err != nil {
		return nil, dferrors.New(dferrors.CodeValidation, err.Error())
	}

	metrics.ComputeRankingsCount.WithLabelValues(name).Inc()
	games, err := s.store.ListGames(ctx, store.GameFilter{
		Year:   q.Year,
		TeamID: q.TeamID,
	})
	if err != nil {
		metrics.ComputeRankingsFailureCount.WithLabelValues(name).Inc()
		return nil, err
	}

	snapshots, err := s.engine.Compute(ctx, games, estimator)
	if err != nil {
		metrics.ComputeRankingsFailureCount.WithLabelValues(name).Inc()
		logger.RankingLogger.Errorf("compute %s rankings failed: %s", name, err.Error())
		return nil, err
	}

	logger.RankingLogger.Infof("computed %d %s snapshots from %d games", len(snapshots), name, len(games))
	return snapshots, nil
}
