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
	"github.com/statsml/statsml/manager/models"
	"github.com/statsml/statsml/manager/prediction"
	"github.com/statsml/statsml/manager/types"
	"github.com/statsml/statsml/pkg/dferrors"
	"github.com/statsml/statsml/trainer/training"
)

func (s *service) CreateModelRun(ctx context.Context, json types.CreateModelRunRequest) (*models.ModelRun, error) {
	if !s.registry.Available(json.ModelName) {
		return nil, dferrors.Newf(dferrors.CodeNotFound, "model %s not found in registry", json.ModelName)
	}

	run, err := s.store.CreateModelRun(ctx, json.ModelName, json.ID, json.Parameters)
	if err != nil {
		return nil, err
	}

	logger.WithModelRun(run.ID, json.ModelName).Info("model run created")
	return run, nil
}

func (s *service) GetModelRun(ctx context.Context, id uint) (*prediction.ModelRunInfo, error) {
	return s.prediction.GetModelRunInfo(ctx, id)
}

func (s *service) GetModelRunMetrics(ctx context.Context, id uint) (map[string]string, error) {
	return s.prediction.GetModelRunMetrics(ctx, id)
}

func (s *service) Train(ctx context.Context, q types.TrainQuery, json types.TrainRequest) error {
	if !s.registry.Available(q.ModelName) {
		return dferrors.Newf(dferrors.CodeNotFound, "model %s not found in registry", q.ModelName)
	}

	return s.training.Start(ctx, &training.StartRequest{
		ModelName:  q.ModelName,
		RunID:      q.ModelRunID,
		Parameters: json.Parameters,
		Features:   json.Features,
		Labels:     json.Labels,
	})
}

func (s *service) Predict(ctx context.Context, q types.PredictQuery, json types.PredictRequest) *prediction.Result {
	return s.prediction.Predict(ctx, q.ModelRunID, json.Features)
}
