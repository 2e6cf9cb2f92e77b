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

	"github.com/statsml/statsml/manager/models"
	"github.com/statsml/statsml/manager/prediction"
	"github.com/statsml/statsml/manager/registry"
	"github.com/statsml/statsml/manager/store"
	"github.com/statsml/statsml/manager/types"
	"github.com/statsml/statsml/pkg/ranking"
	"github.com/statsml/statsml/trainer/training"
)

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

type Service interface {
	GetModels(context.Context, types.GetModelsQuery) (*types.GetModelsResponse, error)

	CreateModelRun(context.Context, types.CreateModelRunRequest) (*models.ModelRun, error)
	GetModelRun(context.Context, uint) (*prediction.ModelRunInfo, error)
	GetModelRunMetrics(context.Context, uint) (map[string]string, error)

	Train(context.Context, types.TrainQuery, types.TrainRequest) error
	Predict(context.Context, types.PredictQuery, types.PredictRequest) *prediction.Result

	GetRankings(context.Context, string, types.GetRankingsQuery) ([]*ranking.Snapshot, error)
}

type service struct {
	store      store.Store
	registry   registry.Registry
	training   training.Training
	prediction prediction.Prediction
	engine     *ranking.Engine
}

// New returns a new Service instence.
func New(store store.Store, registry registry.Registry, training training.Training, prediction prediction.Prediction, engine *ranking.Engine) Service {
	return &service{
		store:      store,
		registry:   registry,
		training:   training,
		prediction: prediction,
		engine:     engine,
	}
}
