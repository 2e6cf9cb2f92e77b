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

package prediction

import (
	"context"
	"fmt"
	"strings"
	"time"

	logger "github.com/statsml/statsml/internal/dflog"
	"github.com/statsml/statsml/manager/cache"
	"github.com/statsml/statsml/manager/metrics"
	"github.com/statsml/statsml/manager/registry"
	"github.com/statsml/statsml/manager/store"
	"github.com/statsml/statsml/pkg/dferrors"
	"github.com/statsml/statsml/pkg/safe"
	"github.com/statsml/statsml/pkg/statistical/pipeline"
	"github.com/statsml/statsml/pkg/types"
)

//go:generate mockgen -destination mocks/prediction_mock.go -source prediction.go -package mocks

const (
	// StatusSuccess is the status of a served prediction.
	StatusSuccess = "success"

	// StatusError is the status of a failed prediction.
	StatusError = "error"
)

// Record is the prediction of one feature record.
type Record struct {
	// Prediction is a float64 for single label models and a []float64 otherwise.
	Prediction      any            `json:"prediction"`
	ModelType       string         `json:"model_type"`
	PredictionIndex int            `json:"prediction_index"`
	Features        map[string]any `json:"features"`
	PredictedLabel  string         `json:"predicted_label"`
}

// Result is the prediction envelope.
type Result struct {
	Predictions  []Record `json:"predictions"`
	ModelRunID   uint     `json:"model_run_id"`
	ModelName    string   `json:"model_name,omitempty"`
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message,omitempty"`

	// Err is the cause of a failed prediction.
	Err error `json:"-"`
}

// ModelRunInfo describes a run.
type ModelRunInfo struct {
	ModelRunID         uint      `json:"model_run_id"`
	ModelName          string    `json:"model_name"`
	ModelType          string    `json:"model_type"`
	RunStatus          string    `json:"run_status"`
	RunDate            time.Time `json:"run_date"`
	HasTrainedPipeline bool      `json:"has_trained_pipeline"`
}

// Prediction serves inference from trained runs.
type Prediction interface {
	// Predict runs the trained pipeline of a successful run on features.
	// Failures are reported in the result, never returned.
	Predict(context.Context, uint, []map[string]any) *Result

	// GetModelRunInfo returns the description of a run.
	GetModelRunInfo(context.Context, uint) (*ModelRunInfo, error)

	// GetModelRunMetrics returns the metrics of a run by name.
	GetModelRunMetrics(context.Context, uint) (map[string]string, error)
}

type prediction struct {
	store    store.Store
	registry registry.Registry
	cache    *cache.Cache
}

// New returns a new Prediction.
func New(store store.Store, registry registry.Registry, cache *cache.Cache) Prediction {
	return &prediction{
		store:    store,
		registry: registry,
		cache:    cache,
	}
}

func (p *prediction) Predict(ctx context.Context, id uint, features []map[string]any) *Result {
	var (
		records   []Record
		modelName string
	)

	err := safe.CallE(func() (err error) {
		records, modelName, err = p.predict(ctx, id, features)
		return err
	})

	metrics.PredictCount.WithLabelValues(modelName).Inc()
	if err != nil {
		metrics.PredictFailureCount.WithLabelValues(modelName).Inc()
		logger.WithModelRun(id, modelName).Warnf("predict failed: %s", err.Error())
		return &Result{
			Predictions:  []Record{},
			ModelRunID:   id,
			ModelName:    modelName,
			Status:       StatusError,
			ErrorMessage: err.Error(),
			Err:          err,
		}
	}

	return &Result{
		Predictions: records,
		ModelRunID:  id,
		ModelName:   modelName,
		Status:      StatusSuccess,
	}
}

func (p *prediction) predict(ctx context.Context, id uint, features []map[string]any) ([]Record, string, error) {
	if len(features) == 0 {
		return nil, "", dferrors.New(dferrors.CodeValidation, "features are required")
	}

	run, err := p.store.GetModelRun(ctx, id)
	if err != nil {
		return nil, "", err
	}

	modelName := run.Model.Name
	if run.Status != types.ModelRunStateSuccess {
		return nil, modelName, dferrors.Newf(dferrors.CodeInvalidState, "model run %d is not in %s state", id, types.ModelRunStateSuccess)
	}

	model, err := p.registry.Get(modelName)
	if err != nil {
		return nil, modelName, err
	}

	if !model.ValidateFeatures(features) {
		return nil, modelName, dferrors.Newf(dferrors.CodeValidation, "Invalid features for model %s", modelName)
	}

	artifact, err := p.cache.GetModelRunArtifact(ctx, id, func(ctx context.Context) ([]byte, error) {
		return p.store.GetModelRunArtifact(ctx, id)
	})
	if err != nil {
		return nil, modelName, err
	}

	if len(artifact) == 0 {
		return nil, modelName, dferrors.Newf(dferrors.CodeNotFound, "model run %d has no trained artifact", id)
	}

	fitted, err := pipeline.Unmarshal(artifact)
	if err != nil {
		return nil, modelName, fmt.Errorf("decode artifact of model run %d: %w", id, err)
	}

	X, err := pipeline.NewFrame(features, model.FeatureNames())
	if err != nil {
		return nil, modelName, dferrors.New(dferrors.CodeValidation, err.Error())
	}

	predicted, err := fitted.Predict(X)
	if err != nil {
		return nil, modelName, err
	}

	labels := model.LabelNames()
	label := strings.Join(labels, ",")
	rows, cols := predicted.Dims()
	records := make([]Record, 0, rows)
	for i := 0; i < rows; i++ {
		var value any
		if cols == 1 {
			value = predicted.At(i, 0)
		} else {
			values := make([]float64, cols)
			for j := range values {
				values[j] = predicted.At(i, j)
			}
			value = values
		}

		records = append(records, Record{
			Prediction:      value,
			ModelType:       model.Type(),
			PredictionIndex: i,
			Features:        features[i],
			PredictedLabel:  label,
		})
	}

	return records, modelName, nil
}

func (p *prediction) GetModelRunInfo(ctx context.Context, id uint) (*ModelRunInfo, error) {
	run, err := p.store.GetModelRun(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ModelRunInfo{
		ModelRunID:         run.ID,
		ModelName:          run.Model.Name,
		ModelType:          run.Model.Type,
		RunStatus:          run.Status,
		RunDate:            run.RunDate(),
		HasTrainedPipeline: run.HasArtifact,
	}, nil
}

func (p *prediction) GetModelRunMetrics(ctx context.Context, id uint) (map[string]string, error) {
	entries, err := p.store.ListModelRunMetrics(ctx, id)
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(entries))
	for _, entry := range entries {
		m[entry.Name] = entry.Value
	}

	return m, nil
}
