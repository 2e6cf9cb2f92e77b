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

package statistical

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/statsml/statsml/pkg/statistical/pipeline"
	"github.com/statsml/statsml/pkg/types"
)

// BoostedMarginModelName is the registered name of the season statistics model.
const BoostedMarginModelName = "kitchen-sink"

var boostedMarginFeatures = []string{
	"day_of_season",
	"wins",
	"losses",
	"weekAgoWins",
	"regression",
	"logistic",
	"rpi",
	"normalizedPF",
	"decayWP",
}

func init() {
	Register(BoostedMarginModelName, NewBoostedMarginModel)
}

type boostedMarginOptions struct {
	LearningRate     float64 `mapstructure:"learning_rate"`
	MaxIter          int     `mapstructure:"max_iter"`
	MaxLeafNodes     int     `mapstructure:"max_leaf_nodes"`
	MaxDepth         int     `mapstructure:"max_depth"`
	MinSamplesLeaf   int     `mapstructure:"min_samples_leaf"`
	L2Regularization float64 `mapstructure:"l2_regularization"`
}

// BoostedMarginModel predicts the home margin from season to date team
// statistics with gradient boosted trees.
type BoostedMarginModel struct {
	Schema
}

// NewBoostedMarginModel returns the kitchen sink model.
func NewBoostedMarginModel() (Model, error) {
	return &BoostedMarginModel{
		Schema: Schema{
			Features: boostedMarginFeatures,
			Labels:   []string{marginColumn},
		},
	}, nil
}

func (m *BoostedMarginModel) Name() string {
	return BoostedMarginModelName
}

func (m *BoostedMarginModel) Type() string {
	return types.ModelTypeMultiSeason
}

func (m *BoostedMarginModel) Description() string {
	return "Gradient boosted trees over season to date team statistics"
}

func (m *BoostedMarginModel) DefaultParameters() map[string]any {
	return map[string]any{
		"learning_rate":     pipeline.DefaultLearningRate,
		"max_iter":          pipeline.DefaultMaxIter,
		"max_leaf_nodes":    pipeline.DefaultMaxLeafNodes,
		"max_depth":         0,
		"min_samples_leaf":  pipeline.DefaultMinSamplesLeaf,
		"l2_regularization": 0.0,
	}
}

func (m *BoostedMarginModel) CreatePipeline(params map[string]any) (*pipeline.Pipeline, error) {
	var opts boostedMarginOptions
	if err := decodeParameters(m.DefaultParameters(), params, &opts); err != nil {
		return nil, fmt.Errorf("invalid parameters for model %s: %w", m.Name(), err)
	}

	return pipeline.New(
		pipeline.NewColumnSelector(m.Features...),
		&pipeline.GradientBoostingRegressor{
			LearningRate:     opts.LearningRate,
			MaxIter:          opts.MaxIter,
			MaxLeafNodes:     opts.MaxLeafNodes,
			MaxDepth:         opts.MaxDepth,
			MinSamplesLeaf:   opts.MinSamplesLeaf,
			L2Regularization: opts.L2Regularization,
		},
	), nil
}

func (m *BoostedMarginModel) ExtractMetrics(p *pipeline.Pipeline, X *pipeline.Frame, y *mat.Dense) Metrics {
	return regressionMetrics(p, X, y)
}
