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

const (
	// LinearMarginModelName is the registered name of the team identity model.
	LinearMarginModelName = "naive-linear-regression"

	homeTeamColumn = "homeTeam"
	awayTeamColumn = "awayTeam"
	marginColumn   = "margin"
)

func init() {
	Register(LinearMarginModelName, NewLinearMarginModel)
}

type linearMarginOptions struct {
	FitIntercept bool `mapstructure:"fit_intercept"`
}

// LinearMarginModel predicts the home margin of victory from team
// identities alone: one +1/-1 column per team, then least squares.
type LinearMarginModel struct {
	Schema
}

// NewLinearMarginModel returns the naive linear regression model.
func NewLinearMarginModel() (Model, error) {
	return &LinearMarginModel{
		Schema: Schema{
			Features: []string{homeTeamColumn, awayTeamColumn},
			Labels:   []string{marginColumn},
		},
	}, nil
}

func (m *LinearMarginModel) Name() string {
	return LinearMarginModelName
}

func (m *LinearMarginModel) Type() string {
	return types.ModelTypeSingleSeason
}

func (m *LinearMarginModel) Description() string {
	return "Linear regression of the home margin on home and away team identities"
}

func (m *LinearMarginModel) DefaultParameters() map[string]any {
	return map[string]any{
		"fit_intercept": true,
	}
}

func (m *LinearMarginModel) CreatePipeline(params map[string]any) (*pipeline.Pipeline, error) {
	var opts linearMarginOptions
	if err := decodeParameters(m.DefaultParameters(), params, &opts); err != nil {
		return nil, fmt.Errorf("invalid parameters for model %s: %w", m.Name(), err)
	}

	return pipeline.New(
		pipeline.NewTeamEncoder(homeTeamColumn, awayTeamColumn),
		&pipeline.LinearRegression{FitIntercept: opts.FitIntercept},
	), nil
}

func (m *LinearMarginModel) ExtractMetrics(p *pipeline.Pipeline, X *pipeline.Frame, y *mat.Dense) Metrics {
	return regressionMetrics(p, X, y)
}
