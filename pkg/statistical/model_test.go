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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statsml/statsml/pkg/statistical/pipeline"
	"github.com/statsml/statsml/pkg/types"
)

func kitchenSinkRecord() map[string]any {
	return map[string]any{
		"day_of_season": 1,
		"wins":          1,
		"losses":        0,
		"weekAgoWins":   0,
		"regression":    2.5,
		"logistic":      0.6,
		"rpi":           0.55,
		"normalizedPF":  1.1,
		"decayWP":       0.7,
	}
}

func TestSchema_ValidateFeatures(t *testing.T) {
	m, err := NewBoostedMarginModel()
	require.NoError(t, err)

	tests := []struct {
		name    string
		records []map[string]any
		expect  func(t *testing.T, ok bool)
	}{
		{
			name:    "empty records",
			records: []map[string]any{},
			expect: func(t *testing.T, ok bool) {
				assert := assert.New(t)
				assert.False(ok)
			},
		},
		{
			name:    "nil records",
			records: nil,
			expect: func(t *testing.T, ok bool) {
				assert := assert.New(t)
				assert.False(ok)
			},
		},
		{
			name: "missing a required key",
			records: func() []map[string]any {
				r := kitchenSinkRecord()
				delete(r, "rpi")
				return []map[string]any{r}
			}(),
			expect: func(t *testing.T, ok bool) {
				assert := assert.New(t)
				assert.False(ok)
			},
		},
		{
			name: "all required keys plus extras",
			records: func() []map[string]any {
				r := kitchenSinkRecord()
				r["venue"] = "home"
				return []map[string]any{r}
			}(),
			expect: func(t *testing.T, ok bool) {
				assert := assert.New(t)
				assert.True(ok)
			},
		},
		{
			name:    "only the first record is inspected",
			records: []map[string]any{kitchenSinkRecord(), {}},
			expect: func(t *testing.T, ok bool) {
				assert := assert.New(t)
				assert.True(ok)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, m.ValidateFeatures(tc.records))
		})
	}
}

func TestSchema_ValidateLabels(t *testing.T) {
	assert := assert.New(t)
	m, err := NewLinearMarginModel()
	require.NoError(t, err)

	assert.False(m.ValidateLabels(nil))
	assert.False(m.ValidateLabels([]map[string]any{{"total": 3}}))
	assert.True(m.ValidateLabels([]map[string]any{{"margin": 3, "total": 140}}))
}

func TestSchema_NamesAreCopies(t *testing.T) {
	assert := assert.New(t)
	m, err := NewLinearMarginModel()
	require.NoError(t, err)

	names := m.FeatureNames()
	names[0] = "foo"
	assert.Equal([]string{"homeTeam", "awayTeam"}, m.FeatureNames())
	assert.Equal([]string{"margin"}, m.LabelNames())
}

func TestFactories(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{BoostedMarginModelName, LinearMarginModelName}, Names())
	for name, factory := range Factories() {
		m, err := factory()
		assert.NoError(err)
		assert.Equal(name, m.Name())
		assert.NotEmpty(m.FeatureNames())
		assert.NotEmpty(m.LabelNames())
	}

	assert.Panics(func() { Register(LinearMarginModelName, NewLinearMarginModel) })
	assert.Panics(func() { Register("foo", nil) })
}

func TestLinearMarginModel(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := NewLinearMarginModel()
	require.NoError(err)
	assert.Equal(types.ModelTypeSingleSeason, m.Type())
	assert.Equal(map[string]any{"fit_intercept": true}, m.DefaultParameters())

	features := []map[string]any{
		{"homeTeam": "A", "awayTeam": "B"},
		{"homeTeam": "B", "awayTeam": "A"},
		{"homeTeam": "A", "awayTeam": "C"},
	}
	labels := []map[string]any{{"margin": 6}, {"margin": -4}, {"margin": 9}}

	p, err := m.CreatePipeline(map[string]any{"fit_intercept": "false"})
	require.NoError(err)
	assert.False(p.Regressor.(*pipeline.LinearRegression).FitIntercept)

	p, err = m.CreatePipeline(nil)
	require.NoError(err)
	X, err := pipeline.NewFrame(features, m.FeatureNames())
	require.NoError(err)
	y, err := pipeline.NewTarget(labels, m.LabelNames())
	require.NoError(err)
	require.NoError(p.Fit(X, y))

	metrics := m.ExtractMetrics(p, X, y)
	_, failed := metrics.Err()
	assert.False(failed)
	assert.Equal(3.0, metrics[types.MetricNSamples])
	assert.InDelta(0, metrics[types.MetricMSE], 1e-9)
	assert.InDelta(1, metrics[types.MetricR2Score], 1e-9)

	_, err = m.CreatePipeline(map[string]any{"fit_intercept": "maybe"})
	assert.Error(err)
}

func TestBoostedMarginModel(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := NewBoostedMarginModel()
	require.NoError(err)
	assert.Equal(types.ModelTypeMultiSeason, m.Type())
	assert.Len(m.FeatureNames(), 9)

	p, err := m.CreatePipeline(map[string]any{"max_iter": 10, "unknown": 1})
	require.NoError(err)
	g := p.Regressor.(*pipeline.GradientBoostingRegressor)
	assert.Equal(10, g.MaxIter)
	assert.Equal(pipeline.DefaultLearningRate, g.LearningRate)
	assert.Equal(pipeline.DefaultMinSamplesLeaf, g.MinSamplesLeaf)

	X, err := pipeline.NewFrame([]map[string]any{kitchenSinkRecord()}, m.FeatureNames())
	require.NoError(err)
	y, err := pipeline.NewTarget([]map[string]any{{"margin": 3}}, m.LabelNames())
	require.NoError(err)
	require.NoError(p.Fit(X, y))

	metrics := m.ExtractMetrics(p, X, y)
	assert.Equal(1.0, metrics[types.MetricNSamples])
	assert.Equal(0.0, metrics[types.MetricMSE])
	assert.Equal(0.0, metrics[types.MetricRMSE])
	assert.True(math.IsNaN(metrics[types.MetricR2Score].(float64)))
	assert.Equal("NaN", metrics.Strings()[types.MetricR2Score])
	assert.Equal("1", metrics.Strings()[types.MetricNSamples])
}

func TestExtractMetrics_NeverFails(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := NewLinearMarginModel()
	require.NoError(err)

	X, err := pipeline.NewFrame([]map[string]any{{"homeTeam": "A", "awayTeam": "B"}}, m.FeatureNames())
	require.NoError(err)
	y, err := pipeline.NewTarget([]map[string]any{{"margin": 3}}, m.LabelNames())
	require.NoError(err)

	p, err := m.CreatePipeline(nil)
	require.NoError(err)

	metrics := m.ExtractMetrics(p, X, y)
	msg, failed := metrics.Err()
	assert.True(failed)
	assert.Equal("team encoder is not fitted", msg)
	assert.Len(metrics, 1)

	metrics = m.ExtractMetrics(&pipeline.Pipeline{}, X, y)
	msg, failed = metrics.Err()
	assert.True(failed)
	assert.Equal("pipeline is not initialized", msg)
}
