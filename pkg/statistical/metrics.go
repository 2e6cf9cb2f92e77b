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
	"math"
	"strconv"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/statsml/statsml/pkg/statistical/pipeline"
	"github.com/statsml/statsml/pkg/types"
)

// Metrics maps a metric name to a float64 value, or to a string message for
// the error entry.
type Metrics map[string]any

// Err returns the error message if the metrics describe a failure.
func (m Metrics) Err() (string, bool) {
	v, ok := m[types.MetricError]
	if !ok {
		return "", false
	}

	return fmt.Sprint(v), true
}

// Strings encodes every value for persistence. NaN is encoded as "NaN".
func (m Metrics) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for name, value := range m {
		switch v := value.(type) {
		case float64:
			out[name] = strconv.FormatFloat(v, 'g', -1, 64)
		case string:
			out[name] = v
		default:
			out[name] = fmt.Sprint(v)
		}
	}

	return out
}

// regressionMetrics returns mse, rmse, r2_score and n_samples of p on X, y.
func regressionMetrics(p *pipeline.Pipeline, X *pipeline.Frame, y *mat.Dense) (metrics Metrics) {
	defer func() {
		if r := recover(); r != nil {
			metrics = Metrics{types.MetricError: fmt.Sprint(r)}
		}
	}()

	predicted, err := p.Predict(X)
	if err != nil {
		return Metrics{types.MetricError: err.Error()}
	}

	rows, cols := y.Dims()
	if pr, pc := predicted.Dims(); pr != rows || pc != cols {
		return Metrics{types.MetricError: fmt.Sprintf("predictions are %dx%d but labels are %dx%d", pr, pc, rows, cols)}
	}

	squares := make(stats.Float64Data, 0, rows*cols)
	var r2 float64
	for j := 0; j < cols; j++ {
		actual := mat.Col(nil, j, y)
		estimate := mat.Col(nil, j, predicted)
		for i := range actual {
			d := actual[i] - estimate[i]
			squares = append(squares, d*d)
		}
		r2 += rSquared(estimate, actual)
	}

	mse, err := stats.Mean(squares)
	if err != nil {
		return Metrics{types.MetricError: err.Error()}
	}

	return Metrics{
		types.MetricMSE:      mse,
		types.MetricRMSE:     math.Sqrt(mse),
		types.MetricR2Score:  r2 / float64(cols),
		types.MetricNSamples: float64(rows),
	}
}

// rSquared is undefined below two samples. A constant target scores 1 when
// predicted exactly and 0 otherwise.
func rSquared(estimate, actual []float64) float64 {
	if len(actual) < 2 {
		return math.NaN()
	}

	if stat.Variance(actual, nil) == 0 {
		for i := range actual {
			if actual[i] != estimate[i] {
				return 0
			}
		}
		return 1
	}

	return stat.RSquaredFrom(estimate, actual, nil)
}
