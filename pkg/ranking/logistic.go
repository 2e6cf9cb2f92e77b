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
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/optimize"

	logger "github.com/statsml/statsml/internal/dflog"
)

// LogisticName is the name of the logistic win probability estimator.
const LogisticName = "logistic"

const (
	// DefaultLogisticSeed is the seed of the train and test split.
	DefaultLogisticSeed = 42

	// DefaultLogisticTestSize is the share of games held out for accuracy.
	DefaultLogisticTestSize = 0.2

	// DefaultLogisticC is the inverse of the l2 regularization strength.
	DefaultLogisticC = 1.0

	// DefaultLogisticMaxIterations bounds the lbfgs iterations.
	DefaultLogisticMaxIterations = 100
)

// Logistic rates teams by the coefficients of a logistic regression of home wins.
type Logistic struct {
	Seed          int64
	TestSize      float64
	C             float64
	MaxIterations int
}

// NewLogistic returns the logistic estimator with default settings.
func NewLogistic() *Logistic {
	return &Logistic{
		Seed:          DefaultLogisticSeed,
		TestSize:      DefaultLogisticTestSize,
		C:             DefaultLogisticC,
		MaxIterations: DefaultLogisticMaxIterations,
	}
}

func (e *Logistic) Name() string {
	return LogisticName
}

func (e *Logistic) Estimate(games []Game) ([]Rating, error) {
	if len(games) == 0 {
		return []Rating{}, nil
	}

	if e.C <= 0 {
		return nil, errors.New("logistic regression requires a positive C")
	}

	d := newDesign(games)
	_, n := d.Dims()
	train, test := e.split(len(games))

	labels := make([]float64, len(games))
	for i, game := range games {
		if game.HomeWin() {
			labels[i] = 1
		}
	}

	model := newLogisticModel(d, labels, train, 1/e.C)

	// The last coefficient is the unpenalized intercept.
	result, err := optimize.Minimize(optimize.Problem{
		Func: model.loss,
		Grad: model.grad,
	}, make([]float64, n+1), &optimize.Settings{
		MajorIterations:   e.MaxIterations,
		GradientThreshold: 1e-4,
	}, &optimize.LBFGS{})
	if result == nil {
		return nil, err
	}
	if err != nil {
		logger.RankingLogger.Warnf("logistic regression stopped early: %s", err.Error())
	}

	if len(test) > 0 {
		logger.RankingLogger.Infof("logistic regression accuracy: %.2f", model.accuracy(result.X, test))
	}

	return sortRatings(d.teams, result.X[:n]), nil
}

// split shuffles game indices with the fixed seed and holds out the test share.
// Fewer than two games are all used for training.
func (e *Logistic) split(n int) ([]int, []int) {
	perm := rand.New(rand.NewSource(e.Seed)).Perm(n)
	if n < 2 || e.TestSize <= 0 {
		return perm, nil
	}

	size := int(math.Ceil(e.TestSize * float64(n)))
	if size >= n {
		size = n - 1
	}

	return perm[size:], perm[:size]
}

type logisticModel struct {
	design *design
	labels []float64
	train  []int
	teams  int
	alpha  float64

	// z and residual are per game scratch space.
	z        []float64
	residual []float64
}

func newLogisticModel(d *design, labels []float64, train []int, alpha float64) *logisticModel {
	m, n := d.Dims()
	return &logisticModel{
		design:   d,
		labels:   labels,
		train:    train,
		teams:    n,
		alpha:    alpha,
		z:        make([]float64, m),
		residual: make([]float64, m),
	}
}

// decision sets the scratch z to X*w + b.
func (m *logisticModel) decision(x []float64) {
	m.design.MulVec(m.z, x[:m.teams])
	for i := range m.z {
		m.z[i] += x[m.teams]
	}
}

func (m *logisticModel) loss(x []float64) float64 {
	m.decision(x)

	var loss float64
	for _, i := range m.train {
		loss += softplus(m.z[i]) - m.labels[i]*m.z[i]
	}

	var norm float64
	for _, w := range x[:m.teams] {
		norm += w * w
	}

	return loss + 0.5*m.alpha*norm
}

func (m *logisticModel) grad(grad, x []float64) {
	m.decision(x)

	for i := range m.residual {
		m.residual[i] = 0
	}

	var intercept float64
	for _, i := range m.train {
		m.residual[i] = sigmoid(m.z[i]) - m.labels[i]
		intercept += m.residual[i]
	}

	m.design.MulTransVec(grad[:m.teams], m.residual)
	for j := 0; j < m.teams; j++ {
		grad[j] += m.alpha * x[j]
	}
	grad[m.teams] = intercept
}

func (m *logisticModel) accuracy(x []float64, test []int) float64 {
	m.decision(x)

	var correct int
	for _, i := range test {
		predicted := 0.0
		if sigmoid(m.z[i]) >= 0.5 {
			predicted = 1
		}

		if predicted == m.labels[i] {
			correct++
		}
	}

	return float64(correct) / float64(len(test))
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}

	e := math.Exp(z)
	return e / (1 + e)
}

// softplus is log(1 + exp(z)) without overflow.
func softplus(z float64) float64 {
	if z > 0 {
		return z + math.Log1p(math.Exp(-z))
	}

	return math.Log1p(math.Exp(z))
}
