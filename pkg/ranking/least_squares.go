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
	logger "github.com/statsml/statsml/internal/dflog"
)

// LeastSquaresName is the name of the least squares margin estimator.
const LeastSquaresName = "lse"

// LeastSquares rates teams by the least squares fit of home margins.
type LeastSquares struct {
	// Tolerance is the atol and btol of the solver.
	Tolerance float64

	// MaxIterations bounds the solver, zero means twice the number of teams.
	MaxIterations int
}

// NewLeastSquares returns the least squares estimator with default tolerances.
func NewLeastSquares() *LeastSquares {
	return &LeastSquares{Tolerance: defaultLSQRTolerance}
}

func (e *LeastSquares) Name() string {
	return LeastSquaresName
}

func (e *LeastSquares) Estimate(games []Game) ([]Rating, error) {
	if len(games) == 0 {
		return []Rating{}, nil
	}

	d := newDesign(games)
	margins := make([]float64, len(games))
	for i, game := range games {
		margins[i] = game.Margin()
	}

	tolerance := e.Tolerance
	if tolerance <= 0 {
		tolerance = defaultLSQRTolerance
	}

	result := lsqr(d, margins, tolerance, tolerance, e.MaxIterations)
	logger.RankingLogger.Debugf("lsqr solved %d games and %d teams in %d iterations, residual %g",
		len(games), len(d.teams), result.Iterations, result.Residual)

	return sortRatings(d.teams, result.X), nil
}
