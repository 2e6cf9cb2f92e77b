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

package pipeline

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LinearRegression is ordinary least squares solved for the minimum-norm
// coefficients, so rank deficient designs still fit.
type LinearRegression struct {
	FitIntercept bool

	// Coef holds one coefficient row per output.
	Coef      [][]float64
	Intercept []float64
}

func (l *LinearRegression) Fit(X, y *mat.Dense) error {
	n, p := X.Dims()
	yn, k := y.Dims()
	if n == 0 || p == 0 {
		return errors.New("empty design matrix")
	}

	if n != yn {
		return fmt.Errorf("design has %d rows but target has %d", n, yn)
	}

	xMean := make([]float64, p)
	yMean := make([]float64, k)
	xc := mat.DenseCopyOf(X)
	yc := mat.DenseCopyOf(y)
	if l.FitIntercept {
		for j := 0; j < p; j++ {
			xMean[j] = floats.Sum(mat.Col(nil, j, X)) / float64(n)
		}
		for j := 0; j < k; j++ {
			yMean[j] = floats.Sum(mat.Col(nil, j, y)) / float64(n)
		}

		xc.Apply(func(_, j int, v float64) float64 { return v - xMean[j] }, xc)
		yc.Apply(func(_, j int, v float64) float64 { return v - yMean[j] }, yc)
	}

	var svd mat.SVD
	if ok := svd.Factorize(xc, mat.SVDThin); !ok {
		return errors.New("singular value decomposition failed")
	}

	l.Coef = make([][]float64, k)
	for j := range l.Coef {
		l.Coef[j] = make([]float64, p)
	}

	rcond := math.Nextafter(1, 2) - 1
	rcond *= math.Max(float64(n), float64(p))
	if rank := svd.Rank(rcond); rank > 0 {
		var beta mat.Dense
		svd.SolveTo(&beta, yc, rank)
		for j := 0; j < k; j++ {
			for i := 0; i < p; i++ {
				l.Coef[j][i] = beta.At(i, j)
			}
		}
	}

	l.Intercept = make([]float64, k)
	if l.FitIntercept {
		for j := 0; j < k; j++ {
			l.Intercept[j] = yMean[j] - floats.Dot(xMean, l.Coef[j])
		}
	}

	return nil
}

func (l *LinearRegression) Predict(X *mat.Dense) (*mat.Dense, error) {
	if len(l.Coef) == 0 {
		return nil, errors.New("linear regression is not fitted")
	}

	n, p := X.Dims()
	if p != len(l.Coef[0]) {
		return nil, fmt.Errorf("design has %d columns, model expects %d", p, len(l.Coef[0]))
	}

	out := mat.NewDense(n, len(l.Coef), nil)
	for i := 0; i < n; i++ {
		row := mat.Row(nil, i, X)
		for j, coef := range l.Coef {
			out.Set(i, j, floats.Dot(row, coef)+l.Intercept[j])
		}
	}

	return out, nil
}
