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
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// defaultLSQRTolerance is both the atol and btol stopping tolerance.
	defaultLSQRTolerance = 1e-8
)

// linearOperator is a matrix only accessed through products.
type linearOperator interface {
	Dims() (int, int)
	MulVec(dst, x []float64)
	MulTransVec(dst, y []float64)
}

// lsqrResult is the outcome of an lsqr solve.
type lsqrResult struct {
	X          []float64
	Iterations int
	Residual   float64
}

// lsqr solves min ||Ax - b|| starting from x = 0 with the bidiagonalization
// method of Paige and Saunders. Started from zero it converges to the
// minimum norm solution of rank deficient systems. A non-positive
// iterLimit defaults to twice the number of columns.
func lsqr(a linearOperator, b []float64, atol, btol float64, iterLimit int) *lsqrResult {
	m, n := a.Dims()
	if iterLimit <= 0 {
		iterLimit = 2 * n
	}

	x := make([]float64, n)
	u := make([]float64, m)
	copy(u, b)
	v := make([]float64, n)
	w := make([]float64, n)
	tmpM := make([]float64, m)
	tmpN := make([]float64, n)

	beta := floats.Norm(u, 2)
	if beta > 0 {
		floats.Scale(1/beta, u)
	}

	a.MulTransVec(v, u)
	alfa := floats.Norm(v, 2)
	if alfa > 0 {
		floats.Scale(1/alfa, v)
	}
	copy(w, v)

	result := &lsqrResult{X: x, Residual: beta}
	if alfa*beta == 0 {
		return result
	}

	var (
		anorm  float64
		rhobar = alfa
		phibar = beta
		bnorm  = beta
	)
	for itn := 1; itn <= iterLimit; itn++ {
		result.Iterations = itn

		// Continue the bidiagonalization.
		a.MulVec(tmpM, v)
		floats.AddScaledTo(u, tmpM, -alfa, u)
		beta = floats.Norm(u, 2)
		if beta > 0 {
			floats.Scale(1/beta, u)
			anorm = math.Sqrt(anorm*anorm + alfa*alfa + beta*beta)

			a.MulTransVec(tmpN, u)
			floats.AddScaledTo(v, tmpN, -beta, v)
			alfa = floats.Norm(v, 2)
			if alfa > 0 {
				floats.Scale(1/alfa, v)
			}
		}

		// Plane rotation eliminating the subdiagonal element.
		rho := math.Hypot(rhobar, beta)
		c := rhobar / rho
		s := beta / rho
		theta := s * alfa
		rhobar = -c * alfa
		phi := c * phibar
		phibar = s * phibar
		tau := s * phi

		// Update x and w.
		floats.AddScaled(x, phi/rho, w)
		floats.AddScaledTo(w, v, -theta/rho, w)

		rnorm := phibar
		arnorm := alfa * math.Abs(tau)
		result.Residual = rnorm

		test1 := rnorm / bnorm
		test2 := math.Inf(1)
		if anorm*rnorm > 0 {
			test2 = arnorm / (anorm * rnorm)
		}
		rtol := btol + atol*anorm*floats.Norm(x, 2)/bnorm

		if test1 <= rtol || test2 <= atol || 1+test1 <= 1 || 1+test2 <= 1 {
			break
		}
	}

	return result
}
