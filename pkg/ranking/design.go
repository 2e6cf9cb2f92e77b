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
	"github.com/james-bowman/sparse"
)

// design is the sparse game by team matrix, +1 in the home column and -1
// in the away column of each row.
type design struct {
	teams []string
	x     *sparse.CSR
}

func newDesign(games []Game) *design {
	var teams []string
	index := make(map[string]int)
	for _, game := range games {
		for _, team := range []string{game.HomeTeam, game.AwayTeam} {
			if _, ok := index[team]; !ok {
				index[team] = len(teams)
				teams = append(teams, team)
			}
		}
	}

	dok := sparse.NewDOK(len(games), len(teams))
	for i, game := range games {
		dok.Set(i, index[game.HomeTeam], 1)
		dok.Set(i, index[game.AwayTeam], -1)
	}

	return &design{
		teams: teams,
		x:     dok.ToCSR(),
	}
}

func (d *design) Dims() (int, int) {
	return d.x.Dims()
}

// MulVec sets dst to X*x.
func (d *design) MulVec(dst, x []float64) {
	for i := range dst {
		dst[i] = 0
	}

	d.x.DoNonZero(func(i, j int, v float64) {
		dst[i] += v * x[j]
	})
}

// MulTransVec sets dst to X^T*y.
func (d *design) MulTransVec(dst, y []float64) {
	for j := range dst {
		dst[j] = 0
	}

	d.x.DoNonZero(func(i, j int, v float64) {
		dst[j] += v * y[i]
	})
}
