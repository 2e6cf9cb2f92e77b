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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func game(day int, home, away string, homeScore, awayScore int) Game {
	return Game{
		Date:      time.Date(2024, 1, day, 19, 0, 0, 0, time.UTC),
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: homeScore,
		AwayScore: awayScore,
	}
}

func ratingsByTeam(ratings []Rating) map[string]float64 {
	m := make(map[string]float64, len(ratings))
	for _, r := range ratings {
		m[r.Team] = r.Rating
	}

	return m
}

func TestLeastSquares_Estimate(t *testing.T) {
	tests := []struct {
		name   string
		games  []Game
		expect func(t *testing.T, ratings []Rating, err error)
	}{
		{
			name:  "single game margin",
			games: []Game{game(1, "A", "B", 10, 5)},
			expect: func(t *testing.T, ratings []Rating, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				r := ratingsByTeam(ratings)
				assert.InDelta(5, r["A"]-r["B"], 1e-6)
				assert.InDelta(0, r["A"]+r["B"], 1e-6)
				assert.Equal("A", ratings[0].Team)
			},
		},
		{
			name: "disconnected teams get the minimum norm solution",
			games: []Game{
				game(1, "A", "B", 6, 3),
				game(1, "C", "D", 10, 3),
			},
			expect: func(t *testing.T, ratings []Rating, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				r := ratingsByTeam(ratings)
				assert.InDelta(1.5, r["A"], 1e-6)
				assert.InDelta(-1.5, r["B"], 1e-6)
				assert.InDelta(3.5, r["C"], 1e-6)
				assert.InDelta(-3.5, r["D"], 1e-6)
				assert.Equal([]string{"C", "A", "B", "D"}, []string{ratings[0].Team, ratings[1].Team, ratings[2].Team, ratings[3].Team})
			},
		},
		{
			name: "inconsistent margins are fit in the least squares sense",
			games: []Game{
				game(1, "A", "B", 6, 3),
				game(2, "B", "C", 5, 3),
				game(3, "A", "C", 10, 3),
			},
			expect: func(t *testing.T, ratings []Rating, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				r := ratingsByTeam(ratings)
				assert.InDelta(10.0/3, r["A"], 1e-6)
				assert.InDelta(-1.0/3, r["B"], 1e-6)
				assert.InDelta(-3, r["C"], 1e-6)
			},
		},
		{
			name:  "no games",
			games: nil,
			expect: func(t *testing.T, ratings []Rating, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Empty(ratings)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ratings, err := NewLeastSquares().Estimate(tc.games)
			tc.expect(t, ratings, err)
		})
	}
}

func TestLSQR_ZeroTarget(t *testing.T) {
	assert := assert.New(t)

	d := newDesign([]Game{game(1, "A", "B", 3, 3)})
	result := lsqr(d, []float64{0}, defaultLSQRTolerance, defaultLSQRTolerance, 0)
	assert.Equal([]float64{0, 0}, result.X)
	assert.Equal(0, result.Iterations)
}

func TestSortRatings(t *testing.T) {
	assert := assert.New(t)

	ratings := sortRatings([]string{"C", "B", "A"}, []float64{1, 2, 2})
	assert.Equal([]Rating{
		{Team: "A", Rating: 2},
		{Team: "B", Rating: 2},
		{Team: "C", Rating: 1},
	}, ratings)
}

func TestNewEstimator(t *testing.T) {
	tests := []struct {
		name   string
		expect func(t *testing.T, e Estimator, err error)
	}{
		{
			name: LeastSquaresName,
			expect: func(t *testing.T, e Estimator, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(LeastSquaresName, e.Name())
			},
		},
		{
			name: LogisticName,
			expect: func(t *testing.T, e Estimator, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(LogisticName, e.Name())
			},
		},
		{
			name: "elo",
			expect: func(t *testing.T, e Estimator, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `unknown estimator "elo", expected lse or logistic`)
				assert.Nil(e)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := NewEstimator(tc.name)
			tc.expect(t, e, err)
		})
	}
}
