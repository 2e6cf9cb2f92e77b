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
	"fmt"
	"sort"
)

// Rating is the strength of a team.
type Rating struct {
	Team   string  `json:"team"`
	Rating float64 `json:"rating"`
}

// Estimator fits team ratings from games.
type Estimator interface {
	// Name is the estimator name used in logs and routes.
	Name() string

	// Estimate returns ratings sorted in descending order.
	Estimate(games []Game) ([]Rating, error)
}

// NewEstimator returns the estimator registered under name with its
// default settings.
func NewEstimator(name string) (Estimator, error) {
	switch name {
	case LeastSquaresName:
		return NewLeastSquares(), nil
	case LogisticName:
		return NewLogistic(), nil
	default:
		return nil, fmt.Errorf("unknown estimator %q, expected %s or %s", name, LeastSquaresName, LogisticName)
	}
}

// sortRatings pairs teams with coefficients sorted descending, ties by team.
func sortRatings(teams []string, coef []float64) []Rating {
	ratings := make([]Rating, len(teams))
	for i, team := range teams {
		ratings[i] = Rating{Team: team, Rating: coef[i]}
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		if ratings[i].Rating != ratings[j].Rating {
			return ratings[i].Rating > ratings[j].Rating
		}

		return ratings[i].Team < ratings[j].Team
	})

	return ratings
}
