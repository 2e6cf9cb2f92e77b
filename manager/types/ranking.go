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

package types

import "github.com/statsml/statsml/pkg/ranking"

type RankingParams struct {
	Estimator string `uri:"estimator" binding:"required,oneof=lse logistic"`
}

type GetRankingsQuery struct {
	Year   int  `form:"year" binding:"omitempty,gte=1800,lte=3000"`
	TeamID uint `form:"team_id" binding:"omitempty"`
}

type GetRankingsResponse struct {
	Status string              `json:"status"`
	Data   []*ranking.Snapshot `json:"data"`
}
