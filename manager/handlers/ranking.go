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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/statsml/statsml/manager/types"
)

// @Summary Get Rankings
// @Description Get daily power ranking snapshots computed by the estimator
// @Tags Ranking
// @Accept json
// @Produce json
// @Param estimator path string true "lse or logistic"
// @Param year query int false "year"
// @Param team_id query int false "team_id"
// @Success 200 {object} types.GetRankingsResponse
// @Failure 400
// @Failure 500
// @Router /rankings/{estimator} [get]
func (h *Handlers) GetRankings(ctx *gin.Context) {
	var params types.RankingParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	var query types.GetRankingsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	snapshots, err := h.service.GetRankings(ctx.Request.Context(), params.Estimator, query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.GetRankingsResponse{
		Status: types.StatusSuccess,
		Data:   snapshots,
	})
}
