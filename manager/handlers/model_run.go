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
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"

	"github.com/statsml/statsml/manager/types"
)

// @Summary Create Model Run
// @Description Create a pending model run
// @Tags ModelRun
// @Accept json
// @Produce json
// @Param ModelRun body types.CreateModelRunRequest true "ModelRun"
// @Success 200 {object} models.ModelRun
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /ml/model_runs [post]
func (h *Handlers) CreateModelRun(ctx *gin.Context) {
	var json types.CreateModelRunRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	run, err := h.service.CreateModelRun(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Header(headers.Location, fmt.Sprintf("%s/%d", ctx.FullPath(), run.ID))
	ctx.JSON(http.StatusOK, run)
}

// @Summary Get Model Run
// @Description Get model run info by id
// @Tags ModelRun
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} prediction.ModelRunInfo
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /ml/model_runs/{id} [get]
func (h *Handlers) GetModelRun(ctx *gin.Context) {
	var params types.ModelRunParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	info, err := h.service.GetModelRun(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, info)
}

// @Summary Get Model Run Metrics
// @Description Get metrics of a model run by id
// @Tags ModelRun
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} types.GetModelRunMetricsResponse
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /ml/model_runs/{id}/metrics [get]
func (h *Handlers) GetModelRunMetrics(ctx *gin.Context) {
	var params types.ModelRunParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	metrics, err := h.service.GetModelRunMetrics(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.GetModelRunMetricsResponse{
		ModelRunID: params.ID,
		Metrics:    metrics,
	})
}
