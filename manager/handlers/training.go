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

	"github.com/statsml/statsml/manager/middlewares"
	"github.com/statsml/statsml/manager/prediction"
	"github.com/statsml/statsml/manager/types"
	"github.com/statsml/statsml/pkg/dferrors"
)

// @Summary Train
// @Description Start training a pending model run, the run is trained in the background
// @Tags Training
// @Accept json
// @Produce json
// @Param model_name query string true "model_name"
// @Param model_run_id query int true "model_run_id"
// @Param Train body types.TrainRequest true "Train"
// @Success 200 {object} types.StatusResponse
// @Failure 400
// @Failure 500
// @Router /ml/train [post]
func (h *Handlers) Train(ctx *gin.Context) {
	var query types.TrainQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	var json types.TrainRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	if err := h.service.Train(ctx.Request.Context(), query, json); err != nil {
		// Rejected starts are reported as bad requests, store failures
		// keep their own status.
		if dferrors.IsPersistence(err) {
			ctx.Error(err) // nolint: errcheck
			return
		}

		ctx.JSON(http.StatusBadRequest, middlewares.NewErrorResponse(http.StatusBadRequest, err))
		return
	}

	ctx.JSON(http.StatusOK, types.StatusResponse{
		Status:  types.StatusSuccess,
		Message: "Training initiated successfully",
	})
}

// @Summary Predict
// @Description Predict with the trained pipeline of a successful model run
// @Tags Prediction
// @Accept json
// @Produce json
// @Param model_run_id query int true "model_run_id"
// @Param Predict body types.PredictRequest true "Predict"
// @Success 200 {object} prediction.Result
// @Failure 400 {object} prediction.Result
// @Router /ml/predict [post]
func (h *Handlers) Predict(ctx *gin.Context) {
	var query types.PredictQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	var json types.PredictRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	result := h.service.Predict(ctx.Request.Context(), query, json)
	if result.Status != prediction.StatusSuccess {
		ctx.JSON(http.StatusBadRequest, result)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
