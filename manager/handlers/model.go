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

// @Summary Get Models
// @Description Get registered model names, with features and labels when detail is set
// @Tags Model
// @Accept json
// @Produce json
// @Param detail query bool false "detail"
// @Success 200 {object} types.GetModelsResponse
// @Failure 400
// @Failure 500
// @Router /ml/models [get]
func (h *Handlers) GetModels(ctx *gin.Context) {
	var query types.GetModelsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	resp, err := h.service.GetModels(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
