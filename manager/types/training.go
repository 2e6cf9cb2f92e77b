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

const (
	// StatusSuccess is the status of an accepted request.
	StatusSuccess = "success"

	// StatusError is the status of a rejected request.
	StatusError = "error"

	// StatusHealthy is the status of a serving process.
	StatusHealthy = "healthy"
)

type TrainQuery struct {
	ModelName  string `form:"model_name" binding:"required"`
	ModelRunID uint   `form:"model_run_id" binding:"required"`
}

type TrainRequest struct {
	Features   []map[string]any `json:"features" binding:"required,min=1"`
	Labels     []map[string]any `json:"labels" binding:"required,min=1"`
	Parameters map[string]any   `json:"parameters" binding:"omitempty"`
}

type PredictQuery struct {
	ModelRunID uint `form:"model_run_id" binding:"required"`
}

type PredictRequest struct {
	Features []map[string]any `json:"features" binding:"required,min=1"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
