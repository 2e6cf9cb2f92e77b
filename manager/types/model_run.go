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

type ModelRunParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateModelRunRequest struct {
	ModelName  string         `json:"model_name" binding:"required"`
	ID         uint           `json:"id" binding:"omitempty"`
	Parameters map[string]any `json:"parameters" binding:"omitempty"`
}

type GetModelRunMetricsResponse struct {
	ModelRunID uint              `json:"model_run_id"`
	Metrics    map[string]string `json:"metrics"`
}
