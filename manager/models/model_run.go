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

package models

import (
	"time"
)

// ModelRun is a single training attempt of a model.
type ModelRun struct {
	BaseModel
	ModelID     uint       `gorm:"index;not null;comment:model id" json:"model_id"`
	Model       Model      `json:"model"`
	Status      string     `gorm:"column:status;type:varchar(32);index;not null;default:'PENDING';comment:run status" json:"status"`
	Parameters  JSONMap    `gorm:"column:parameters;comment:training parameters" json:"parameters"`
	Result      []byte     `gorm:"column:result;comment:serialized pipeline" json:"-"`
	HasArtifact bool       `gorm:"column:has_artifact;not null;default:false;comment:result holds a trained pipeline" json:"has_artifact"`
	CompletedAt *time.Time `gorm:"column:completed_at;comment:completion time" json:"completed_at"`
}

// RunDate is the completion time of a terminal run, otherwise its creation time.
func (r *ModelRun) RunDate() time.Time {
	if r.CompletedAt != nil {
		return *r.CompletedAt
	}

	return r.CreatedAt
}

// ModelRunMetric is an append-only metric of a run.
type ModelRunMetric struct {
	ID         uint      `gorm:"primarykey;comment:id" json:"id"`
	ModelRunID uint      `gorm:"index;not null;comment:model run id" json:"model_run_id"`
	Name       string    `gorm:"column:name;type:varchar(256);not null;comment:metric name" json:"name"`
	Value      string    `gorm:"column:value;type:varchar(1024);comment:metric value" json:"value"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"created_at"`
}
