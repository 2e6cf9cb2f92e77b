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

// Model is the catalog entry of a model definition discovered in code.
type Model struct {
	BaseModel
	Name        string `gorm:"column:name;type:varchar(256);index:uk_model_name,unique;not null;comment:name" json:"name"`
	Type        string `gorm:"column:type;type:varchar(256);not null;comment:type" json:"type"`
	Description string `gorm:"column:description;type:varchar(1024);comment:description" json:"description"`
	ClassName   string `gorm:"column:class_name;type:varchar(256);comment:implementation reference" json:"class_name"`
	Features    Array  `gorm:"column:features;comment:feature names" json:"features"`
	Labels      Array  `gorm:"column:labels;comment:label names" json:"labels"`
	FeaturesOK  bool   `gorm:"column:features_ok;not null;default:false;comment:features are defined in code" json:"features_ok"`
	PipelineOK  bool   `gorm:"column:pipeline_ok;not null;default:false;comment:pipeline is defined in code" json:"pipeline_ok"`
}
