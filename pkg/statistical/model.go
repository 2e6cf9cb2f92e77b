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

package statistical

import (
	"github.com/mitchellh/mapstructure"
	"gonum.org/v1/gonum/mat"

	"github.com/statsml/statsml/pkg/statistical/pipeline"
)

// Model describes one trainable model variant. Implementations hold no
// state besides their immutable description and do no I/O.
type Model interface {
	// Name is the unique name the model is registered and requested by.
	Name() string

	// Type is the model family, such as SingleSeason or MultiSeason.
	Type() string

	// Description is a human readable summary.
	Description() string

	// FeatureNames returns the ordered feature columns.
	FeatureNames() []string

	// LabelNames returns the ordered label columns.
	LabelNames() []string

	// ValidateFeatures checks the first record carries every feature column.
	ValidateFeatures(records []map[string]any) bool

	// ValidateLabels checks the first record carries every label column.
	ValidateLabels(records []map[string]any) bool

	// CreatePipeline returns an unfitted pipeline configured by params merged
	// over the default parameters.
	CreatePipeline(params map[string]any) (*pipeline.Pipeline, error)

	// DefaultParameters returns the parameters used when none are given.
	DefaultParameters() map[string]any

	// ExtractMetrics evaluates a fitted pipeline. It never fails: internal
	// errors are reported as a single "error" entry.
	ExtractMetrics(p *pipeline.Pipeline, X *pipeline.Frame, y *mat.Dense) Metrics
}

// Schema is the ordered column layout of a model.
type Schema struct {
	Features []string
	Labels   []string
}

// FeatureNames returns a copy of the feature columns in order.
func (s Schema) FeatureNames() []string {
	return append([]string(nil), s.Features...)
}

// LabelNames returns a copy of the label columns in order.
func (s Schema) LabelNames() []string {
	return append([]string(nil), s.Labels...)
}

// ValidateFeatures reports whether the first record carries every feature
// column. Empty input is invalid, extra columns are allowed.
func (s Schema) ValidateFeatures(records []map[string]any) bool {
	return hasColumns(records, s.Features)
}

// ValidateLabels reports whether the first record carries every label column.
func (s Schema) ValidateLabels(records []map[string]any) bool {
	return hasColumns(records, s.Labels)
}

// hasColumns only inspects the keys of the first record. Later records and
// value types are checked when the frame is materialized.
func hasColumns(records []map[string]any, columns []string) bool {
	if len(records) == 0 {
		return false
	}

	for _, column := range columns {
		if _, ok := records[0][column]; !ok {
			return false
		}
	}

	return true
}

// decodeParameters decodes defaults overlaid with params into out.
func decodeParameters(defaults, params map[string]any, out any) error {
	merged := make(map[string]any, len(defaults)+len(params))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}

	return mapstructure.WeakDecode(merged, out)
}
