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

package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sjwhitworth/golearn/base"
	"gonum.org/v1/gonum/mat"
)

// Frame is a column-ordered table materialized from row records. Numeric
// columns are stored as float attributes, anything else as categorical
// attributes of golearn dense instances.
type Frame struct {
	columns  []string
	index    map[string]int
	numeric  []bool
	attrs    []base.Attribute
	specs    []base.AttributeSpec
	rows     int
	instance *base.DenseInstances
}

// NewFrame selects columns, in order, from every record.
func NewFrame(records []map[string]any, columns []string) (*Frame, error) {
	if len(records) == 0 {
		return nil, errors.New("no records given")
	}

	if len(columns) == 0 {
		return nil, errors.New("no columns given")
	}

	f := &Frame{
		columns:  append([]string(nil), columns...),
		index:    make(map[string]int, len(columns)),
		numeric:  make([]bool, len(columns)),
		attrs:    make([]base.Attribute, len(columns)),
		specs:    make([]base.AttributeSpec, len(columns)),
		rows:     len(records),
		instance: base.NewDenseInstances(),
	}

	for j, column := range columns {
		if _, ok := f.index[column]; ok {
			return nil, fmt.Errorf("duplicate column %q", column)
		}
		f.index[column] = j

		numeric, err := columnKind(records, column)
		if err != nil {
			return nil, err
		}
		f.numeric[j] = numeric

		if numeric {
			f.attrs[j] = base.NewFloatAttribute(column)
		} else {
			attr := base.NewCategoricalAttribute()
			attr.SetName(column)
			f.attrs[j] = attr
		}
		f.specs[j] = f.instance.AddAttribute(f.attrs[j])
	}

	if err := f.instance.Extend(len(records)); err != nil {
		return nil, err
	}

	for i, record := range records {
		for j, column := range columns {
			value := record[column]
			if f.numeric[j] {
				v, _ := toFloat(value)
				f.instance.Set(f.specs[j], i, base.PackFloatToBytes(v))
				continue
			}

			f.instance.Set(f.specs[j], i, f.attrs[j].GetSysValFromString(toString(value)))
		}
	}

	return f, nil
}

// columnKind reports whether column holds only numeric values, checking that
// every record carries it.
func columnKind(records []map[string]any, column string) (bool, error) {
	var numeric, text int
	for i, record := range records {
		value, ok := record[column]
		if !ok {
			return false, fmt.Errorf("record %d is missing column %q", i, column)
		}

		if value == nil {
			return false, fmt.Errorf("record %d has a null value for column %q", i, column)
		}

		if _, ok := toFloat(value); ok {
			numeric++
			continue
		}

		if _, ok := value.(string); ok {
			text++
			continue
		}

		return false, fmt.Errorf("record %d has an unsupported %T value for column %q", i, value, column)
	}

	if numeric > 0 && text > 0 {
		return false, fmt.Errorf("column %q mixes numeric and string values", column)
	}

	return text == 0, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	return f.rows
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// Column returns the position of a column.
func (f *Frame) Column(name string) (int, bool) {
	j, ok := f.index[name]
	return j, ok
}

// IsNumeric reports whether the column at position j is numeric.
func (f *Frame) IsNumeric(j int) bool {
	return f.numeric[j]
}

// Float returns the numeric value at row i, column j.
func (f *Frame) Float(i, j int) float64 {
	return base.UnpackBytesToFloat(f.instance.Get(f.specs[j], i))
}

// String returns the value at row i, column j as a string.
func (f *Frame) String(i, j int) string {
	if f.numeric[j] {
		return fmt.Sprint(f.Float(i, j))
	}

	return f.attrs[j].GetStringFromSysVal(f.instance.Get(f.specs[j], i))
}

// Matrix returns the named columns, or all columns when none are given, as a
// dense matrix. Every selected column must be numeric.
func (f *Frame) Matrix(columns ...string) (*mat.Dense, error) {
	if len(columns) == 0 {
		columns = f.columns
	}

	positions := make([]int, len(columns))
	for k, column := range columns {
		j, ok := f.index[column]
		if !ok {
			return nil, fmt.Errorf("column %q not found", column)
		}

		if !f.numeric[j] {
			return nil, fmt.Errorf("column %q is not numeric", column)
		}
		positions[k] = j
	}

	m := mat.NewDense(f.rows, len(columns), nil)
	for i := 0; i < f.rows; i++ {
		for k, j := range positions {
			m.Set(i, k, f.Float(i, j))
		}
	}

	return m, nil
}

// NewTarget selects the label columns of every record into a rows × labels
// matrix.
func NewTarget(records []map[string]any, labels []string) (*mat.Dense, error) {
	f, err := NewFrame(records, labels)
	if err != nil {
		return nil, err
	}

	return f.Matrix()
}
