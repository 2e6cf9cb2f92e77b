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
	"bytes"
	"encoding/gob"
	"errors"
)

func init() {
	gob.Register(&TeamEncoder{})
	gob.Register(&ColumnSelector{})
	gob.Register(&LinearRegression{})
	gob.Register(&GradientBoostingRegressor{})
}

// Marshal serializes a fitted pipeline into an opaque artifact.
func Marshal(p *Pipeline) ([]byte, error) {
	if p == nil {
		return nil, errors.New("nil pipeline")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal restores a pipeline serialized by Marshal.
func Unmarshal(data []byte) (*Pipeline, error) {
	if len(data) == 0 {
		return nil, errors.New("empty artifact")
	}

	p := &Pipeline{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(p); err != nil {
		return nil, err
	}

	if p.Transformer == nil || p.Regressor == nil {
		return nil, errors.New("artifact does not hold a complete pipeline")
	}

	return p, nil
}
