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
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transformer turns a frame into the numeric design matrix of a regressor.
type Transformer interface {
	Fit(X *Frame) error
	Transform(X *Frame) (*mat.Dense, error)
}

// Regressor fits a numeric design matrix against a rows × outputs target.
type Regressor interface {
	Fit(X, y *mat.Dense) error
	Predict(X *mat.Dense) (*mat.Dense, error)
}

// Pipeline chains a transformer and a regressor.
type Pipeline struct {
	Transformer Transformer
	Regressor   Regressor
}

// New returns a pipeline of t and r.
func New(t Transformer, r Regressor) *Pipeline {
	return &Pipeline{
		Transformer: t,
		Regressor:   r,
	}
}

// Fit fits the transformer on X, then the regressor on the transformed X and y.
func (p *Pipeline) Fit(X *Frame, y *mat.Dense) error {
	if p.Transformer == nil || p.Regressor == nil {
		return errors.New("pipeline is not initialized")
	}

	if r, _ := y.Dims(); r != X.Rows() {
		return fmt.Errorf("features have %d rows but labels have %d", X.Rows(), r)
	}

	if err := p.Transformer.Fit(X); err != nil {
		return err
	}

	design, err := p.Transformer.Transform(X)
	if err != nil {
		return err
	}

	return p.Regressor.Fit(design, y)
}

// Predict returns a rows × outputs matrix of predictions for X.
func (p *Pipeline) Predict(X *Frame) (*mat.Dense, error) {
	if p.Transformer == nil || p.Regressor == nil {
		return nil, errors.New("pipeline is not initialized")
	}

	design, err := p.Transformer.Transform(X)
	if err != nil {
		return nil, err
	}

	return p.Regressor.Predict(design)
}
