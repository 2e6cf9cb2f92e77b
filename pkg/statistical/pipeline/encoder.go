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
	"sort"

	"gonum.org/v1/gonum/mat"
)

// TeamEncoder encodes a home/away pair of team columns into one column per
// team known at fit time: +1 for the home team, -1 for the away team.
// Teams unseen at fit time encode to zero.
type TeamEncoder struct {
	HomeColumn string
	AwayColumn string
	Teams      []string
}

// NewTeamEncoder returns an encoder of the given columns.
func NewTeamEncoder(homeColumn, awayColumn string) *TeamEncoder {
	return &TeamEncoder{
		HomeColumn: homeColumn,
		AwayColumn: awayColumn,
	}
}

func (e *TeamEncoder) columns(X *Frame) (int, int, error) {
	home, ok := X.Column(e.HomeColumn)
	if !ok {
		return 0, 0, fmt.Errorf("column %q not found", e.HomeColumn)
	}

	away, ok := X.Column(e.AwayColumn)
	if !ok {
		return 0, 0, fmt.Errorf("column %q not found", e.AwayColumn)
	}

	return home, away, nil
}

func (e *TeamEncoder) Fit(X *Frame) error {
	home, away, err := e.columns(X)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	for i := 0; i < X.Rows(); i++ {
		seen[X.String(i, home)] = struct{}{}
		seen[X.String(i, away)] = struct{}{}
	}

	e.Teams = make([]string, 0, len(seen))
	for team := range seen {
		e.Teams = append(e.Teams, team)
	}
	sort.Strings(e.Teams)
	return nil
}

func (e *TeamEncoder) Transform(X *Frame) (*mat.Dense, error) {
	if len(e.Teams) == 0 {
		return nil, errors.New("team encoder is not fitted")
	}

	home, away, err := e.columns(X)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(e.Teams))
	for j, team := range e.Teams {
		index[team] = j
	}

	m := mat.NewDense(X.Rows(), len(e.Teams), nil)
	for i := 0; i < X.Rows(); i++ {
		if j, ok := index[X.String(i, home)]; ok {
			m.Set(i, j, m.At(i, j)+1)
		}

		if j, ok := index[X.String(i, away)]; ok {
			m.Set(i, j, m.At(i, j)-1)
		}
	}

	return m, nil
}

// ColumnSelector passes the named numeric columns through in order.
type ColumnSelector struct {
	Columns []string
}

// NewColumnSelector returns a selector of columns.
func NewColumnSelector(columns ...string) *ColumnSelector {
	return &ColumnSelector{
		Columns: append([]string(nil), columns...),
	}
}

func (s *ColumnSelector) Fit(X *Frame) error {
	_, err := X.Matrix(s.Columns...)
	return err
}

func (s *ColumnSelector) Transform(X *Frame) (*mat.Dense, error) {
	return X.Matrix(s.Columns...)
}
