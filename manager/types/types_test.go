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

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestTypes_Validate(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		expect func(t *testing.T, err error)
	}{
		{
			name: "train request",
			value: TrainRequest{
				Features: []map[string]any{{"homeTeam": "A", "awayTeam": "B"}},
				Labels:   []map[string]any{{"margin": 3}},
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name: "train request without labels",
			value: TrainRequest{
				Features: []map[string]any{{"homeTeam": "A", "awayTeam": "B"}},
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "Labels")
			},
		},
		{
			name:  "train request with empty features",
			value: TrainRequest{Features: []map[string]any{}, Labels: []map[string]any{{"margin": 3}}},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "Features")
			},
		},
		{
			name:  "train query without model run id",
			value: TrainQuery{ModelName: "foo"},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "ModelRunID")
			},
		},
		{
			name:  "create model run request",
			value: CreateModelRunRequest{ModelName: "foo"},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:  "unknown estimator",
			value: RankingParams{Estimator: "elo"},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "oneof")
			},
		},
		{
			name:  "rankings query without filters",
			value: GetRankingsQuery{},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:  "rankings query with invalid year",
			value: GetRankingsQuery{Year: 20},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "Year")
			},
		},
	}

	v := newValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, v.Struct(tc.value))
		})
	}
}
