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

package service

import (
	"context"

	"github.com/statsml/statsml/manager/types"
)

func (s *service) GetModels(ctx context.Context, q types.GetModelsQuery) (*types.GetModelsResponse, error) {
	names := s.registry.List()
	resp := &types.GetModelsResponse{
		Models: names,
		Count:  len(names),
	}

	if !q.Detail {
		return resp, nil
	}

	for _, model := range s.registry.Models() {
		resp.Details = append(resp.Details, types.ModelDetail{
			Name:        model.Name(),
			Type:        model.Type(),
			Description: model.Description(),
			Features:    model.FeatureNames(),
			Labels:      model.LabelNames(),
		})
	}

	return resp, nil
}
