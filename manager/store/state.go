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

package store

import (
	"github.com/looplab/fsm"

	"github.com/statsml/statsml/pkg/dferrors"
	"github.com/statsml/statsml/pkg/types"
)

const (
	// ModelRunEventStart moves a pending run to running.
	ModelRunEventStart = "Start"

	// ModelRunEventSucceed moves a running run to success.
	ModelRunEventSucceed = "Succeed"

	// ModelRunEventFail moves a running run to failed.
	ModelRunEventFail = "Fail"
)

// modelRunEvents are the only transitions of a run, statuses never regress.
var modelRunEvents = fsm.Events{
	{Name: ModelRunEventStart, Src: []string{types.ModelRunStatePending}, Dst: types.ModelRunStateRunning},
	{Name: ModelRunEventSucceed, Src: []string{types.ModelRunStateRunning}, Dst: types.ModelRunStateSuccess},
	{Name: ModelRunEventFail, Src: []string{types.ModelRunStateRunning}, Dst: types.ModelRunStateFailed},
}

// CanTransit returns an InvalidState error unless a run may move from one status to another.
func CanTransit(from, to string) error {
	machine := fsm.NewFSM(from, modelRunEvents, fsm.Callbacks{})
	for _, event := range modelRunEvents {
		if event.Dst != to {
			continue
		}

		if machine.Can(event.Name) {
			return nil
		}
	}

	return dferrors.Newf(dferrors.CodeInvalidState, "model run can not transit from %s to %s", from, to)
}
