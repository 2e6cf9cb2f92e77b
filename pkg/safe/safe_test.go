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

package safe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafe_Call(t *testing.T) {
	assert := assert.New(t)

	var called bool
	assert.NoError(Call(func() { called = true }))
	assert.True(called)

	err := Call(func() { panic("foo") })
	assert.EqualError(err, "panic: foo")
}

func TestSafe_CallE(t *testing.T) {
	tests := []struct {
		name   string
		f      func() error
		expect func(t *testing.T, err error)
	}{
		{
			name: "returns nil",
			f:    func() error { return nil },
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name: "returns error",
			f:    func() error { return errors.New("foo") },
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "foo")
			},
		},
		{
			name: "panics",
			f: func() error {
				var m map[string]int
				m["foo"] = 1
				return nil
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "panic: assignment to entry in nil map")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, CallE(tc.f))
		})
	}
}
