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
	"fmt"
	"sort"
	"sync"
)

// Factory builds a model instance.
type Factory func() (Model, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// Register makes a model factory available by name. It is meant to be
// called from init and panics on a nil factory or a duplicate name.
func Register(name string, factory Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	if factory == nil {
		panic("statistical: register factory is nil")
	}

	if _, ok := factories[name]; ok {
		panic(fmt.Sprintf("statistical: register called twice for model %s", name))
	}

	factories[name] = factory
}

// Factories returns a copy of the registered factories.
func Factories() map[string]Factory {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	out := make(map[string]Factory, len(factories))
	for name, factory := range factories {
		out[name] = factory
	}

	return out
}

// Names returns the registered names in ascending order.
func Names() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
