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

//go:generate mockgen -destination mocks/registry_mock.go -source registry.go -package mocks

package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"

	logger "github.com/statsml/statsml/internal/dflog"
	"github.com/statsml/statsml/manager/models"
	"github.com/statsml/statsml/manager/store"
	"github.com/statsml/statsml/pkg/dferrors"
	"github.com/statsml/statsml/pkg/safe"
	"github.com/statsml/statsml/pkg/statistical"
)

// Registry is the interface used for discovered model definitions.
type Registry interface {
	// Scan instantiates every registered model once and indexes it by name.
	// A factory that fails is logged and skipped, the returned error
	// aggregates the skipped factories.
	Scan() error

	// Sync reconciles the catalog with the scanned models in one transaction.
	Sync(context.Context) error

	// Get returns the model by name.
	Get(string) (statistical.Model, error)

	// List returns the model names in ascending order.
	List() []string

	// Available reports whether the model name was discovered.
	Available(string) bool

	// Models returns the models in List order.
	Models() []statistical.Model
}

type registry struct {
	store     store.Store
	factories func() map[string]statistical.Factory

	mu     sync.RWMutex
	models map[string]statistical.Model
}

// Option is a functional option for configuring the registry.
type Option func(r *registry)

// WithFactories sets the source of model factories, the static registration table by default.
func WithFactories(factories map[string]statistical.Factory) Option {
	return func(r *registry) {
		r.factories = func() map[string]statistical.Factory {
			return factories
		}
	}
}

// New returns a new Registry instance.
func New(store store.Store, options ...Option) Registry {
	r := &registry{
		store:     store,
		factories: statistical.Factories,
		models:    make(map[string]statistical.Model),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

func (r *registry) Scan() error {
	factories := r.factories()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs *multierror.Error
	discovered := make(map[string]statistical.Model, len(names))
	for _, name := range names {
		var model statistical.Model
		if err := safe.CallE(func() (err error) {
			model, err = factories[name]()
			return err
		}); err != nil {
			logger.Errorf("load model %s failed: %s", name, err.Error())
			errs = multierror.Append(errs, fmt.Errorf("model %s: %w", name, err))
			continue
		}

		if model == nil {
			logger.Errorf("load model %s failed: factory returned no model", name)
			errs = multierror.Append(errs, fmt.Errorf("model %s: factory returned no model", name))
			continue
		}

		if model.Name() != name {
			logger.Errorf("model %s is registered as %s, skip it", model.Name(), name)
			errs = multierror.Append(errs, fmt.Errorf("model %s: registered as %s", model.Name(), name))
			continue
		}

		if _, ok := discovered[name]; ok {
			logger.Warnf("model %s is discovered twice, keep the first one", name)
			continue
		}

		discovered[name] = model
		logger.Infof("discover model %s of type %s", name, model.Type())
	}

	r.mu.Lock()
	r.models = discovered
	r.mu.Unlock()

	if err := errs.ErrorOrNil(); err != nil {
		logger.Warnf("scan skipped models: %s", err.Error())
		return err
	}

	return nil
}

func (r *registry) Sync(ctx context.Context) error {
	var entries []models.Model
	for _, model := range r.Models() {
		entries = append(entries, models.Model{
			Name:        model.Name(),
			Type:        model.Type(),
			Description: model.Description(),
			ClassName:   fmt.Sprintf("%T", model),
			Features:    model.FeatureNames(),
			Labels:      model.LabelNames(),
		})
	}

	if err := r.store.SyncModels(ctx, entries); err != nil {
		logger.Errorf("sync catalog failed: %s", err.Error())
		return err
	}

	logger.Infof("sync catalog with %d models", len(entries))
	return nil
}

func (r *registry) Get(name string) (statistical.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, ok := r.models[name]
	if !ok {
		return nil, dferrors.Newf(dferrors.CodeNotFound, "model %s not found in registry", name)
	}

	return model, nil
}

func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (r *registry) Available(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.models[name]
	return ok
}

func (r *registry) Models() []statistical.Model {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	discovered := make([]statistical.Model, 0, len(names))
	for _, name := range names {
		if model, ok := r.models[name]; ok {
			discovered = append(discovered, model)
		}
	}

	return discovered
}
