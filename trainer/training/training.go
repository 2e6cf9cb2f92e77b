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

package training

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/atomic"

	logger "github.com/statsml/statsml/internal/dflog"
	"github.com/statsml/statsml/manager/registry"
	"github.com/statsml/statsml/manager/store"
	"github.com/statsml/statsml/pkg/dferrors"
	"github.com/statsml/statsml/pkg/safe"
	"github.com/statsml/statsml/pkg/statistical/pipeline"
	"github.com/statsml/statsml/pkg/types"
	"github.com/statsml/statsml/trainer/metrics"
)

//go:generate mockgen -destination mocks/training_mock.go -source training.go -package mocks

const (
	// DefaultWorkers is the default number of training workers.
	DefaultWorkers = 4

	// DefaultQueueSize is the default capacity of the training queue.
	DefaultQueueSize = 64
)

const (
	// ErrQueueFull is the failure message of a run rejected by a full queue.
	ErrQueueFull = "training queue is full"

	// ErrStopped is the message of a start rejected after Stop.
	ErrStopped = "training is stopped"
)

// StartRequest is the input of a training run.
type StartRequest struct {
	// ModelName is the registered model to train.
	ModelName string

	// RunID is the pending run to train.
	RunID uint

	// Parameters overlay the default parameters of the model.
	Parameters map[string]any

	// Features are the feature records.
	Features []map[string]any

	// Labels are the label records, row-aligned with features.
	Labels []map[string]any
}

// Training defines the interface to train models asynchronously.
type Training interface {
	// Start moves the run to RUNNING and enqueues it, returning before
	// training begins.
	Start(context.Context, *StartRequest) error

	// Serve starts the workers.
	Serve()

	// Stop closes the queue and waits for enqueued runs to finish.
	Stop()
}

// job is one enqueued training run.
type job struct {
	id         string
	req        *StartRequest
	enqueuedAt time.Time
}

// training implements Training interface.
type training struct {
	workers int
	store   store.Store
	models  registry.Registry

	queue chan *job

	// inflight holds the runs admitted by Start until their worker is done,
	// keyed by run id.
	inflight cmap.ConcurrentMap[string, *job]

	// mu orders sends on queue before its close.
	mu      sync.RWMutex
	stopped *atomic.Bool
	wg      sync.WaitGroup
}

// Option is a functional option for configuring the training.
type Option func(t *training)

// WithWorkers sets the number of workers.
func WithWorkers(workers int) Option {
	return func(t *training) {
		if workers > 0 {
			t.workers = workers
		}
	}
}

// WithQueueSize sets the capacity of the queue.
func WithQueueSize(size int) Option {
	return func(t *training) {
		if size > 0 {
			t.queue = make(chan *job, size)
		}
	}
}

// New returns a new Training.
func New(store store.Store, models registry.Registry, options ...Option) Training {
	t := &training{
		workers:  DefaultWorkers,
		store:    store,
		models:   models,
		queue:    make(chan *job, DefaultQueueSize),
		inflight: cmap.New[*job](),
		stopped:  atomic.NewBool(false),
	}

	for _, opt := range options {
		opt(t)
	}

	return t
}

// Start moves the run to RUNNING and enqueues it.
func (t *training) Start(ctx context.Context, req *StartRequest) error {
	if req == nil || req.ModelName == "" {
		return dferrors.New(dferrors.CodeValidation, "model name is required")
	}

	if req.RunID == 0 {
		return dferrors.New(dferrors.CodeValidation, "model run id is required")
	}

	if t.stopped.Load() {
		return dferrors.New(dferrors.CodeInvalidState, ErrStopped)
	}

	// A run is admitted once until its worker is done, later submissions
	// are rejected without touching the store.
	j := &job{id: uuid.NewString(), req: req, enqueuedAt: time.Now()}
	key := runKey(req.RunID)
	if !t.inflight.SetIfAbsent(key, j) {
		return dferrors.Newf(dferrors.CodeInvalidState, "model run %d is already being trained", req.RunID)
	}

	var enqueued bool
	defer func() {
		if !enqueued {
			t.inflight.Remove(key)
		}
	}()

	run, err := t.store.GetModelRun(ctx, req.RunID)
	if err != nil {
		return err
	}

	if run.Model.Name != req.ModelName {
		return dferrors.Newf(dferrors.CodeValidation, "model run %d belongs to model %s, not %s", req.RunID, run.Model.Name, req.ModelName)
	}

	// Parameters recorded when the run was created apply unless overridden.
	if req.Parameters == nil && len(run.Parameters) > 0 {
		r := *req
		r.Parameters = run.Parameters
		req = &r
		j.req = req
	}

	// Only one of concurrent submissions of the same run wins the swap.
	if err := t.store.UpdateModelRunStatus(ctx, req.RunID, types.ModelRunStatePending, types.ModelRunStateRunning); err != nil {
		metrics.TrainingStartedFailureCount.WithLabelValues(req.ModelName).Inc()
		return err
	}
	metrics.TrainingStartedCount.WithLabelValues(req.ModelName).Inc()

	log := logger.WithJob(j.id, req.RunID, req.ModelName)
	if enqueued = t.enqueue(j); !enqueued {
		log.Warnf("reject training: %s", ErrQueueFull)
		metrics.TrainingFinishedFailureCount.WithLabelValues(req.ModelName).Inc()
		if err := t.store.FailModelRun(ctx, req.RunID, ErrQueueFull); err != nil {
			log.Errorf("fail model run: %s", err.Error())
		}

		return dferrors.New(dferrors.CodeInvalidState, ErrQueueFull)
	}

	log.Infof("training enqueued with %d feature records", len(req.Features))
	return nil
}

// enqueue never blocks, it reports false when the queue is full or closed.
func (t *training) enqueue(j *job) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.stopped.Load() {
		return false
	}

	select {
	case t.queue <- j:
		metrics.TrainingQueueLength.Inc()
		return true
	default:
		return false
	}
}

// Serve starts the workers.
func (t *training) Serve() {
	logger.JobLogger.Infof("start %d training workers", t.workers)
	for i := 0; i < t.workers; i++ {
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			for j := range t.queue {
				metrics.TrainingQueueLength.Dec()
				t.handle(j)
			}
		}()
	}
}

// Stop closes the queue and waits for enqueued runs to finish.
func (t *training) Stop() {
	if !t.stopped.CAS(false, true) {
		return
	}

	t.mu.Lock()
	close(t.queue)
	t.mu.Unlock()

	if n := t.inflight.Count(); n > 0 {
		logger.JobLogger.Infof("wait for %d training runs", n)
	}
	t.wg.Wait()
}

// handle trains one run and records its outcome.
func (t *training) handle(j *job) {
	defer t.inflight.Remove(runKey(j.req.RunID))

	req := j.req
	log := logger.WithJob(j.id, req.RunID, req.ModelName)
	log.Infof("training started after %s in queue", time.Since(j.enqueuedAt))

	metrics.TrainingRunningGauge.Inc()
	defer metrics.TrainingRunningGauge.Dec()

	start := time.Now()
	ctx := context.Background()
	session := t.store.Session()

	err := safe.CallE(func() error {
		return t.train(ctx, session, req)
	})
	metrics.TrainingDuration.WithLabelValues(req.ModelName).Observe(time.Since(start).Seconds())
	metrics.TrainingFinishedCount.WithLabelValues(req.ModelName).Inc()

	if err == nil {
		log.Infof("training succeeded in %s", time.Since(start))
		return
	}

	metrics.TrainingFinishedFailureCount.WithLabelValues(req.ModelName).Inc()
	log.Errorf("training failed: %s", err.Error())

	// The run may already have left RUNNING if the failure happened in the
	// final transaction.
	if err := session.FailModelRun(ctx, req.RunID, err.Error()); err != nil {
		log.Errorf("fail model run: %s", err.Error())
	}
}

// train resolves the model, fits a pipeline and persists the artifact.
func (t *training) train(ctx context.Context, s store.Store, req *StartRequest) error {
	model, err := t.models.Get(req.ModelName)
	if err != nil {
		return err
	}

	if !model.ValidateFeatures(req.Features) {
		return dferrors.Newf(dferrors.CodeValidation, "Invalid features for model %s", req.ModelName)
	}

	if !model.ValidateLabels(req.Labels) {
		return dferrors.Newf(dferrors.CodeValidation, "Invalid labels for model %s", req.ModelName)
	}

	if len(req.Features) != len(req.Labels) {
		return dferrors.Newf(dferrors.CodeValidation, "got %d feature records but %d label records", len(req.Features), len(req.Labels))
	}

	X, err := pipeline.NewFrame(req.Features, model.FeatureNames())
	if err != nil {
		return trainingError(err, "materialize features")
	}

	y, err := pipeline.NewTarget(req.Labels, model.LabelNames())
	if err != nil {
		return trainingError(err, "materialize labels")
	}

	p, err := model.CreatePipeline(req.Parameters)
	if err != nil {
		return trainingError(err, "create pipeline")
	}

	if err := p.Fit(X, y); err != nil {
		return trainingError(err, "fit pipeline")
	}

	// A fitted pipeline is kept even when its metrics could not be computed,
	// the error entry is persisted in their place.
	scores := model.ExtractMetrics(p, X, y)
	if msg, ok := scores.Err(); ok {
		logger.WithModelRun(req.RunID, req.ModelName).Warnf("extract metrics: %s", msg)
	}

	artifact, err := pipeline.Marshal(p)
	if err != nil {
		return trainingError(err, "serialize pipeline")
	}

	return s.CompleteModelRun(ctx, req.RunID, artifact, scores.Strings())
}

func runKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func trainingError(err error, action string) error {
	var dferr *dferrors.DfError
	if errors.As(err, &dferr) {
		return err
	}

	return dferrors.New(dferrors.CodeTrainingFailure, fmt.Sprintf("%s: %s", action, err.Error()))
}
