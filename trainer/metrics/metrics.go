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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/statsml/statsml/pkg/types"
)

// Variables declared for metrics.
var (
	TrainingStartedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainerMetricsName,
		Name:      "training_started_total",
		Help:      "Counter of the number of the training started.",
	}, []string{"model_name"})

	TrainingStartedFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainerMetricsName,
		Name:      "training_started_failure_total",
		Help:      "Counter of the number of failed of the training started.",
	}, []string{"model_name"})

	TrainingFinishedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainerMetricsName,
		Name:      "training_finished_total",
		Help:      "Counter of the number of the training finished.",
	}, []string{"model_name"})

	TrainingFinishedFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainerMetricsName,
		Name:      "training_finished_failure_total",
		Help:      "Counter of the number of failed of the training finished.",
	}, []string{"model_name"})

	TrainingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainerMetricsName,
		Name:      "training_duration_seconds",
		Help:      "Histogram of the time each training took.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
	}, []string{"model_name"})

	TrainingQueueLength = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainerMetricsName,
		Name:      "training_queue_length",
		Help:      "Gauge of the number of trainings waiting for a worker.",
	})

	TrainingRunningGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainerMetricsName,
		Name:      "training_running",
		Help:      "Gauge of the number of trainings being fit.",
	})
)
