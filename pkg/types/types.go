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

const (
	// MetricsNamespace is the namespace of all statsml metrics.
	MetricsNamespace = "statsml"

	// ManagerMetricsName is the subsystem of the API server metrics.
	ManagerMetricsName = "manager"

	// TrainerMetricsName is the subsystem of the training metrics.
	TrainerMetricsName = "trainer"
)

const (
	// ModelRunStatePending is the state of a run created but not yet started.
	ModelRunStatePending = "PENDING"

	// ModelRunStateRunning is the state of a run being trained.
	ModelRunStateRunning = "RUNNING"

	// ModelRunStateSuccess is the state of a run with a trained artifact.
	ModelRunStateSuccess = "SUCCESS"

	// ModelRunStateFailed is the state of a run that could not be trained.
	ModelRunStateFailed = "FAILED"
)

const (
	// ModelTypeSingleSeason is the type of models trained on one season.
	ModelTypeSingleSeason = "SingleSeason"

	// ModelTypeMultiSeason is the type of models trained across seasons.
	ModelTypeMultiSeason = "MultiSeason"
)

const (
	// MetricError is the metric name holding a failure message.
	MetricError = "error"

	// MetricMSE is the mean squared error metric name.
	MetricMSE = "mse"

	// MetricRMSE is the root mean squared error metric name.
	MetricRMSE = "rmse"

	// MetricR2Score is the coefficient of determination metric name.
	MetricR2Score = "r2_score"

	// MetricNSamples is the number of training samples metric name.
	MetricNSamples = "n_samples"
)
