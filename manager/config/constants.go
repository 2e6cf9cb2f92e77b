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

package config

import (
	"time"
)

var (
	// DefaultConfigPath is default path of the configuration file.
	DefaultConfigPath = "/etc/statsml/statsml.yaml"
)

const (
	// DefaultServerPort is default port for the rest server.
	DefaultServerPort = 8080

	// DefaultLogDir is default directory of log files.
	DefaultLogDir = "/var/log/statsml"

	// DefaultDataDir is default directory of local data.
	DefaultDataDir = "/var/lib/statsml"

	// DefaultLogRotateMaxSize is default size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is default number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is default number of old log files to keep.
	DefaultLogRotateMaxBackups = 20

	// DefaultGracefulStopTimeout is default timeout of stopping servers.
	DefaultGracefulStopTimeout = 10 * time.Second
)

const (
	// DatabaseTypeMysql is mysql database.
	DatabaseTypeMysql = "mysql"

	// DatabaseTypePostgres is postgres database.
	DatabaseTypePostgres = "postgres"

	// DatabaseTypeSqlite is sqlite database.
	DatabaseTypeSqlite = "sqlite"

	// DefaultSqliteFileName is default file name of the sqlite database under the data directory.
	DefaultSqliteFileName = "statsml.db"
)

const (
	// DefaultLocalCacheSize is default number of artifacts kept in the local cache.
	DefaultLocalCacheSize = 64

	// DefaultLocalCacheTTL is default ttl of locally cached artifacts.
	DefaultLocalCacheTTL = 10 * time.Minute

	// DefaultRedisCacheTTL is default ttl of artifacts cached in redis.
	DefaultRedisCacheTTL = 24 * time.Hour
)

const (
	// DefaultTrainingWorkers is default number of concurrent training workers.
	DefaultTrainingWorkers = 4

	// DefaultTrainingQueueSize is default capacity of the pending training queue.
	DefaultTrainingQueueSize = 64
)

const (
	// DefaultRankingConcurrency is default number of snapshots computed in parallel.
	DefaultRankingConcurrency = 4
)

const (
	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8000"
)
