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
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

var (
	mockMysqlConfig = MysqlConfig{
		User:    "foo",
		Host:    "localhost",
		Port:    3306,
		DBName:  "statsml",
		Migrate: true,
	}

	mockPostgresConfig = PostgresConfig{
		User:    "foo",
		Host:    "localhost",
		Port:    5432,
		DBName:  "statsml",
		SSLMode: "disable",
	}

	mockMetricsConfig = MetricsConfig{
		Enable: true,
		Addr:   DefaultMetricsAddr,
	}
)

func TestConfig_Load(t *testing.T) {
	config := &Config{
		Verbose: true,
		Console: false,
		Server: ServerConfig{
			ListenIP:            net.ParseIP("0.0.0.0"),
			Port:                8080,
			LogDir:              "foo",
			LogMaxSize:          512,
			LogMaxAge:           5,
			LogMaxBackups:       3,
			DataDir:             "bar",
			GracefulStopTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Type: "mysql",
			Mysql: MysqlConfig{
				User:     "foo",
				Password: "bar",
				Host:     "localhost",
				Port:     3306,
				DBName:   "statsml",
				Migrate:  true,
			},
			Postgres: PostgresConfig{
				User:     "foo",
				Password: "bar",
				Host:     "localhost",
				Port:     5432,
				DBName:   "statsml",
				SSLMode:  "disable",
				Timezone: "UTC",
				Migrate:  false,
			},
			Sqlite: SqliteConfig{
				Path:    "bar/statsml.db",
				Migrate: true,
			},
		},
		Cache: CacheConfig{
			Redis: RedisCacheConfig{
				Addr:     "127.0.0.1:6379",
				Password: "baz",
				DB:       1,
				TTL:      time.Hour,
			},
			Local: LocalCacheConfig{
				Size: 16,
				TTL:  3 * time.Minute,
			},
		},
		Training: TrainingConfig{
			Workers:   2,
			QueueSize: 8,
		},
		Ranking: RankingConfig{
			Concurrency: 3,
		},
		Metrics: MetricsConfig{
			Enable: true,
			Addr:   ":8000",
		},
	}

	statsmlConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/statsml.yaml")
	if err := yaml.Unmarshal(contentYAML, &statsmlConfigYAML); err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.EqualValues(config, statsmlConfigYAML)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: New(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "valid mysql config",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Database.Type = DatabaseTypeMysql
				cfg.Database.Mysql = mockMysqlConfig
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "mysql tls requires parameter ca",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Database.Type = DatabaseTypeMysql
				cfg.Database.Mysql = mockMysqlConfig
				cfg.Database.Mysql.TLS = &TLSClientConfig{Cert: "foo", Key: "bar"}
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "mysql tls requires parameter ca")
			},
		},
		{
			name:   "mysql tls requires both parameter cert and key",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Database.Type = DatabaseTypeMysql
				cfg.Database.Mysql = mockMysqlConfig
				cfg.Database.Mysql.TLS = &TLSClientConfig{CA: "foo", Cert: "bar"}
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "mysql tls requires both parameter cert and key")
			},
		},
		{
			name:   "server requires parameter listenIP",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Server.ListenIP = nil
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "server requires parameter listenIP")
			},
		},
		{
			name:   "server requires parameter port",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Server.Port = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "server requires parameter port")
			},
		},
		{
			name:   "server requires parameter logDir",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Server.LogDir = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "server requires parameter logDir")
			},
		},
		{
			name:   "console logging does not require logDir",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Console = true
				cfg.Server.LogDir = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "mysql requires parameter user",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Database.Type = DatabaseTypeMysql
				cfg.Database.Mysql = mockMysqlConfig
				cfg.Database.Mysql.User = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "mysql requires parameter user")
			},
		},
		{
			name:   "mysql requires parameter host",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Database.Type = DatabaseTypeMysql
				cfg.Database.Mysql = mockMysqlConfig
				cfg.Database.Mysql.Host = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "mysql requires parameter host")
			},
		},
		{
			name:   "mysql requires parameter dbname",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Database.Type = DatabaseTypeMysql
				cfg.Database.Mysql = mockMysqlConfig
				cfg.Database.Mysql.DBName = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "mysql requires parameter dbname")
			},
		},
		{
			name:   "postgres requires parameter port",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Database.Type = DatabaseTypePostgres
				cfg.Database.Postgres = mockPostgresConfig
				cfg.Database.Postgres.Port = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "postgres requires parameter port")
			},
		},
		{
			name:   "sqlite requires parameter path",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Database.Sqlite.Path = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "sqlite requires parameter path")
			},
		},
		{
			name:   "unknown database type",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Database.Type = "oracle"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `database type "oracle" is not one of mysql, postgres and sqlite`)
			},
		},
		{
			name:   "local cache requires parameter size",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Cache.Local.Size = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "local cache requires parameter size")
			},
		},
		{
			name:   "redis cache requires parameter ttl",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Cache.Redis.Addr = "127.0.0.1:6379"
				cfg.Cache.Redis.TTL = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "redis cache requires parameter ttl")
			},
		},
		{
			name:   "training requires parameter workers",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Workers = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter workers")
			},
		},
		{
			name:   "training requires parameter queueSize",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.QueueSize = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter queueSize")
			},
		},
		{
			name:   "ranking requires parameter concurrency",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Ranking.Concurrency = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "ranking requires parameter concurrency")
			},
		},
		{
			name:   "metrics requires parameter addr",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Metrics = mockMetricsConfig
				cfg.Metrics.Addr = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "metrics requires parameter addr")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.config.Convert(); err != nil {
				t.Fatal(err)
			}

			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}

func TestConfig_Convert(t *testing.T) {
	assert := assert.New(t)

	cfg := New()
	cfg.Server.ListenIP = nil
	cfg.Server.DataDir = "baz"
	cfg.Database.Sqlite.Path = ""
	assert.NoError(cfg.Convert())
	assert.True(cfg.Server.ListenIP.Equal(net.IPv4zero))
	assert.Equal(filepath.Join("baz", DefaultSqliteFileName), cfg.Database.Sqlite.Path)
	assert.Equal("0.0.0.0:8080", cfg.RESTAddr())

	rotate := cfg.LogRotateConfig()
	assert.Equal(DefaultLogRotateMaxSize, rotate.MaxSize)
	assert.Equal(DefaultLogRotateMaxAge, rotate.MaxAge)
	assert.Equal(DefaultLogRotateMaxBackups, rotate.MaxBackups)
}
